package replay

import "golang.org/x/exp/slog"

// MaxWarningsToShow bounds how many warnings are written below maximum
// verbosity. Warnings past the bound are still counted.
const MaxWarningsToShow = 64

// warningReporter rate-limits warning output. Replaying a recording against a
// different machine than the one it was captured on can produce a divergence
// on nearly every line, and an unbounded stream of warnings would bury the
// useful ones.
type warningReporter struct {
	logger    *slog.Logger
	verbosity Verbosity
	count     uint64
}

func newWarningReporter(logger *slog.Logger, verbosity Verbosity) *warningReporter {
	return &warningReporter{
		logger:    logger,
		verbosity: verbosity,
	}
}

func (r *warningReporter) warn(msg string, args ...any) {
	r.count++
	if r.verbosity < VerbosityMaximum && r.count > MaxWarningsToShow {
		return
	}
	r.logger.Warn(msg, args...)
}

// Count returns the number of warnings raised, including suppressed ones.
func (r *warningReporter) Count() uint64 {
	return r.count
}

// logSuppressed writes a single closing line when some warnings were not
// shown.
func (r *warningReporter) logSuppressed() {
	if r.verbosity >= VerbosityMaximum || r.count <= MaxWarningsToShow {
		return
	}
	r.logger.Warn("additional warnings not shown",
		slog.Uint64("suppressedCount", r.count-MaxWarningsToShow))
}
