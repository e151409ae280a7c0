package replay

import "github.com/vkngwrapper/arsenal/replay/ranges"

// Verbosity controls how much the player writes about its progress.
type Verbosity int

const (
	// VerbosityMinimum reports a bounded number of warnings and errors,
	// nothing else.
	VerbosityMinimum Verbosity = iota
	// VerbosityDefault adds a result summary.
	VerbosityDefault
	// VerbosityMaximum reports every warning and full statistics.
	VerbosityMaximum
)

var verbosityNames = map[Verbosity]string{
	VerbosityMinimum: "VerbosityMinimum",
	VerbosityDefault: "VerbosityDefault",
	VerbosityMaximum: "VerbosityMaximum",
}

func (v Verbosity) String() string {
	name, ok := verbosityNames[v]
	if !ok {
		return "unknown verbosity"
	}
	return name
}

// Config adjusts replay behavior. The zero value of each field other than
// those set by DefaultConfig is valid.
type Config struct {
	// Verbosity controls warning and summary output.
	Verbosity Verbosity
	// IterationCount is how many times the recording is replayed, each
	// against a fresh target. Values below 1 are treated as 1.
	IterationCount int
	// LineRanges restricts replay to the recorded lines it includes. The
	// empty sequence includes every line.
	LineRanges ranges.Sequence
	// UserDataEnabled controls whether recorded vmaSetAllocationUserData
	// calls and user data parameters are applied to live allocations.
	UserDataEnabled bool
}

// DefaultConfig returns the configuration used when no options are given:
// default verbosity, a single iteration, all lines, user data applied.
func DefaultConfig() Config {
	return Config{
		Verbosity:       VerbosityDefault,
		IterationCount:  1,
		UserDataEnabled: true,
	}
}
