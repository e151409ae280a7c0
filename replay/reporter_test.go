package replay

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func countLogLines(buffer *bytes.Buffer) int {
	return strings.Count(buffer.String(), "\n")
}

func TestReporterCapsOutputAtDefaultVerbosity(t *testing.T) {
	var buffer bytes.Buffer
	reporter := newWarningReporter(slog.New(slog.NewTextHandler(&buffer, nil)), VerbosityDefault)

	for i := 0; i < MaxWarningsToShow*2; i++ {
		reporter.warn("divergence")
	}

	require.Equal(t, uint64(MaxWarningsToShow*2), reporter.Count())
	require.Equal(t, MaxWarningsToShow, countLogLines(&buffer))

	reporter.logSuppressed()
	require.Equal(t, MaxWarningsToShow+1, countLogLines(&buffer))
	require.Contains(t, buffer.String(), "additional warnings not shown")
	require.Contains(t, buffer.String(), "suppressedCount=64")
}

func TestReporterUncappedAtMaximumVerbosity(t *testing.T) {
	var buffer bytes.Buffer
	reporter := newWarningReporter(slog.New(slog.NewTextHandler(&buffer, nil)), VerbosityMaximum)

	for i := 0; i < MaxWarningsToShow+10; i++ {
		reporter.warn("divergence")
	}

	require.Equal(t, uint64(MaxWarningsToShow+10), reporter.Count())
	require.Equal(t, MaxWarningsToShow+10, countLogLines(&buffer))

	reporter.logSuppressed()
	require.Equal(t, MaxWarningsToShow+10, countLogLines(&buffer))
}

func TestReporterWarnsAtMinimumVerbosity(t *testing.T) {
	var buffer bytes.Buffer
	reporter := newWarningReporter(slog.New(slog.NewTextHandler(&buffer, nil)), VerbosityMinimum)

	reporter.warn("divergence")

	require.Equal(t, uint64(1), reporter.Count())
	require.Equal(t, 1, countLogLines(&buffer))
}

func TestReporterCapsOutputAtMinimumVerbosity(t *testing.T) {
	var buffer bytes.Buffer
	reporter := newWarningReporter(slog.New(slog.NewTextHandler(&buffer, nil)), VerbosityMinimum)

	for i := 0; i < MaxWarningsToShow+5; i++ {
		reporter.warn("divergence")
	}

	require.Equal(t, MaxWarningsToShow, countLogLines(&buffer))

	reporter.logSuppressed()
	require.Contains(t, buffer.String(), "additional warnings not shown")
	require.Contains(t, buffer.String(), "suppressedCount=5")
}

func TestReporterNoSuppressionLineUnderCap(t *testing.T) {
	var buffer bytes.Buffer
	reporter := newWarningReporter(slog.New(slog.NewTextHandler(&buffer, nil)), VerbosityDefault)

	reporter.warn("divergence")
	reporter.logSuppressed()

	require.Equal(t, 1, countLogLines(&buffer))
}
