package replay

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/replay/capture"
	"golang.org/x/exp/slog"
)

// TargetFactory creates a fresh Target for each replay iteration.
type TargetFactory func() (Target, error)

// Result summarizes a completed replay.
type Result struct {
	// Iterations is how many times the recording was replayed.
	Iterations int
	// TotalLineCount is the number of call lines in the recording, whether
	// executed or filtered out.
	TotalLineCount uint64
	// ExecutedLineCount is the number of call lines that passed the line
	// range filter.
	ExecutedLineCount uint64

	// PlayDuration is the wall time spent executing lines across all
	// iterations, excluding target setup and teardown.
	PlayDuration time.Duration
	// AverageDuration is PlayDuration divided by Iterations.
	AverageDuration time.Duration

	// WarningCount is the number of warnings raised on the last iteration,
	// including suppressed ones.
	WarningCount uint64
	// LastRecordedTimestamp is the timestamp field of the last executed line,
	// verbatim from the recording.
	LastRecordedTimestamp string

	Stats   Statistics
	Threads ThreadStatistics
}

// Driver validates a recording and replays it, once or several times, each
// iteration against a fresh target.
type Driver struct {
	logger    *slog.Logger
	config    Config
	newTarget TargetFactory
}

func NewDriver(logger *slog.Logger, newTarget TargetFactory, config Config) *Driver {
	return &Driver{
		logger:    logger,
		config:    config,
		newTarget: newTarget,
	}
}

// Run replays the recording held in data. The format header and version are
// validated before anything is executed; a recording the player does not
// understand fails outright rather than producing a garbage replay.
func (d *Driver) Run(data string) (*Result, error) {
	d.logger.Debug("Driver::Run")

	version, err := d.validateFormat(data)
	if err != nil {
		return nil, err
	}
	d.logger.Debug("recording format validated",
		slog.String("version", version.String()))

	iterations := d.config.IterationCount
	if iterations < 1 {
		iterations = 1
	}

	result := &Result{Iterations: iterations}
	for i := 0; i < iterations; i++ {
		if err := d.runIteration(data, result); err != nil {
			return nil, err
		}
	}
	result.AverageDuration = result.PlayDuration / time.Duration(iterations)

	return result, nil
}

func (d *Driver) validateFormat(data string) (capture.Version, error) {
	scanner := capture.NewLineScanner(data)

	header, ok := scanner.Next()
	if !ok || header != capture.FormatHeader {
		return capture.Version{}, errors.Wrap(capture.ErrInvalidFormat, "missing file header")
	}

	versionLine, ok := scanner.Next()
	if !ok {
		return capture.Version{}, errors.Wrap(capture.ErrInvalidFormat, "missing version line")
	}
	version, err := capture.ParseVersion(versionLine)
	if err != nil {
		return capture.Version{}, err
	}
	if !version.Supported() {
		return capture.Version{}, errors.Wrapf(capture.ErrUnsupportedVersion, "version %s", version)
	}

	return version, nil
}

func (d *Driver) runIteration(data string, result *Result) error {
	target, err := d.newTarget()
	if err != nil {
		return errors.Wrap(err, "failed to initialize replay target")
	}

	player := NewPlayer(d.logger, target, d.config)

	var totalLines, executedLines uint64
	scanner := capture.NewLineScanner(data)

	// Skip the header and version lines that were already validated.
	scanner.Next()
	scanner.Next()

	start := time.Now()
	for {
		line, ok := scanner.Next()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		lineNumber := uint64(scanner.LineNumber())
		totalLines++
		if !d.config.LineRanges.Includes(lineNumber) {
			continue
		}
		executedLines++
		player.ExecuteLine(lineNumber, line)
	}
	result.PlayDuration += time.Since(start)

	result.TotalLineCount = totalLines
	result.ExecutedLineCount = executedLines
	result.WarningCount = player.WarningCount()
	result.LastRecordedTimestamp = player.LastRecordedTimestamp()
	result.Stats = *player.Statistics()
	result.Threads = player.ThreadStatistics()

	if err := player.Close(); err != nil {
		d.logger.Error("failed to tear down replay target",
			slog.Any("error", err))
	}
	return nil
}
