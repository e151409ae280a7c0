// Command vmareplay replays an allocator call recording against a live
// Vulkan device.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/arsenal/replay/capture"
	"github.com/vkngwrapper/arsenal/replay/replay"
	"github.com/vkngwrapper/arsenal/replay/vulkan"
	"golang.org/x/exp/slog"
)

const (
	exitCodeCommandLine = 1
	exitCodeSourceFile  = 2
	exitCodeFormat      = 3
	exitCodeVulkan      = 4
	exitCodePanic       = 5
)

func main() {
	// Anything that panics past this point is a bug in the player, not a
	// problem with the recording, and gets its own exit code.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n", r)
			os.Exit(exitCodePanic)
		}
	}()

	os.Exit(run())
}

func run() int {
	verbosity := flag.Int("v", int(replay.VerbosityDefault), "verbosity: 0 minimum, 1 default, 2 maximum")
	iterations := flag.Int("i", 1, "number of times to replay the recording")
	lines := flag.String("lines", "", "line ranges to replay, e.g. \"-10,15,18-25,31-\" (default all lines)")
	deviceIndex := flag.Int("device", 0, "index of the physical device to replay against")
	userData := flag.Bool("userdata", true, "apply recorded allocation user data")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: vmareplay [options] <recording.csv>")
		flag.PrintDefaults()
		return exitCodeCommandLine
	}

	config := replay.DefaultConfig()
	config.IterationCount = *iterations
	config.UserDataEnabled = *userData

	switch *verbosity {
	case 0:
		config.Verbosity = replay.VerbosityMinimum
	case 1:
		config.Verbosity = replay.VerbosityDefault
	case 2:
		config.Verbosity = replay.VerbosityMaximum
	default:
		fmt.Fprintf(os.Stderr, "invalid verbosity %d\n", *verbosity)
		return exitCodeCommandLine
	}

	if *lines != "" {
		if err := config.LineRanges.Parse(*lines); err != nil {
			fmt.Fprintf(os.Stderr, "invalid -lines value: %+v\n", err)
			return exitCodeCommandLine
		}
	}

	logLevel := slog.LevelWarn
	if config.Verbosity >= replay.VerbosityMaximum {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	sourcePath := flag.Arg(0)
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", sourcePath, err)
		return exitCodeSourceFile
	}
	if len(data) == 0 {
		fmt.Fprintf(os.Stderr, "%s is empty\n", sourcePath)
		return exitCodeSourceFile
	}

	driver := replay.NewDriver(logger, func() (replay.Target, error) {
		return vulkan.NewTarget(logger, vulkan.TargetOptions{
			ApplicationName:     "vmareplay",
			PhysicalDeviceIndex: *deviceIndex,
		})
	}, config)

	result, err := driver.Run(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay failed: %+v\n", err)
		if errors.Is(err, capture.ErrInvalidFormat) || errors.Is(err, capture.ErrUnsupportedVersion) {
			return exitCodeFormat
		}
		return exitCodeVulkan
	}

	if config.Verbosity >= replay.VerbosityDefault {
		printSummary(os.Stdout, config, result)
	}
	return 0
}

func printSummary(out *os.File, config replay.Config, result *replay.Result) {
	fmt.Fprintf(out, "Replayed %d of %d recorded calls\n",
		result.ExecutedLineCount, result.TotalLineCount)
	if !config.LineRanges.IsEmpty() {
		fmt.Fprintf(out, "Line ranges restricted replay to %d calls\n",
			result.ExecutedLineCount)
	}

	if seconds, ok := capture.ParseFloat32(result.LastRecordedTimestamp); ok {
		fmt.Fprintf(out, "Original recording time: %v\n",
			time.Duration(float64(seconds)*float64(time.Second)).Round(time.Millisecond))
	}

	if result.Iterations > 1 {
		fmt.Fprintf(out, "Replay time: %v over %d iterations, %v per iteration\n",
			result.PlayDuration.Round(time.Millisecond), result.Iterations,
			result.AverageDuration.Round(time.Millisecond))
	} else {
		fmt.Fprintf(out, "Replay time: %v\n", result.PlayDuration.Round(time.Millisecond))
	}

	if result.Threads.ThreadCount > 1 && result.Threads.TotalCalls > 0 {
		fmt.Fprintf(out, "Recording used %d threads, busiest thread made %.1f%% of calls\n",
			result.Threads.ThreadCount,
			float64(result.Threads.MaxThreadCalls)*100.0/float64(result.Threads.TotalCalls))
	}

	if result.WarningCount > 0 {
		fmt.Fprintf(out, "Warnings: %d\n", result.WarningCount)
	}

	if config.Verbosity >= replay.VerbosityMaximum {
		writer := jwriter.NewWriter()
		result.Stats.PrintJSON(&writer)
		fmt.Fprintf(out, "Statistics: %s\n", string(writer.Bytes()))
	}
}
