package replay

import (
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/arsenal/replay/capture"
	"golang.org/x/exp/slog"
)

// firstParamIndex is the field index of the first function parameter on a
// recorded line. Every line starts with thread id, timestamp, frame index,
// and function name.
const firstParamIndex = 4

// ThreadStatistics summarizes the recorded thread ids seen during a replay.
// Replay itself is single-threaded regardless of how many threads produced
// the recording.
type ThreadStatistics struct {
	ThreadCount    int
	TotalCalls     uint64
	MaxThreadCalls uint64
}

// Player replays recorded lines, one at a time and in order, against a live
// Target. It keeps the mapping from recorded handles to live objects and
// reconciles each recorded outcome against the live one.
//
// Player is not safe for concurrent use.
type Player struct {
	logger   *slog.Logger
	config   Config
	target   Target
	reporter *warningReporter

	stats Statistics
	split capture.Split

	pools       *swiss.Map[capture.Handle, poolAssociation]
	allocations *swiss.Map[capture.Handle, allocationAssociation]
	threads     *swiss.Map[uint32, uint64]

	frameIndex        uint32
	lastTimestamp     string
	substitutionNoted bool
}

// NewPlayer creates a Player that replays against target. The target is
// destroyed by Close.
func NewPlayer(logger *slog.Logger, target Target, config Config) *Player {
	return &Player{
		logger:   logger,
		config:   config,
		target:   target,
		reporter: newWarningReporter(logger, config.Verbosity),

		pools:       swiss.NewMap[capture.Handle, poolAssociation](64),
		allocations: swiss.NewMap[capture.Handle, allocationAssociation](1024),
		threads:     swiss.NewMap[uint32, uint64](16),
	}
}

// ExecuteLine replays a single recorded call. lineNumber is the 1-based line
// number within the recording, used for warnings. Malformed lines are
// reported and skipped; they never stop the replay.
func (p *Player) ExecuteLine(lineNumber uint64, line string) {
	p.split.Set(line, 0)
	if p.split.Count() < firstParamIndex {
		p.reporter.warn("too few columns",
			slog.Uint64("line", lineNumber))
		return
	}

	threadID, ok := capture.ParseUint32(p.split.Field(0))
	if ok {
		calls, _ := p.threads.Get(threadID)
		p.threads.Put(threadID, calls+1)
	} else {
		p.reporter.warn("invalid thread id",
			slog.Uint64("line", lineNumber),
			slog.String("threadId", p.split.Field(0)))
	}

	p.lastTimestamp = p.split.Field(1)

	frameIndex, ok := capture.ParseUint32(p.split.Field(2))
	if ok {
		if frameIndex != p.frameIndex {
			p.frameIndex = frameIndex
			p.target.SetCurrentFrameIndex(frameIndex)
		}
	} else {
		p.reporter.warn("invalid frame index",
			slog.Uint64("line", lineNumber),
			slog.String("frameIndex", p.split.Field(2)))
	}

	function, ok := capture.FunctionByName(p.split.Field(3))
	if !ok {
		p.reporter.warn("unknown function",
			slog.Uint64("line", lineNumber),
			slog.String("function", p.split.Field(3)))
		return
	}

	p.stats.RegisterFunctionCall(function)

	switch function {
	case capture.FunctionCreateAllocator, capture.FunctionDestroyAllocator:
		// The live allocator outlives the whole replay, so these only have
		// their parameter counts checked.
		p.validateParamCount(lineNumber, 0, false)
	case capture.FunctionCreatePool:
		p.executeCreatePool(lineNumber)
	case capture.FunctionDestroyPool:
		p.executeDestroyPool(lineNumber)
	case capture.FunctionSetAllocationUserData:
		p.executeSetAllocationUserData(lineNumber)
	case capture.FunctionCreateBuffer:
		p.executeCreateBuffer(lineNumber)
	case capture.FunctionDestroyBuffer, capture.FunctionDestroyImage, capture.FunctionFreeMemory:
		p.executeDestroyAllocation(lineNumber)
	case capture.FunctionCreateImage:
		p.executeCreateImage(lineNumber)
	case capture.FunctionCreateLostAllocation:
		p.executeCreateLostAllocation(lineNumber)
	case capture.FunctionAllocateMemory:
		p.executeAllocateMemory(lineNumber)
	case capture.FunctionAllocateMemoryForBuffer:
		p.executeAllocateMemoryForResource(lineNumber, capture.FunctionAllocateMemoryForBuffer)
	case capture.FunctionAllocateMemoryForImage:
		p.executeAllocateMemoryForResource(lineNumber, capture.FunctionAllocateMemoryForImage)
	case capture.FunctionMapMemory:
		p.executeMapMemory(lineNumber)
	case capture.FunctionUnmapMemory:
		p.executeUnmapMemory(lineNumber)
	case capture.FunctionFlushAllocation:
		p.executeFlushAllocation(lineNumber)
	case capture.FunctionInvalidateAllocation:
		p.executeInvalidateAllocation(lineNumber)
	case capture.FunctionTouchAllocation:
		p.executeTouchAllocation(lineNumber)
	case capture.FunctionGetAllocationInfo:
		p.executeGetAllocationInfo(lineNumber)
	case capture.FunctionMakePoolAllocationsLost:
		p.executeMakePoolAllocationsLost(lineNumber)
	}
}

// Close frees everything the recording leaked, destroys the target, and
// reports how many warnings were suppressed. The player cannot be used after
// Close.
func (p *Player) Close() error {
	p.logger.Debug("Player::Close")

	if p.allocations.Count() > 0 {
		p.logger.Warn("allocations not freed by recording",
			slog.Int("count", p.allocations.Count()))

		p.allocations.Iter(func(origHandle capture.Handle, assoc allocationAssociation) bool {
			if assoc.allocation != nil {
				if err := assoc.allocation.Free(); err != nil {
					p.logger.Warn("failed to free leaked allocation",
						slog.String("allocation", origHandle.String()),
						slog.String("kind", assoc.kind.String()),
						slog.Any("error", err))
				}
			}
			return false
		})
		p.allocations.Clear()
	}

	if p.pools.Count() > 0 {
		p.logger.Warn("pools not destroyed by recording",
			slog.Int("count", p.pools.Count()))

		p.pools.Iter(func(origHandle capture.Handle, assoc poolAssociation) bool {
			if assoc.pool != nil {
				if err := assoc.pool.Destroy(); err != nil {
					p.logger.Warn("failed to destroy leaked pool",
						slog.String("pool", origHandle.String()),
						slog.Any("error", err))
				}
			}
			return false
		})
		p.pools.Clear()
	}

	err := p.target.Destroy()
	p.reporter.logSuppressed()
	return err
}

// Statistics returns the counters accumulated so far.
func (p *Player) Statistics() *Statistics {
	return &p.stats
}

// WarningCount returns how many warnings were raised, including suppressed
// ones.
func (p *Player) WarningCount() uint64 {
	return p.reporter.Count()
}

// LastRecordedTimestamp returns the timestamp field of the last executed
// line, verbatim.
func (p *Player) LastRecordedTimestamp() string {
	return p.lastTimestamp
}

// ThreadStatistics summarizes the recorded thread ids seen so far.
func (p *Player) ThreadStatistics() ThreadStatistics {
	var stats ThreadStatistics
	stats.ThreadCount = p.threads.Count()
	p.threads.Iter(func(threadID uint32, calls uint64) bool {
		stats.TotalCalls += calls
		if calls > stats.MaxThreadCalls {
			stats.MaxThreadCalls = calls
		}
		return false
	})
	return stats
}
