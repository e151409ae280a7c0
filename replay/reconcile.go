package replay

import (
	"github.com/vkngwrapper/arsenal/replay/capture"
	"golang.org/x/exp/slog"
)

// findPool maps a recorded pool handle to the live pool allocations should be
// made from. A zero handle is the default pool. An unknown handle is
// reported, but the allocation proceeds against the default pool so the
// replay keeps as much fidelity as it can.
func (p *Player) findPool(lineNumber uint64, origPool capture.Handle) TargetPool {
	if origPool == 0 {
		return nil
	}

	assoc, ok := p.pools.Get(origPool)
	if !ok {
		p.reporter.warn("pool not found, allocating from default pool",
			slog.Uint64("line", lineNumber),
			slog.String("pool", origPool.String()))
		return nil
	}
	return assoc.pool
}

// addPool reconciles a live pool creation against the recorded outcome and
// stores the association. All four combinations of recorded and live success
// are handled; a divergence is reported but never stops the replay.
func (p *Player) addPool(lineNumber uint64, origHandle capture.Handle, pool TargetPool, liveErr error) {
	if origHandle == 0 {
		// Recorded creation failed.
		if liveErr == nil {
			p.reporter.warn("pool creation succeeded, but originally failed",
				slog.Uint64("line", lineNumber))
			if err := pool.Destroy(); err != nil {
				p.logger.Error("failed to destroy unmatched pool",
					slog.Uint64("line", lineNumber),
					slog.Any("error", err))
			}
		} else {
			p.reporter.warn("pool creation failed, originally also failed",
				slog.Uint64("line", lineNumber),
				slog.Any("error", liveErr))
		}
		return
	}

	if liveErr != nil {
		p.reporter.warn("pool creation failed, but originally succeeded",
			slog.Uint64("line", lineNumber),
			slog.String("pool", origHandle.String()),
			slog.Any("error", liveErr))
		pool = nil
	}

	if p.pools.Has(origHandle) {
		p.reporter.warn("pool already exists",
			slog.Uint64("line", lineNumber),
			slog.String("pool", origHandle.String()))
	}
	p.pools.Put(origHandle, poolAssociation{pool: pool})
}

// addAllocation reconciles a live allocation against the recorded outcome and
// stores the association, exactly as addPool does for pools.
func (p *Player) addAllocation(lineNumber uint64, origHandle capture.Handle, alloc TargetAllocation, liveErr error, kind allocationKind, createFlags uint32) {
	if origHandle == 0 {
		if liveErr == nil {
			p.reporter.warn("allocation succeeded, but originally failed",
				slog.Uint64("line", lineNumber),
				slog.String("kind", kind.String()))
			if err := alloc.Free(); err != nil {
				p.logger.Error("failed to free unmatched allocation",
					slog.Uint64("line", lineNumber),
					slog.Any("error", err))
			}
		} else {
			p.reporter.warn("allocation failed, originally also failed",
				slog.Uint64("line", lineNumber),
				slog.String("kind", kind.String()),
				slog.Any("error", liveErr))
		}
		return
	}

	if liveErr != nil {
		p.reporter.warn("allocation failed, but originally succeeded",
			slog.Uint64("line", lineNumber),
			slog.String("allocation", origHandle.String()),
			slog.String("kind", kind.String()),
			slog.Any("error", liveErr))
		alloc = nil
	}

	if p.allocations.Has(origHandle) {
		p.reporter.warn("allocation already exists",
			slog.Uint64("line", lineNumber),
			slog.String("allocation", origHandle.String()))
	}
	p.allocations.Put(origHandle, allocationAssociation{
		createFlags: createFlags,
		kind:        kind,
		allocation:  alloc,
	})
}
