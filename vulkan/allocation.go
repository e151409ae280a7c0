package vulkan

import (
	"github.com/vkngwrapper/arsenal/replay/replay"
	"github.com/vkngwrapper/arsenal/vam"
	"github.com/vkngwrapper/core/v2/core1_0"
)

type targetPool struct {
	pool *vam.Pool
}

var _ replay.TargetPool = (*targetPool)(nil)

// MakeAllocationsLost is accepted for recording compatibility. The allocator
// no longer supports lost allocations, so there is nothing to lose.
func (p *targetPool) MakeAllocationsLost() error {
	return nil
}

func (p *targetPool) Destroy() error {
	return p.pool.Destroy()
}

type backingKind int

const (
	// backingNone is an allocation that was recorded as lost. It has no live
	// memory behind it; operations on it succeed without effect and Touch
	// reports false.
	backingNone backingKind = iota
	backingMemory
	backingBuffer
	backingImage
)

type targetAllocation struct {
	kind       backingKind
	allocation vam.Allocation
	buffer     core1_0.Buffer
	image      core1_0.Image
}

var _ replay.TargetAllocation = (*targetAllocation)(nil)

func applyUserData(alloc *vam.Allocation, userData any) {
	switch data := userData.(type) {
	case nil:
	case string:
		alloc.SetName(data)
	default:
		alloc.SetUserData(data)
	}
}

func (a *targetAllocation) SetUserData(userData any) error {
	if a.kind == backingNone {
		return nil
	}
	applyUserData(&a.allocation, userData)
	return nil
}

func (a *targetAllocation) Map() error {
	if a.kind == backingNone {
		return nil
	}
	_, _, err := a.allocation.Map()
	return err
}

func (a *targetAllocation) Unmap() error {
	if a.kind == backingNone {
		return nil
	}
	return a.allocation.Unmap()
}

func (a *targetAllocation) Flush(offset, size uint64) error {
	if a.kind == backingNone {
		return nil
	}
	_, err := a.allocation.Flush(int(offset), int(size))
	return err
}

func (a *targetAllocation) Invalidate(offset, size uint64) error {
	if a.kind == backingNone {
		return nil
	}
	_, err := a.allocation.Invalidate(int(offset), int(size))
	return err
}

func (a *targetAllocation) Touch() bool {
	return a.kind != backingNone
}

func (a *targetAllocation) Info() (replay.AllocationInfo, error) {
	if a.kind == backingNone {
		return replay.AllocationInfo{}, nil
	}
	return replay.AllocationInfo{
		MemoryType: uint32(a.allocation.MemoryTypeIndex()),
		Offset:     uint64(a.allocation.FindOffset()),
		Size:       uint64(a.allocation.Size()),
		UserData:   a.allocation.UserData(),
	}, nil
}

func (a *targetAllocation) Free() error {
	switch a.kind {
	case backingNone:
		return nil
	case backingBuffer:
		return a.allocation.DestroyBuffer(a.buffer)
	case backingImage:
		return a.allocation.DestroyImage(a.image)
	}
	return a.allocation.Free()
}
