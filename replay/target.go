package replay

// Recorded allocation create flag bits. These are the bit values used by the
// recording format, which come from an older generation of the allocator than
// the one this module links against, so they are declared here rather than
// taken from memutils.
const (
	// AllocationCreateDedicatedMemory requests that the allocation be given
	// its own device memory block.
	AllocationCreateDedicatedMemory uint32 = 0x00000001
	// AllocationCreateUserDataCopyString indicates the user data recorded for
	// the allocation is a string rather than a pointer value.
	AllocationCreateUserDataCopyString uint32 = 0x00000020
)

// PoolParams describes a custom pool exactly as it was recorded.
type PoolParams struct {
	MemoryTypeIndex uint32
	Flags           uint32
	BlockSize       uint64
	MinBlockCount   uint64
	MaxBlockCount   uint64
	FrameInUseCount uint32
}

// BufferParams describes a buffer exactly as it was recorded.
type BufferParams struct {
	Flags       uint32
	Size        uint64
	Usage       uint32
	SharingMode uint32
}

// ImageParams describes an image exactly as it was recorded.
type ImageParams struct {
	Flags         uint32
	ImageType     uint32
	Format        uint32
	Width         uint32
	Height        uint32
	Depth         uint32
	MipLevels     uint32
	ArrayLayers   uint32
	Samples       uint32
	Tiling        uint32
	Usage         uint32
	SharingMode   uint32
	InitialLayout uint32
}

// MemoryRequirements describes the memory requirements recorded for a generic
// memory allocation.
type MemoryRequirements struct {
	Size           uint64
	Alignment      uint64
	MemoryTypeBits uint32
}

// AllocationParams carries the recorded allocation create info, already
// resolved against the player's pool table.
type AllocationParams struct {
	Flags          uint32
	Usage          uint32
	RequiredFlags  uint32
	PreferredFlags uint32
	MemoryTypeBits uint32
	Pool           TargetPool
	UserData       any
}

// AllocationInfo is the subset of allocation state the recorded
// vmaGetAllocationInfo call retrieves.
type AllocationInfo struct {
	MemoryType uint32
	Offset     uint64
	Size       uint64
	UserData   any
}

// Target is the live allocator a recording is replayed against. The vulkan
// package provides the real implementation; tests substitute mocks.
//
// A Target is used from a single goroutine and is destroyed once the replay
// completes.
type Target interface {
	// SetCurrentFrameIndex is called whenever the recorded frame index
	// advances.
	SetCurrentFrameIndex(frameIndex uint32)

	CreatePool(params PoolParams) (TargetPool, error)
	CreateBuffer(buffer BufferParams, alloc AllocationParams) (TargetAllocation, error)
	CreateImage(image ImageParams, alloc AllocationParams) (TargetAllocation, error)
	AllocateMemory(requirements MemoryRequirements, alloc AllocationParams) (TargetAllocation, error)

	// CreateLostAllocation produces an allocation with no backing memory.
	// Structural operations on it succeed and Touch reports false.
	CreateLostAllocation() (TargetAllocation, error)

	Destroy() error
}

// TargetPool is a live custom pool created for a recorded pool handle.
type TargetPool interface {
	MakeAllocationsLost() error
	Destroy() error
}

// TargetAllocation is a live allocation created for a recorded allocation
// handle, whether it is backed by a buffer, an image, or raw memory.
type TargetAllocation interface {
	SetUserData(userData any) error
	Map() error
	Unmap() error
	Flush(offset, size uint64) error
	Invalidate(offset, size uint64) error

	// Touch reports whether the allocation still has backing memory.
	Touch() bool
	Info() (AllocationInfo, error)

	Free() error
}
