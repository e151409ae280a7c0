package vulkan

import (
	"github.com/vkngwrapper/arsenal/replay/replay"
	"github.com/vkngwrapper/arsenal/vam"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// Recorded bit values for pool create flags, allocation create flags, and
// memory usage. Recordings were written by an older generation of the
// allocator whose numeric values no longer line up with vam's, so each value
// is translated rather than cast.
const (
	recordedPoolIgnoreBufferImageGranularity uint32 = 0x00000002
	recordedPoolLinearAlgorithm              uint32 = 0x00000004

	recordedAllocDedicatedMemory  uint32 = 0x00000001
	recordedAllocNeverAllocate    uint32 = 0x00000002
	recordedAllocMapped           uint32 = 0x00000004
	recordedAllocUpperAddress     uint32 = 0x00000040
	recordedAllocStrategyBestFit  uint32 = 0x00010000
	recordedAllocStrategyWorstFit uint32 = 0x00020000
	recordedAllocStrategyFirst    uint32 = 0x00040000

	recordedUsageGPUOnly  uint32 = 1
	recordedUsageCPUOnly  uint32 = 2
	recordedUsageCPUToGPU uint32 = 3
	recordedUsageGPUToCPU uint32 = 4
	recordedUsageCPUCopy  uint32 = 5
)

func poolCreateFlags(recorded uint32) vam.PoolCreateFlags {
	var flags vam.PoolCreateFlags
	if recorded&recordedPoolIgnoreBufferImageGranularity != 0 {
		flags |= vam.PoolCreateIgnoreBufferImageGranularity
	}
	if recorded&recordedPoolLinearAlgorithm != 0 {
		flags |= vam.PoolCreateLinearAlgorithm
	}
	return flags
}

func allocationCreateFlags(recorded uint32) vam.AllocationCreateFlags {
	var flags vam.AllocationCreateFlags
	if recorded&recordedAllocDedicatedMemory != 0 {
		flags |= vam.AllocationCreateDedicatedMemory
	}
	if recorded&recordedAllocNeverAllocate != 0 {
		flags |= vam.AllocationCreateNeverAllocate
	}
	if recorded&recordedAllocMapped != 0 {
		flags |= vam.AllocationCreateMapped
	}
	if recorded&recordedAllocUpperAddress != 0 {
		flags |= vam.AllocationCreateUpperAddress
	}
	// Worst-fit has no equivalent in this allocator; best-fit and first-fit
	// map onto the strategies that replaced them.
	if recorded&recordedAllocStrategyBestFit != 0 {
		flags |= vam.AllocationCreateStrategyMinMemory
	}
	if recorded&recordedAllocStrategyFirst != 0 {
		flags |= vam.AllocationCreateStrategyMinTime
	}
	return flags
}

// memoryUsageFlags maps a recorded memory usage value onto required and
// preferred memory property flags. The recorded enum no longer exists in the
// allocator, but each of its values was defined in terms of these flags.
func memoryUsageFlags(recorded uint32) (required, preferred core1_0.MemoryPropertyFlags) {
	switch recorded {
	case recordedUsageGPUOnly:
		return 0, core1_0.MemoryPropertyDeviceLocal
	case recordedUsageCPUOnly:
		return core1_0.MemoryPropertyHostVisible | core1_0.MemoryPropertyHostCoherent, 0
	case recordedUsageCPUToGPU:
		return core1_0.MemoryPropertyHostVisible, core1_0.MemoryPropertyDeviceLocal
	case recordedUsageGPUToCPU:
		return core1_0.MemoryPropertyHostVisible, core1_0.MemoryPropertyHostCached
	case recordedUsageCPUCopy:
		return core1_0.MemoryPropertyHostVisible, 0
	}
	return 0, 0
}

func allocationCreateInfo(alloc replay.AllocationParams) vam.AllocationCreateInfo {
	required, preferred := memoryUsageFlags(alloc.Usage)
	required |= core1_0.MemoryPropertyFlags(alloc.RequiredFlags)
	preferred |= core1_0.MemoryPropertyFlags(alloc.PreferredFlags)

	var pool *vam.Pool
	if livePool, ok := alloc.Pool.(*targetPool); ok {
		pool = livePool.pool
	}

	return vam.AllocationCreateInfo{
		Flags:          allocationCreateFlags(alloc.Flags),
		Usage:          vam.MemoryUsageUnknown,
		RequiredFlags:  required,
		PreferredFlags: preferred,
		MemoryTypeBits: alloc.MemoryTypeBits,
		Pool:           pool,
	}
}
