package capture

// Function identifies one of the allocator entry points a recording can
// contain. The set is closed: lines naming any other function are reported
// and skipped by the player.
type Function int

const (
	FunctionCreateAllocator Function = iota
	FunctionDestroyAllocator
	FunctionCreatePool
	FunctionDestroyPool
	FunctionSetAllocationUserData
	FunctionCreateBuffer
	FunctionDestroyBuffer
	FunctionCreateImage
	FunctionDestroyImage
	FunctionFreeMemory
	FunctionCreateLostAllocation
	FunctionAllocateMemory
	FunctionAllocateMemoryForBuffer
	FunctionAllocateMemoryForImage
	FunctionMapMemory
	FunctionUnmapMemory
	FunctionFlushAllocation
	FunctionInvalidateAllocation
	FunctionTouchAllocation
	FunctionGetAllocationInfo
	FunctionMakePoolAllocationsLost

	FunctionCount int = iota
)

var functionNames = [FunctionCount]string{
	FunctionCreateAllocator:         "vmaCreateAllocator",
	FunctionDestroyAllocator:        "vmaDestroyAllocator",
	FunctionCreatePool:              "vmaCreatePool",
	FunctionDestroyPool:             "vmaDestroyPool",
	FunctionSetAllocationUserData:   "vmaSetAllocationUserData",
	FunctionCreateBuffer:            "vmaCreateBuffer",
	FunctionDestroyBuffer:           "vmaDestroyBuffer",
	FunctionCreateImage:             "vmaCreateImage",
	FunctionDestroyImage:            "vmaDestroyImage",
	FunctionFreeMemory:              "vmaFreeMemory",
	FunctionCreateLostAllocation:    "vmaCreateLostAllocation",
	FunctionAllocateMemory:          "vmaAllocateMemory",
	FunctionAllocateMemoryForBuffer: "vmaAllocateMemoryForBuffer",
	FunctionAllocateMemoryForImage:  "vmaAllocateMemoryForImage",
	FunctionMapMemory:               "vmaMapMemory",
	FunctionUnmapMemory:             "vmaUnmapMemory",
	FunctionFlushAllocation:         "vmaFlushAllocation",
	FunctionInvalidateAllocation:    "vmaInvalidateAllocation",
	FunctionTouchAllocation:         "vmaTouchAllocation",
	FunctionGetAllocationInfo:       "vmaGetAllocationInfo",
	FunctionMakePoolAllocationsLost: "vmaMakePoolAllocationsLost",
}

var functionsByName map[string]Function

func init() {
	functionsByName = make(map[string]Function, FunctionCount)
	for f, name := range functionNames {
		functionsByName[name] = Function(f)
	}
}

func (f Function) String() string {
	if f < 0 || int(f) >= FunctionCount {
		return "unknown function"
	}
	return functionNames[f]
}

// FunctionByName maps a recorded function name back to its Function value.
func FunctionByName(name string) (Function, bool) {
	f, ok := functionsByName[name]
	return f, ok
}
