package replay

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/arsenal/replay/capture"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// UsageClassCount is the number of coarse usage classes buffers and images
// are sorted into for reporting.
const UsageClassCount = 4

// BufferUsageToClass sorts a recorded buffer usage bitmask into a reporting
// class. Draw-call geometry wins over storage, storage over uniform data, and
// anything else (transfer-only buffers included) lands in the final class.
func BufferUsageToClass(usage uint32) int {
	switch {
	case usage&uint32(core1_0.BufferUsageIndirectBuffer|
		core1_0.BufferUsageVertexBuffer|
		core1_0.BufferUsageIndexBuffer) != 0:
		return 0
	case usage&uint32(core1_0.BufferUsageStorageBuffer|
		core1_0.BufferUsageStorageTexelBuffer) != 0:
		return 1
	case usage&uint32(core1_0.BufferUsageUniformBuffer|
		core1_0.BufferUsageUniformTexelBuffer) != 0:
		return 2
	}
	return 3
}

// ImageUsageToClass sorts a recorded image usage bitmask into a reporting
// class. Depth/stencil attachments win over other attachments, attachments
// over sampled images.
func ImageUsageToClass(usage uint32) int {
	switch {
	case usage&uint32(core1_0.ImageUsageDepthStencilAttachment) != 0:
		return 0
	case usage&uint32(core1_0.ImageUsageInputAttachment|
		core1_0.ImageUsageTransientAttachment|
		core1_0.ImageUsageColorAttachment) != 0:
		return 1
	case usage&uint32(core1_0.ImageUsageSampled) != 0:
		return 2
	}
	return 3
}

// Statistics accumulates what a replayed recording asked the allocator to do.
// It counts recorded requests, not live outcomes: a creation that fails on
// the live allocator is still counted.
type Statistics struct {
	functionCallCount [capture.FunctionCount]uint64

	bufferCreationCount      [UsageClassCount]uint64
	imageCreationCount       [UsageClassCount]uint64
	linearImageCreationCount uint64

	allocationCreationCount uint64
	poolCreationCount       uint64
}

func (s *Statistics) RegisterFunctionCall(f capture.Function) {
	s.functionCallCount[f]++
}

func (s *Statistics) RegisterCreatePool() {
	s.poolCreationCount++
}

func (s *Statistics) RegisterCreateBuffer(usage uint32) {
	s.bufferCreationCount[BufferUsageToClass(usage)]++
	s.allocationCreationCount++
}

// RegisterCreateImage counts an image creation. Linear-tiling images are
// tracked separately and excluded from the usage classes.
func (s *Statistics) RegisterCreateImage(usage, tiling uint32) {
	if tiling == uint32(core1_0.ImageTilingLinear) {
		s.linearImageCreationCount++
	} else {
		s.imageCreationCount[ImageUsageToClass(usage)]++
	}
	s.allocationCreationCount++
}

func (s *Statistics) RegisterCreateAllocation() {
	s.allocationCreationCount++
}

// FunctionCallCount returns how many recorded calls to f were executed.
func (s *Statistics) FunctionCallCount(f capture.Function) uint64 {
	return s.functionCallCount[f]
}

// TotalFunctionCallCount returns how many recorded calls were executed in
// total.
func (s *Statistics) TotalFunctionCallCount() uint64 {
	var total uint64
	for _, count := range s.functionCallCount {
		total += count
	}
	return total
}

// BufferCreationCount returns how many buffer creations fell into the given
// usage class.
func (s *Statistics) BufferCreationCount(class int) uint64 {
	return s.bufferCreationCount[class]
}

// TotalBufferCreationCount returns how many buffers were created across all
// usage classes.
func (s *Statistics) TotalBufferCreationCount() uint64 {
	var total uint64
	for _, count := range s.bufferCreationCount {
		total += count
	}
	return total
}

// ImageCreationCount returns how many non-linear image creations fell into
// the given usage class.
func (s *Statistics) ImageCreationCount(class int) uint64 {
	return s.imageCreationCount[class]
}

// TotalImageCreationCount returns how many non-linear images were created
// across all usage classes.
func (s *Statistics) TotalImageCreationCount() uint64 {
	var total uint64
	for _, count := range s.imageCreationCount {
		total += count
	}
	return total
}

// LinearImageCreationCount returns how many created images used linear
// tiling.
func (s *Statistics) LinearImageCreationCount() uint64 {
	return s.linearImageCreationCount
}

// AllocationCreationCount returns how many allocations were created in
// total, including those backing buffers, images, and lost allocations.
func (s *Statistics) AllocationCreationCount() uint64 {
	return s.allocationCreationCount
}

// PoolCreationCount returns how many custom pools were created.
func (s *Statistics) PoolCreationCount() uint64 {
	return s.poolCreationCount
}

// PrintJSON writes the statistics to a JSON stream.
func (s *Statistics) PrintJSON(writer *jwriter.Writer) {
	objState := writer.Object()
	defer objState.End()

	objState.Name("TotalFunctionCalls").Int(int(s.TotalFunctionCallCount()))

	callsObj := objState.Name("FunctionCalls").Object()
	for f := 0; f < capture.FunctionCount; f++ {
		callsObj.Name(capture.Function(f).String()).Int(int(s.functionCallCount[f]))
	}
	callsObj.End()

	buffersObj := objState.Name("BufferCreations").Object()
	buffersObj.Name("Total").Int(int(s.TotalBufferCreationCount()))
	bufferClasses := buffersObj.Name("UsageClasses").Array()
	for class := 0; class < UsageClassCount; class++ {
		bufferClasses.Int(int(s.bufferCreationCount[class]))
	}
	bufferClasses.End()
	buffersObj.End()

	imagesObj := objState.Name("ImageCreations").Object()
	imagesObj.Name("Total").Int(int(s.TotalImageCreationCount()))
	imageClasses := imagesObj.Name("UsageClasses").Array()
	for class := 0; class < UsageClassCount; class++ {
		imageClasses.Int(int(s.imageCreationCount[class]))
	}
	imageClasses.End()
	imagesObj.Name("LinearTiling").Int(int(s.linearImageCreationCount))
	imagesObj.End()

	objState.Name("AllocationCreations").Int(int(s.allocationCreationCount))
	objState.Name("PoolCreations").Int(int(s.poolCreationCount))
}
