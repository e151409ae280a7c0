package replay

import (
	"github.com/vkngwrapper/arsenal/replay/capture"
	"golang.org/x/exp/slog"
)

// fieldParser consumes one parameter field. Parsers are assembled per recorded
// function so each executor states its parameter list in one place.
type fieldParser func(field string) bool

func fieldUint32(out *uint32) fieldParser {
	return func(field string) bool {
		val, ok := capture.ParseUint32(field)
		*out = val
		return ok
	}
}

func fieldUint64(out *uint64) fieldParser {
	return func(field string) bool {
		val, ok := capture.ParseUint64(field)
		*out = val
		return ok
	}
}

func fieldBool(out *bool) fieldParser {
	return func(field string) bool {
		val, ok := capture.ParseBool(field)
		*out = val
		return ok
	}
}

func fieldHandle(out *capture.Handle) fieldParser {
	return func(field string) bool {
		val, ok := capture.ParseHandle(field)
		*out = val
		return ok
	}
}

// validateParamCount checks the number of parameter fields on the current
// line. When lastUnbound is set the final parameter may contain commas (user
// data strings), so only a lower bound is enforced.
func (p *Player) validateParamCount(lineNumber uint64, expected int, lastUnbound bool) bool {
	count := p.split.Count()
	ok := count == firstParamIndex+expected
	if lastUnbound {
		ok = count >= firstParamIndex+expected-1
	}
	if !ok {
		p.reporter.warn("incorrect number of function parameters",
			slog.Uint64("line", lineNumber))
	}
	return ok
}

// parseParams parses consecutive parameter fields starting at firstParamIndex.
func (p *Player) parseParams(lineNumber uint64, parsers ...fieldParser) bool {
	for i, parser := range parsers {
		if !parser(p.split.Field(firstParamIndex + i)) {
			p.reporter.warn("invalid function parameter",
				slog.Uint64("line", lineNumber),
				slog.Int("parameter", i))
			return false
		}
	}
	return true
}

// prepareUserData interprets the optional trailing user data parameter. With
// the copy-string flag set the remainder of the line is used verbatim,
// commas included. Otherwise the recorded pointer value is kept as an opaque
// number.
func (p *Player) prepareUserData(lineNumber uint64, allocFlags uint32, fieldIndex int) (any, bool) {
	if !p.config.UserDataEnabled || p.split.Count() <= fieldIndex {
		return nil, true
	}

	if allocFlags&AllocationCreateUserDataCopyString != 0 {
		return p.split.TailFrom(fieldIndex), true
	}

	ptr, ok := capture.ParseHandle(p.split.Field(fieldIndex))
	if !ok {
		p.reporter.warn("invalid user data",
			slog.Uint64("line", lineNumber),
			slog.String("userData", p.split.Field(fieldIndex)))
		return nil, false
	}
	if ptr == 0 {
		return nil, true
	}
	return uint64(ptr), true
}

// resolveAllocation maps a recorded allocation handle to its live allocation
// for functions that only touch an existing allocation. It returns nil, with
// a warning where appropriate, when there is nothing to call.
func (p *Player) resolveAllocation(lineNumber uint64, origHandle capture.Handle, function capture.Function) TargetAllocation {
	if origHandle == 0 {
		return nil
	}

	assoc, ok := p.allocations.Get(origHandle)
	if !ok {
		p.reporter.warn("allocation not found",
			slog.Uint64("line", lineNumber),
			slog.String("function", function.String()),
			slog.String("allocation", origHandle.String()))
		return nil
	}
	if assoc.allocation == nil {
		p.reporter.warn("allocation exists in recording but not in replay",
			slog.Uint64("line", lineNumber),
			slog.String("function", function.String()),
			slog.String("allocation", origHandle.String()))
		return nil
	}
	return assoc.allocation
}

func (p *Player) executeCreatePool(lineNumber uint64) {
	var params PoolParams
	var origHandle capture.Handle

	if !p.validateParamCount(lineNumber, 7, false) {
		return
	}
	if !p.parseParams(lineNumber,
		fieldUint32(&params.MemoryTypeIndex),
		fieldUint32(&params.Flags),
		fieldUint64(&params.BlockSize),
		fieldUint64(&params.MinBlockCount),
		fieldUint64(&params.MaxBlockCount),
		fieldUint32(&params.FrameInUseCount),
		fieldHandle(&origHandle)) {
		return
	}

	p.stats.RegisterCreatePool()

	pool, err := p.target.CreatePool(params)
	p.addPool(lineNumber, origHandle, pool, err)
}

func (p *Player) executeDestroyPool(lineNumber uint64) {
	var origHandle capture.Handle

	if !p.validateParamCount(lineNumber, 1, false) {
		return
	}
	if !p.parseParams(lineNumber, fieldHandle(&origHandle)) {
		return
	}
	if origHandle == 0 {
		return
	}

	assoc, ok := p.pools.Get(origHandle)
	if !ok {
		p.reporter.warn("pool not found",
			slog.Uint64("line", lineNumber),
			slog.String("function", capture.FunctionDestroyPool.String()),
			slog.String("pool", origHandle.String()))
		return
	}

	if assoc.pool != nil {
		if err := assoc.pool.Destroy(); err != nil {
			p.reporter.warn("failed to destroy pool",
				slog.Uint64("line", lineNumber),
				slog.String("pool", origHandle.String()),
				slog.Any("error", err))
		}
	}
	p.pools.Delete(origHandle)
}

func (p *Player) executeSetAllocationUserData(lineNumber uint64) {
	var origHandle capture.Handle

	if !p.validateParamCount(lineNumber, 2, true) {
		return
	}
	if !p.parseParams(lineNumber, fieldHandle(&origHandle)) {
		return
	}
	if !p.config.UserDataEnabled || origHandle == 0 {
		return
	}

	assoc, ok := p.allocations.Get(origHandle)
	if !ok {
		p.reporter.warn("allocation not found",
			slog.Uint64("line", lineNumber),
			slog.String("function", capture.FunctionSetAllocationUserData.String()),
			slog.String("allocation", origHandle.String()))
		return
	}
	if assoc.allocation == nil {
		p.reporter.warn("allocation exists in recording but not in replay",
			slog.Uint64("line", lineNumber),
			slog.String("function", capture.FunctionSetAllocationUserData.String()),
			slog.String("allocation", origHandle.String()))
		return
	}

	userData, ok := p.prepareUserData(lineNumber, assoc.createFlags, firstParamIndex+1)
	if !ok {
		return
	}
	if err := assoc.allocation.SetUserData(userData); err != nil {
		p.reporter.warn("failed to set allocation user data",
			slog.Uint64("line", lineNumber),
			slog.String("allocation", origHandle.String()),
			slog.Any("error", err))
	}
}

func (p *Player) executeCreateBuffer(lineNumber uint64) {
	var buffer BufferParams
	var alloc AllocationParams
	var origPool, origHandle capture.Handle

	if !p.validateParamCount(lineNumber, 12, true) {
		return
	}
	if !p.parseParams(lineNumber,
		fieldUint32(&buffer.Flags),
		fieldUint64(&buffer.Size),
		fieldUint32(&buffer.Usage),
		fieldUint32(&buffer.SharingMode),
		fieldUint32(&alloc.Flags),
		fieldUint32(&alloc.Usage),
		fieldUint32(&alloc.RequiredFlags),
		fieldUint32(&alloc.PreferredFlags),
		fieldUint32(&alloc.MemoryTypeBits),
		fieldHandle(&origPool),
		fieldHandle(&origHandle)) {
		return
	}

	alloc.Pool = p.findPool(lineNumber, origPool)

	userData, ok := p.prepareUserData(lineNumber, alloc.Flags, firstParamIndex+11)
	if !ok {
		return
	}
	alloc.UserData = userData

	p.stats.RegisterCreateBuffer(buffer.Usage)

	liveAlloc, err := p.target.CreateBuffer(buffer, alloc)
	p.addAllocation(lineNumber, origHandle, liveAlloc, err, allocationKindBuffer, alloc.Flags)
}

func (p *Player) executeCreateImage(lineNumber uint64) {
	var image ImageParams
	var alloc AllocationParams
	var origPool, origHandle capture.Handle

	if !p.validateParamCount(lineNumber, 21, true) {
		return
	}
	if !p.parseParams(lineNumber,
		fieldUint32(&image.Flags),
		fieldUint32(&image.ImageType),
		fieldUint32(&image.Format),
		fieldUint32(&image.Width),
		fieldUint32(&image.Height),
		fieldUint32(&image.Depth),
		fieldUint32(&image.MipLevels),
		fieldUint32(&image.ArrayLayers),
		fieldUint32(&image.Samples),
		fieldUint32(&image.Tiling),
		fieldUint32(&image.Usage),
		fieldUint32(&image.SharingMode),
		fieldUint32(&image.InitialLayout),
		fieldUint32(&alloc.Flags),
		fieldUint32(&alloc.Usage),
		fieldUint32(&alloc.RequiredFlags),
		fieldUint32(&alloc.PreferredFlags),
		fieldUint32(&alloc.MemoryTypeBits),
		fieldHandle(&origPool),
		fieldHandle(&origHandle)) {
		return
	}

	alloc.Pool = p.findPool(lineNumber, origPool)

	userData, ok := p.prepareUserData(lineNumber, alloc.Flags, firstParamIndex+20)
	if !ok {
		return
	}
	alloc.UserData = userData

	p.stats.RegisterCreateImage(image.Usage, image.Tiling)

	liveAlloc, err := p.target.CreateImage(image, alloc)
	p.addAllocation(lineNumber, origHandle, liveAlloc, err, allocationKindImage, alloc.Flags)
}

func (p *Player) executeDestroyAllocation(lineNumber uint64) {
	var origHandle capture.Handle

	if !p.validateParamCount(lineNumber, 1, false) {
		return
	}
	if !p.parseParams(lineNumber, fieldHandle(&origHandle)) {
		return
	}
	if origHandle == 0 {
		return
	}

	assoc, ok := p.allocations.Get(origHandle)
	if !ok {
		p.reporter.warn("allocation not found",
			slog.Uint64("line", lineNumber),
			slog.String("allocation", origHandle.String()))
		return
	}

	if assoc.allocation != nil {
		if err := assoc.allocation.Free(); err != nil {
			p.reporter.warn("failed to free allocation",
				slog.Uint64("line", lineNumber),
				slog.String("allocation", origHandle.String()),
				slog.String("kind", assoc.kind.String()),
				slog.Any("error", err))
		}
	}
	p.allocations.Delete(origHandle)
}

func (p *Player) executeCreateLostAllocation(lineNumber uint64) {
	var origHandle capture.Handle

	if !p.validateParamCount(lineNumber, 1, false) {
		return
	}
	if !p.parseParams(lineNumber, fieldHandle(&origHandle)) {
		return
	}

	p.stats.RegisterCreateAllocation()

	liveAlloc, err := p.target.CreateLostAllocation()
	p.addAllocation(lineNumber, origHandle, liveAlloc, err, allocationKindLost, 0)
}

func (p *Player) executeAllocateMemory(lineNumber uint64) {
	var requirements MemoryRequirements
	var alloc AllocationParams
	var origPool, origHandle capture.Handle

	if !p.validateParamCount(lineNumber, 11, true) {
		return
	}
	if !p.parseParams(lineNumber,
		fieldUint64(&requirements.Size),
		fieldUint64(&requirements.Alignment),
		fieldUint32(&requirements.MemoryTypeBits),
		fieldUint32(&alloc.Flags),
		fieldUint32(&alloc.Usage),
		fieldUint32(&alloc.RequiredFlags),
		fieldUint32(&alloc.PreferredFlags),
		fieldUint32(&alloc.MemoryTypeBits),
		fieldHandle(&origPool),
		fieldHandle(&origHandle)) {
		return
	}

	alloc.Pool = p.findPool(lineNumber, origPool)

	userData, ok := p.prepareUserData(lineNumber, alloc.Flags, firstParamIndex+10)
	if !ok {
		return
	}
	alloc.UserData = userData

	p.stats.RegisterCreateAllocation()

	liveAlloc, err := p.target.AllocateMemory(requirements, alloc)
	p.addAllocation(lineNumber, origHandle, liveAlloc, err, allocationKindRaw, alloc.Flags)
}

// executeAllocateMemoryForResource replays vmaAllocateMemoryForBuffer and
// vmaAllocateMemoryForImage. The buffer or image they were recorded against
// no longer exists, so the call is substituted with a generic memory
// allocation using the recorded requirements, made dedicated when the
// original driver asked for dedicated memory.
func (p *Player) executeAllocateMemoryForResource(lineNumber uint64, function capture.Function) {
	var requirements MemoryRequirements
	var alloc AllocationParams
	var requiresDedicated, prefersDedicated bool
	var origPool, origHandle capture.Handle

	if !p.validateParamCount(lineNumber, 13, true) {
		return
	}
	if !p.parseParams(lineNumber,
		fieldUint64(&requirements.Size),
		fieldUint64(&requirements.Alignment),
		fieldUint32(&requirements.MemoryTypeBits),
		fieldBool(&requiresDedicated),
		fieldBool(&prefersDedicated),
		fieldUint32(&alloc.Flags),
		fieldUint32(&alloc.Usage),
		fieldUint32(&alloc.RequiredFlags),
		fieldUint32(&alloc.PreferredFlags),
		fieldUint32(&alloc.MemoryTypeBits),
		fieldHandle(&origPool),
		fieldHandle(&origHandle)) {
		return
	}

	if requiresDedicated || prefersDedicated {
		alloc.Flags |= AllocationCreateDedicatedMemory
	}

	if !p.substitutionNoted {
		p.substitutionNoted = true
		p.reporter.warn("replaying allocations for buffers and images as generic allocations",
			slog.Uint64("line", lineNumber),
			slog.String("function", function.String()))
	}

	alloc.Pool = p.findPool(lineNumber, origPool)

	userData, ok := p.prepareUserData(lineNumber, alloc.Flags, firstParamIndex+12)
	if !ok {
		return
	}
	alloc.UserData = userData

	p.stats.RegisterCreateAllocation()

	liveAlloc, err := p.target.AllocateMemory(requirements, alloc)
	p.addAllocation(lineNumber, origHandle, liveAlloc, err, allocationKindRaw, alloc.Flags)
}

func (p *Player) executeMapMemory(lineNumber uint64) {
	var origHandle capture.Handle

	if !p.validateParamCount(lineNumber, 1, false) {
		return
	}
	if !p.parseParams(lineNumber, fieldHandle(&origHandle)) {
		return
	}

	alloc := p.resolveAllocation(lineNumber, origHandle, capture.FunctionMapMemory)
	if alloc == nil {
		return
	}
	if err := alloc.Map(); err != nil {
		p.reporter.warn("failed to map allocation",
			slog.Uint64("line", lineNumber),
			slog.String("allocation", origHandle.String()),
			slog.Any("error", err))
	}
}

func (p *Player) executeUnmapMemory(lineNumber uint64) {
	var origHandle capture.Handle

	if !p.validateParamCount(lineNumber, 1, false) {
		return
	}
	if !p.parseParams(lineNumber, fieldHandle(&origHandle)) {
		return
	}

	alloc := p.resolveAllocation(lineNumber, origHandle, capture.FunctionUnmapMemory)
	if alloc == nil {
		return
	}
	if err := alloc.Unmap(); err != nil {
		p.reporter.warn("failed to unmap allocation",
			slog.Uint64("line", lineNumber),
			slog.String("allocation", origHandle.String()),
			slog.Any("error", err))
	}
}

func (p *Player) executeFlushAllocation(lineNumber uint64) {
	var origHandle capture.Handle
	var offset, size uint64

	if !p.validateParamCount(lineNumber, 3, false) {
		return
	}
	if !p.parseParams(lineNumber,
		fieldHandle(&origHandle),
		fieldUint64(&offset),
		fieldUint64(&size)) {
		return
	}

	alloc := p.resolveAllocation(lineNumber, origHandle, capture.FunctionFlushAllocation)
	if alloc == nil {
		return
	}
	if err := alloc.Flush(offset, size); err != nil {
		p.reporter.warn("failed to flush allocation",
			slog.Uint64("line", lineNumber),
			slog.String("allocation", origHandle.String()),
			slog.Any("error", err))
	}
}

func (p *Player) executeInvalidateAllocation(lineNumber uint64) {
	var origHandle capture.Handle
	var offset, size uint64

	if !p.validateParamCount(lineNumber, 3, false) {
		return
	}
	if !p.parseParams(lineNumber,
		fieldHandle(&origHandle),
		fieldUint64(&offset),
		fieldUint64(&size)) {
		return
	}

	alloc := p.resolveAllocation(lineNumber, origHandle, capture.FunctionInvalidateAllocation)
	if alloc == nil {
		return
	}
	if err := alloc.Invalidate(offset, size); err != nil {
		p.reporter.warn("failed to invalidate allocation",
			slog.Uint64("line", lineNumber),
			slog.String("allocation", origHandle.String()),
			slog.Any("error", err))
	}
}

func (p *Player) executeTouchAllocation(lineNumber uint64) {
	var origHandle capture.Handle

	if !p.validateParamCount(lineNumber, 1, false) {
		return
	}
	if !p.parseParams(lineNumber, fieldHandle(&origHandle)) {
		return
	}

	alloc := p.resolveAllocation(lineNumber, origHandle, capture.FunctionTouchAllocation)
	if alloc == nil {
		return
	}
	alloc.Touch()
}

func (p *Player) executeGetAllocationInfo(lineNumber uint64) {
	var origHandle capture.Handle

	if !p.validateParamCount(lineNumber, 1, false) {
		return
	}
	if !p.parseParams(lineNumber, fieldHandle(&origHandle)) {
		return
	}

	alloc := p.resolveAllocation(lineNumber, origHandle, capture.FunctionGetAllocationInfo)
	if alloc == nil {
		return
	}
	if _, err := alloc.Info(); err != nil {
		p.reporter.warn("failed to query allocation info",
			slog.Uint64("line", lineNumber),
			slog.String("allocation", origHandle.String()),
			slog.Any("error", err))
	}
}

func (p *Player) executeMakePoolAllocationsLost(lineNumber uint64) {
	var origHandle capture.Handle

	if !p.validateParamCount(lineNumber, 1, false) {
		return
	}
	if !p.parseParams(lineNumber, fieldHandle(&origHandle)) {
		return
	}
	if origHandle == 0 {
		return
	}

	assoc, ok := p.pools.Get(origHandle)
	if !ok {
		p.reporter.warn("pool not found",
			slog.Uint64("line", lineNumber),
			slog.String("function", capture.FunctionMakePoolAllocationsLost.String()),
			slog.String("pool", origHandle.String()))
		return
	}
	if assoc.pool == nil {
		p.reporter.warn("pool exists in recording but not in replay",
			slog.Uint64("line", lineNumber),
			slog.String("function", capture.FunctionMakePoolAllocationsLost.String()),
			slog.String("pool", origHandle.String()))
		return
	}

	if err := assoc.pool.MakeAllocationsLost(); err != nil {
		p.reporter.warn("failed to make pool allocations lost",
			slog.Uint64("line", lineNumber),
			slog.String("pool", origHandle.String()),
			slog.Any("error", err))
	}
}
