package replay

// allocationKind records what backs a live allocation, for leak reports and
// warnings.
type allocationKind int

const (
	allocationKindRaw allocationKind = iota
	allocationKindBuffer
	allocationKindImage
	allocationKindLost
)

var allocationKindNames = map[allocationKind]string{
	allocationKindRaw:    "memory",
	allocationKindBuffer: "buffer",
	allocationKindImage:  "image",
	allocationKindLost:   "lost allocation",
}

func (k allocationKind) String() string {
	name, ok := allocationKindNames[k]
	if !ok {
		return "unknown"
	}
	return name
}

// poolAssociation ties a recorded pool handle to its live pool. A nil pool
// means the recorded creation succeeded but the live one failed; the handle
// still resolves so later lines can be reconciled instead of reported as
// unknown handles.
type poolAssociation struct {
	pool TargetPool
}

// allocationAssociation ties a recorded allocation handle to its live
// allocation, along with the recorded create flags, which control how later
// vmaSetAllocationUserData lines are interpreted.
type allocationAssociation struct {
	createFlags uint32
	kind        allocationKind
	allocation  TargetAllocation
}
