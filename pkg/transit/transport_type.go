package transit

type SegmentKind string

const (
	SegmentKindWalk  SegmentKind = "Walk"
	SegmentKindBus   SegmentKind = "Bus"
	SegmentKindMetro SegmentKind = "Metro"
)

// Transit reports whether the segment kind involves boarding a vehicle.
func (k SegmentKind) Transit() bool {
	return k == SegmentKindBus || k == SegmentKindMetro
}
