package transit

// SegmentStatus tracks a transit segment through one reconciliation pass.
// Checking is the transient starting state; every segment ends the pass as
// Live, Normal or Hidden.
type SegmentStatus string

const (
	SegmentStatusChecking SegmentStatus = "Checking"
	SegmentStatusLive     SegmentStatus = "Live"
	SegmentStatusNormal   SegmentStatus = "Normal"
	SegmentStatusHidden   SegmentStatus = "Hidden"
)
