package transit

type Segment struct {
	Kind SegmentKind `json:"kind" bson:"kind"`

	// LineIdentifier is whatever the route planner emitted for this leg -
	// a bare line number, a localised name, or a bus route code. Empty for
	// walk segments.
	LineIdentifier string `json:"line_identifier,omitempty" bson:"lineidentifier,omitempty"`

	// StationSequence lists the display names of every station this leg
	// passes through. The first entry is the boarding station, the last is
	// the alighting station.
	StationSequence []string `json:"station_sequence,omitempty" bson:"stationsequence,omitempty"`

	PlannedDurationSeconds int `json:"planned_duration_seconds" bson:"planneddurationseconds"`
	PlannedDistanceMeters  int `json:"planned_distance_meters" bson:"planneddistancemeters"`

	// Runtime annotations. Only the reconciliation engine writes these and
	// a fresh pass always overwrites them wholesale.
	Status                 SegmentStatus `json:"status,omitempty" bson:"status,omitempty"`
	WaitMinutes            *int          `json:"wait_minutes,omitempty" bson:"waitminutes,omitempty"`
	NextArrivalMinutes     *int          `json:"next_arrival_minutes,omitempty" bson:"nextarrivalminutes,omitempty"`
	RefinedTerminus        string        `json:"refined_terminus,omitempty" bson:"refinedterminus,omitempty"`
	UpcomingArrivalMinutes []int         `json:"upcoming_arrival_minutes,omitempty" bson:"upcomingarrivalminutes,omitempty"`
}

// BoardingStation returns the first station of the leg, or "" when the
// planner gave us no station sequence.
func (s *Segment) BoardingStation() string {
	if len(s.StationSequence) == 0 {
		return ""
	}
	return s.StationSequence[0]
}

// FinalStation returns the last station of the leg, or "".
func (s *Segment) FinalStation() string {
	if len(s.StationSequence) == 0 {
		return ""
	}
	return s.StationSequence[len(s.StationSequence)-1]
}

// PlannedMinutes returns the planned duration of the leg in minutes.
func (s *Segment) PlannedMinutes() float64 {
	return float64(s.PlannedDurationSeconds) / 60
}

// ClearAnnotations resets every runtime annotation back to the unannotated
// plan state.
func (s *Segment) ClearAnnotations() {
	s.Status = ""
	s.WaitMinutes = nil
	s.NextArrivalMinutes = nil
	s.RefinedTerminus = ""
	s.UpcomingArrivalMinutes = nil
}
