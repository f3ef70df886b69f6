package transit

// Plan is the ordered journey produced by the route planner. The engine
// consumes a Plan and produces a freshly annotated copy - the original is
// never mutated, so a reconciliation pass can be retried or discarded.
type Plan struct {
	Segments []Segment `json:"segments" bson:"segments"`

	TotalMinutes int `json:"total_minutes" bson:"totalminutes"`
}
