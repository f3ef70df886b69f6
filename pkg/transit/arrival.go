package transit

// LiveArrival is one vehicle arrival as reported by an upstream feed.
// Values live only for the duration of a single acquisition call.
type LiveArrival struct {
	Line         string `json:"line"`
	Destination  string `json:"destination"`
	MinutesUntil int    `json:"minutes_until"`
}
