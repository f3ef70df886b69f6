package arrivals

// Wire formats for the upstream feeds. These stay inside this package -
// everything leaves as a transit.LiveArrival.

type primaryArrivalsResponse struct {
	StationName string           `json:"station_name"`
	Arrivals    []primaryArrival `json:"arrivals"`
}

type primaryArrival struct {
	Line         string `json:"line"`
	Destination  string `json:"destination"`
	MinutesUntil int    `json:"minutes_until"`
}

type stationLookupMatch struct {
	FullStationName string `json:"full_station_name"`
	StationID       string `json:"station_id"`
	Type            string `json:"type"`
}

// rawArrivalRecord is one departure row from the scrape provider. The
// provider reports a departure timestamp instead of a minutes-until value.
type rawArrivalRecord struct {
	Number        string `json:"number"`
	Name          string `json:"name"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
}

type refinementResponse struct {
	RefinedTerminus string `json:"refined_terminus"`
}
