package reconciler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masar-transit/masar/pkg/transit"
)

func TestFindCandidateBidirectionalSubstring(t *testing.T) {
	segment := metroSegment("1", 12, "King Fahd", "An Naseem (Metro)")

	tests := []struct {
		name        string
		destination string
		target      string
		matches     bool
	}{
		{"exact", "An Naseem", "An Naseem", true},
		{"feed truncates", "Naseem", "An Naseem", true},
		{"feed expands", "An Naseem Terminal", "An Naseem", true},
		{"case and suffix noise", "AN NASEEM (Bus)", "An Naseem", true},
		{"unrelated", "Al Batha", "An Naseem", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			arrivals := []transit.LiveArrival{
				{Line: "1", Destination: tc.destination, MinutesUntil: 10},
			}

			_, found := findCandidate(arrivals, &segment, tc.target, 0)
			assert.Equal(t, tc.matches, found)
		})
	}
}

func TestFindCandidateLineFilterRunsFirst(t *testing.T) {
	segment := metroSegment("1", 12, "King Fahd", "An Naseem")

	// same destination but another line: the loose substring rule must not
	// see it at all
	arrivals := []transit.LiveArrival{
		{Line: "2", Destination: "An Naseem", MinutesUntil: 2},
		{Line: "Blue Line", Destination: "An Naseem", MinutesUntil: 9},
	}

	candidate, found := findCandidate(arrivals, &segment, "An Naseem", 0)
	require.True(t, found)
	assert.Equal(t, 9, candidate.MinutesUntil)
}

func TestFindCandidateSkipsUnreachableArrivals(t *testing.T) {
	segment := metroSegment("1", 12, "King Fahd", "An Naseem")

	arrivals := []transit.LiveArrival{
		{Line: "1", Destination: "An Naseem", MinutesUntil: 3},
		{Line: "1", Destination: "An Naseem", MinutesUntil: 14},
	}

	// 8 minutes of travel already: the 3 minute arrival is gone
	candidate, found := findCandidate(arrivals, &segment, "An Naseem", 8)
	require.True(t, found)
	assert.Equal(t, 14, candidate.MinutesUntil)
}

func TestFindCandidateEarliestWins(t *testing.T) {
	segment := metroSegment("1", 12, "King Fahd", "An Naseem")

	arrivals := []transit.LiveArrival{
		{Line: "1", Destination: "An Naseem", MinutesUntil: 25},
		{Line: "المسار الأزرق", Destination: "An Naseem", MinutesUntil: 6},
		{Line: "1", Destination: "An Naseem", MinutesUntil: 12},
	}

	candidate, found := findCandidate(arrivals, &segment, "An Naseem", 0)
	require.True(t, found)
	assert.Equal(t, 6, candidate.MinutesUntil)
}

func TestFindCandidateNoArrivals(t *testing.T) {
	segment := metroSegment("1", 12, "King Fahd", "An Naseem")

	_, found := findCandidate(nil, &segment, "An Naseem", 0)
	assert.False(t, found)
}

func TestUpcomingArrivalsCapAndOrder(t *testing.T) {
	candidate := transit.LiveArrival{Line: "1", Destination: "An Naseem", MinutesUntil: 4}

	arrivals := []transit.LiveArrival{
		candidate,
		{Line: "1", Destination: "An Naseem", MinutesUntil: 40},
		{Line: "1", Destination: "An Naseem", MinutesUntil: 16},
		{Line: "1", Destination: "An Naseem", MinutesUntil: 28},
		{Line: "1", Destination: "An Naseem", MinutesUntil: 9},
		{Line: "2", Destination: "An Naseem", MinutesUntil: 12},
	}

	upcoming := upcomingArrivals(arrivals, candidate, 3)

	assert.Equal(t, []int{9, 16, 28}, upcoming)
}
