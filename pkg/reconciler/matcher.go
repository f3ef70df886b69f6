package reconciler

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/masar-transit/masar/pkg/naming"
	"github.com/masar-transit/masar/pkg/transit"
	"github.com/masar-transit/masar/pkg/util"
)

// findCandidate picks the single arrival the rider should board for this
// segment: same canonical line, physically reachable given travel so far,
// destination related to the match target, earliest departure wins.
//
// Destination comparison is a substring match in either direction because
// providers truncate or expand names relative to the planner - a feed may
// report a terminal district where the plan names a specific depot station.
// The canonical line filter runs first to keep that looseness from matching
// across lines.
func findCandidate(arrivals []transit.LiveArrival, segment *transit.Segment, matchTarget string, cumulativeTravelMinutes float64) (transit.LiveArrival, bool) {
	lineKey, ok := naming.CanonicalLine(segment.LineIdentifier)
	if !ok {
		return transit.LiveArrival{}, false
	}

	normalizedTarget := naming.NormalizeLabel(matchTarget)

	candidates := util.Filter(arrivals, func(arrival transit.LiveArrival) bool {
		arrivalKey, ok := naming.CanonicalLine(arrival.Line)
		if !ok || arrivalKey != lineKey {
			return false
		}

		// A vehicle the rider cannot reach the platform for in time is not
		// a candidate, even on the right line.
		if float64(arrival.MinutesUntil) < cumulativeTravelMinutes {
			return false
		}

		return destinationsRelate(naming.NormalizeLabel(arrival.Destination), normalizedTarget)
	})

	if len(candidates) == 0 {
		return transit.LiveArrival{}, false
	}

	earliest := slices.MinFunc(candidates, func(a, b transit.LiveArrival) int {
		return a.MinutesUntil - b.MinutesUntil
	})

	return earliest, true
}

func destinationsRelate(destination string, target string) bool {
	return strings.Contains(destination, target) || strings.Contains(target, destination)
}

// upcomingArrivals lists the departures after the chosen candidate on the
// same line and destination, ascending, capped at limit.
func upcomingArrivals(arrivals []transit.LiveArrival, candidate transit.LiveArrival, limit int) []int {
	candidateKey, ok := naming.CanonicalLine(candidate.Line)
	if !ok {
		return nil
	}
	candidateDestination := naming.NormalizeLabel(candidate.Destination)

	var upcoming []int
	for _, arrival := range arrivals {
		if arrival.MinutesUntil <= candidate.MinutesUntil {
			continue
		}

		arrivalKey, ok := naming.CanonicalLine(arrival.Line)
		if !ok || arrivalKey != candidateKey {
			continue
		}

		if naming.NormalizeLabel(arrival.Destination) != candidateDestination {
			continue
		}

		upcoming = append(upcoming, arrival.MinutesUntil)
	}

	slices.Sort(upcoming)

	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}

	return upcoming
}
