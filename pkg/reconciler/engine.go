package reconciler

import (
	"context"
	"math"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/masar-transit/masar/pkg/config"
	"github.com/masar-transit/masar/pkg/terminus"
	"github.com/masar-transit/masar/pkg/transit"
)

// ArrivalSource is the acquisition layer as the engine sees it.
// arrivals.Client is the production implementation.
type ArrivalSource interface {
	FetchArrivals(ctx context.Context, station string, mode transit.SegmentKind, lang string) ([]transit.LiveArrival, error)
}

// LiveStatusThresholdMinutes is the next-arrival horizon below which a
// segment is reported as Live rather than Normal.
const LiveStatusThresholdMinutes = 59

// Engine walks a planned journey segment by segment and annotates each
// transit leg with live wait times. Each Reconcile call is independent -
// the engine carries no state between passes.
type Engine struct {
	Arrivals ArrivalSource
	Terminus terminus.Resolver

	// MaxWaitMinutes is the wait budget. Zero means the configured default.
	MaxWaitMinutes int
}

// journeyAccumulator is the state threaded through the left-to-right pass
// over the segments.
type journeyAccumulator struct {
	// cumulativeTravelMinutes is the travel time (walking + riding) elapsed
	// by the time the rider stands at the start of the current segment.
	// Wait time is excluded.
	cumulativeTravelMinutes float64

	// totalMinutes is travel time plus every wait, the figure reported back
	// to the caller.
	totalMinutes float64

	// connectionMissed latches once a matched arrival is out of wait
	// budget. It is never reset - everything downstream of a missed
	// connection is invalid.
	connectionMissed bool
}

// Reconcile produces a freshly annotated copy of the plan plus the new
// total journey duration in minutes. The input plan is never mutated. A
// cancelled context aborts the pass with the context error - a partial plan
// is never returned.
func (e *Engine) Reconcile(ctx context.Context, plan transit.Plan, lang string) (transit.Plan, int, error) {
	var updated transit.Plan
	if err := copier.CopyWithOption(&updated, &plan, copier.Option{DeepCopy: true}); err != nil {
		return transit.Plan{}, 0, err
	}

	accumulator := journeyAccumulator{}

	for i := range updated.Segments {
		if err := ctx.Err(); err != nil {
			return transit.Plan{}, 0, err
		}

		segment := &updated.Segments[i]
		segment.ClearAnnotations()

		switch {
		case !segment.Kind.Transit():
			accumulator.addTravel(segment.PlannedMinutes())

		case accumulator.connectionMissed:
			// Cascade suppression: the rider can no longer make this leg,
			// so its own live data is irrelevant.
			accumulator.addTravel(segment.PlannedMinutes())
			segment.Status = transit.SegmentStatusHidden

		case segment.BoardingStation() == "":
			accumulator.addTravel(segment.PlannedMinutes())
			segment.Status = transit.SegmentStatusHidden

		default:
			e.reconcileTransitSegment(ctx, segment, &accumulator, lang)
		}
	}

	if err := ctx.Err(); err != nil {
		return transit.Plan{}, 0, err
	}

	updated.TotalMinutes = int(math.Round(accumulator.totalMinutes))

	return updated, updated.TotalMinutes, nil
}

func (e *Engine) reconcileTransitSegment(ctx context.Context, segment *transit.Segment, accumulator *journeyAccumulator, lang string) {
	segment.Status = transit.SegmentStatusChecking

	matchTarget := segment.FinalStation()
	if e.Terminus != nil {
		resolved, err := e.Terminus.ResolveTerminus(ctx, *segment, lang)
		if err != nil {
			log.Debug().
				Err(err).
				Str("line", segment.LineIdentifier).
				Msg("Failed to resolve terminus, matching against final station")
		} else if resolved != "" {
			matchTarget = resolved
		}
	}

	liveArrivals, err := e.Arrivals.FetchArrivals(ctx, segment.BoardingStation(), segment.Kind, lang)
	if err != nil {
		// Unknowable, not missed: the failure may be transient for this
		// leg alone, so the latch stays untouched.
		log.Warn().
			Err(err).
			Str("station", segment.BoardingStation()).
			Msg("Live arrival acquisition failed for segment")

		accumulator.addTravel(segment.PlannedMinutes())
		segment.Status = transit.SegmentStatusHidden
		return
	}

	candidate, found := findCandidate(liveArrivals, segment, matchTarget, accumulator.cumulativeTravelMinutes)
	if !found {
		accumulator.connectionMissed = true
		accumulator.addTravel(segment.PlannedMinutes())
		segment.Status = transit.SegmentStatusHidden
		return
	}

	wait := float64(candidate.MinutesUntil) - accumulator.cumulativeTravelMinutes
	if wait > float64(e.maxWaitMinutes()) {
		// The rider will never catch this departure, so no wait time is
		// counted against the journey.
		accumulator.connectionMissed = true
		accumulator.addTravel(segment.PlannedMinutes())
		segment.Status = transit.SegmentStatusHidden
		return
	}

	ride := segment.PlannedMinutes()
	accumulator.totalMinutes += wait + ride
	accumulator.cumulativeTravelMinutes += ride

	waitMinutes := int(math.Ceil(wait))
	segment.WaitMinutes = &waitMinutes

	nextArrival := candidate.MinutesUntil
	segment.NextArrivalMinutes = &nextArrival
	segment.RefinedTerminus = candidate.Destination
	segment.UpcomingArrivalMinutes = upcomingArrivals(liveArrivals, candidate, 3)

	if candidate.MinutesUntil < LiveStatusThresholdMinutes {
		segment.Status = transit.SegmentStatusLive
	} else {
		segment.Status = transit.SegmentStatusNormal
	}
}

// addTravel counts planned travel time against both running sums.
func (a *journeyAccumulator) addTravel(minutes float64) {
	a.cumulativeTravelMinutes += minutes
	a.totalMinutes += minutes
}

func (e *Engine) maxWaitMinutes() int {
	if e.MaxWaitMinutes > 0 {
		return e.MaxWaitMinutes
	}
	return config.DefaultMaxWaitMinutes
}
