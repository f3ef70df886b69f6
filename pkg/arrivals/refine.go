package arrivals

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/masar-transit/masar/pkg/transit"
)

// refineDestinations replaces each bus arrival's provider destination with
// the long-form terminus where the refinement endpoint knows one. All
// refinement calls for a response run concurrently and the raw destination
// is kept whenever a call fails. Metro destinations are already canonical
// terminals and skip refinement entirely.
func (c *Client) refineDestinations(ctx context.Context, arrivals []transit.LiveArrival, mode transit.SegmentKind, lang string) []transit.LiveArrival {
	if mode != transit.SegmentKindBus || len(arrivals) == 0 {
		return arrivals
	}

	refined := make([]transit.LiveArrival, len(arrivals))

	p := pool.New()
	for index, arrival := range arrivals {
		index := index
		arrival := arrival

		p.Go(func() {
			refined[index] = arrival

			terminus, err := c.refineTerminus(ctx, arrival.Line, arrival.Destination, lang)
			if err != nil {
				log.Debug().
					Err(err).
					Str("line", arrival.Line).
					Str("destination", arrival.Destination).
					Msg("Terminus refinement failed, keeping raw destination")
				return
			}

			if terminus != "" {
				refined[index].Destination = terminus
			}
		})
	}
	p.Wait()

	return refined
}

func (c *Client) refineTerminus(ctx context.Context, lineNumber string, apiDestination string, lang string) (string, error) {
	requestURL := fmt.Sprintf(
		"%s?lang=%s&line_number=%s&api_destination=%s",
		c.Feeds.TerminusRefinementURL,
		url.QueryEscape(lang),
		url.QueryEscape(lineNumber),
		url.QueryEscape(apiDestination),
	)

	var response refinementResponse
	if err := c.getJSON(ctx, requestURL, &response); err != nil {
		return "", err
	}

	return response.RefinedTerminus, nil
}
