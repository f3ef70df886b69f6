package arrivals

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/masar-transit/masar/pkg/config"
	"github.com/masar-transit/masar/pkg/naming"
	"github.com/masar-transit/masar/pkg/transit"
)

// Client fetches live arrivals for a station, falling back to the scrape
// provider when the primary feed errors or comes back empty.
type Client struct {
	Feeds config.FeedsConfig

	httpClient *http.Client
	now        func() time.Time
}

func NewClient(feeds config.FeedsConfig) *Client {
	timeout := time.Duration(feeds.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = config.DefaultTimeoutSeconds * time.Second
	}

	return &Client{
		Feeds: feeds,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		now: time.Now,
	}
}

// FetchArrivals returns the live arrivals for one station, destination
// refinement already applied. A successful primary response with zero
// arrivals triggers the fallback chain just like a failed one.
func (c *Client) FetchArrivals(ctx context.Context, station string, mode transit.SegmentKind, lang string) ([]transit.LiveArrival, error) {
	normalizedStation := naming.NormalizeLabel(station)

	arrivals, err := c.fetchPrimary(ctx, normalizedStation, mode, lang)
	if err != nil || len(arrivals) == 0 {
		if err != nil {
			log.Debug().
				Err(err).
				Str("station", station).
				Msg("Primary arrivals feed failed, trying fallback chain")
		}

		arrivals, err = c.fetchViaFallbackChain(ctx, normalizedStation)
		if err != nil {
			return nil, err
		}
	}

	return c.refineDestinations(ctx, arrivals, mode, lang), nil
}

func (c *Client) fetchPrimary(ctx context.Context, station string, mode transit.SegmentKind, lang string) ([]transit.LiveArrival, error) {
	requestURL := fmt.Sprintf(
		"%s/%s/%s/arrivals?station_name=%s",
		c.Feeds.PrimaryArrivalsURL,
		lang,
		strings.ToLower(string(mode)),
		url.QueryEscape(station),
	)

	var response primaryArrivalsResponse
	if err := c.getJSON(ctx, requestURL, &response); err != nil {
		return nil, err
	}

	var arrivals []transit.LiveArrival
	for _, arrival := range response.Arrivals {
		if arrival.MinutesUntil < 0 {
			continue
		}

		arrivals = append(arrivals, transit.LiveArrival{
			Line:         arrival.Line,
			Destination:  arrival.Destination,
			MinutesUntil: arrival.MinutesUntil,
		})
	}

	return arrivals, nil
}

// getJSON performs a GET and decodes the body, converting failures into the
// acquisition error taxonomy.
func (c *Client) getJSON(ctx context.Context, requestURL string, target any) error {
	if _, err := url.ParseRequestURI(requestURL); err != nil {
		return ErrInvalidURL
	}

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return ErrInvalidURL
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Inner: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &NetworkError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Inner: err}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return &DecodingError{Inner: err}
	}

	return nil
}
