package arrivals

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/masar-transit/masar/pkg/transit"
)

// Departure timestamp layouts seen from the scrape provider. Most rows use
// fractional seconds, older ones do not.
const (
	departureTimeLayout         = "2006-01-02T15:04:05.000Z07:00"
	departureTimeFallbackLayout = "2006-01-02T15:04:05Z07:00"
)

// fetchViaFallbackChain is used when the primary feed errors or reports no
// arrivals: resolve the provider station id by name, pull the raw departure
// rows, and turn each departure timestamp into a minutes-until value.
func (c *Client) fetchViaFallbackChain(ctx context.Context, station string) ([]transit.LiveArrival, error) {
	stationID, err := c.lookupStationID(ctx, station)
	if err != nil {
		return nil, err
	}

	records, err := c.fetchRawArrivals(ctx, stationID)
	if err != nil {
		return nil, err
	}

	now := c.now()

	var arrivals []transit.LiveArrival
	for _, record := range records {
		minutesUntil, err := minutesUntilDeparture(record.DepartureTime, now)
		if err != nil {
			return nil, err
		}

		arrivals = append(arrivals, transit.LiveArrival{
			Line:         record.Number,
			Destination:  record.Destination,
			MinutesUntil: minutesUntil,
		})
	}

	return arrivals, nil
}

func (c *Client) lookupStationID(ctx context.Context, station string) (string, error) {
	requestURL := fmt.Sprintf(
		"%s?station_name=%s",
		c.Feeds.StationLookupURL,
		url.QueryEscape(station),
	)

	var matches []stationLookupMatch
	if err := c.getJSON(ctx, requestURL, &matches); err != nil {
		return "", err
	}

	if len(matches) == 0 || matches[0].StationID == "" {
		return "", ErrNoStationIDFound
	}

	return matches[0].StationID, nil
}

// fetchRawArrivals posts the provider's form-encoded departures query. The
// scrape endpoint drops requests under load, so transient failures are
// retried with exponential backoff inside the overall call timeout.
func (c *Client) fetchRawArrivals(ctx context.Context, stationID string) ([]rawArrivalRecord, error) {
	form := url.Values{}
	form.Set("station_id", stationID)

	operation := func() ([]rawArrivalRecord, error) {
		req, err := http.NewRequestWithContext(ctx, "POST", c.Feeds.RawArrivalsURL, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, backoff.Permanent(ErrInvalidURL)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, &NetworkError{Inner: err}
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &NetworkError{StatusCode: resp.StatusCode}
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &NetworkError{Inner: err}
		}

		var records []rawArrivalRecord
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, backoff.Permanent(&DecodingError{Inner: err})
		}

		return records, nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)

	return backoff.RetryWithData(operation, policy)
}

// minutesUntilDeparture converts a provider departure timestamp into whole
// minutes from now, clamped at zero for vehicles already due.
func minutesUntilDeparture(departureTime string, now time.Time) (int, error) {
	parsed, err := time.Parse(departureTimeLayout, departureTime)
	if err != nil {
		parsed, err = time.Parse(departureTimeFallbackLayout, departureTime)
	}
	if err != nil {
		return 0, ErrInvalidDateFormat
	}

	minutes := math.Floor(parsed.Sub(now).Minutes())

	return int(math.Max(0, minutes)), nil
}
