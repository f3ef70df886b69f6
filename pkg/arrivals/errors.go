package arrivals

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidURL        = errors.New("arrivals: invalid request url")
	ErrNoStationIDFound  = errors.New("arrivals: no station id found for station")
	ErrInvalidDateFormat = errors.New("arrivals: departure timestamp matched no known format")
)

// DecodingError wraps a response body that could not be unmarshalled.
type DecodingError struct {
	Inner error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("arrivals: decoding response: %s", e.Inner)
}

func (e *DecodingError) Unwrap() error {
	return e.Inner
}

// NetworkError wraps a transport failure or a non-2xx upstream response.
// StatusCode is 0 when the request never completed.
type NetworkError struct {
	Inner      error
	StatusCode int
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("arrivals: upstream returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("arrivals: network error: %s", e.Inner)
}

func (e *NetworkError) Unwrap() error {
	return e.Inner
}
