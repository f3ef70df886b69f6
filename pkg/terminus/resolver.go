package terminus

import (
	"context"
	"errors"

	"github.com/masar-transit/masar/pkg/transit"
)

var ErrUnknownLine = errors.New("terminus: no line found for segment")

// Resolver returns the authoritative long-form terminus name for a
// segment's line and direction. The reconciliation engine treats resolution
// as best-effort - on failure it matches against the segment's own final
// station name instead.
type Resolver interface {
	ResolveTerminus(ctx context.Context, segment transit.Segment, lang string) (string, error)
}
