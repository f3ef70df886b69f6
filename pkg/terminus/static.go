package terminus

import (
	"context"

	"github.com/masar-transit/masar/pkg/naming"
	"github.com/masar-transit/masar/pkg/transit"
)

// StaticResolver serves termini from an in-memory line set. Used when
// running without a database and by tests.
type StaticResolver struct {
	Lines []transit.Line
}

func (r StaticResolver) ResolveTerminus(ctx context.Context, segment transit.Segment, lang string) (string, error) {
	canonicalKey, ok := naming.CanonicalLine(segment.LineIdentifier)
	if !ok {
		return "", ErrUnknownLine
	}

	for _, line := range r.Lines {
		if line.CanonicalKey == canonicalKey {
			line := line
			return pickTerminal(&line, segment, lang)
		}
	}

	return "", ErrUnknownLine
}
