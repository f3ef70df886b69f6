package terminus

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/masar-transit/masar/pkg/database"
	"github.com/masar-transit/masar/pkg/naming"
	"github.com/masar-transit/masar/pkg/transit"
)

// DatabaseResolver resolves termini from the lines collection.
type DatabaseResolver struct {
}

func (r DatabaseResolver) ResolveTerminus(ctx context.Context, segment transit.Segment, lang string) (string, error) {
	canonicalKey, ok := naming.CanonicalLine(segment.LineIdentifier)
	if !ok {
		return "", ErrUnknownLine
	}

	linesCollection := database.GetCollection("lines")

	var line *transit.Line
	err := linesCollection.FindOne(ctx, bson.M{"canonicalkey": canonicalKey}).Decode(&line)
	if err != nil || line == nil {
		return "", ErrUnknownLine
	}

	return pickTerminal(line, segment, lang)
}

// pickTerminal chooses the terminal the segment is heading towards: the one
// whose name relates to the segment's final station, or the first terminal
// when nothing matches.
func pickTerminal(line *transit.Line, segment transit.Segment, lang string) (string, error) {
	terminals := line.Terminals[lang]
	if len(terminals) == 0 {
		terminals = line.Terminals["en"]
	}
	if len(terminals) == 0 {
		return "", ErrUnknownLine
	}

	finalStation := naming.NormalizeLabel(segment.FinalStation())
	for _, terminal := range terminals {
		normalizedTerminal := naming.NormalizeLabel(terminal)

		if strings.Contains(normalizedTerminal, finalStation) || strings.Contains(finalStation, normalizedTerminal) {
			return terminal, nil
		}
	}

	return terminals[0], nil
}
