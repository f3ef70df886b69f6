package naming

import (
	"regexp"
	"strings"
)

// Planner station names carry mode decorations that the live feeds never
// report, eg "King Fahd (Metro)" vs "King Fahd".
var modeSuffixRegex = regexp.MustCompile(`(?i)\s*\((?:bus|metro|مترو|حافلة)\)\s*$`)

// NormalizeLabel produces the comparison form of a station or destination
// name: mode suffix stripped, whitespace trimmed, lowercased. Display
// strings are never run through this - it is for matching only.
// NormalizeLabel(NormalizeLabel(x)) == NormalizeLabel(x).
func NormalizeLabel(raw string) string {
	stripped := modeSuffixRegex.ReplaceAllString(raw, "")

	return strings.ToLower(strings.TrimSpace(stripped))
}
