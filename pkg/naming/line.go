package naming

import (
	"fmt"
	"strings"
)

// The six metro lines are referred to by index, English colour name or
// Arabic colour name depending on which feed or planner produced the
// string. All of them collapse onto one canonical key per line.
var metroLineColours = map[int][]string{
	1: {"blue", "الأزرق"},
	2: {"red", "الأحمر"},
	3: {"orange", "البرتقالي"},
	4: {"yellow", "الأصفر"},
	5: {"green", "الأخضر"},
	6: {"purple", "البنفسجي"},
}

// CanonicalLine maps any representation of a line onto the canonical key
// used for equality checks. Metro lines 1-6 become "metro:1".."metro:6"
// whether the input was the bare index, the English name or the Arabic
// name. Anything else that still looks like a route code is treated as a
// bus route and normalised to its trimmed uppercase code. ok is false only
// when the input cannot be classified at all.
func CanonicalLine(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}

	if len(trimmed) == 1 && trimmed[0] >= '1' && trimmed[0] <= '6' {
		return fmt.Sprintf("metro:%c", trimmed[0]), true
	}

	lowered := strings.ToLower(trimmed)
	for index, colours := range metroLineColours {
		for _, colour := range colours {
			if strings.Contains(lowered, colour) {
				return fmt.Sprintf("metro:%d", index), true
			}
		}
	}

	if !containsAlphanumeric(trimmed) {
		return "", false
	}

	return strings.ToUpper(trimmed), true
}

func containsAlphanumeric(s string) bool {
	for _, r := range s {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
