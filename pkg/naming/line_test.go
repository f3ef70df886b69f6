package naming

import "testing"

func TestCanonicalLineMetro(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"1", "metro:1"},
		{"Blue Line", "metro:1"},
		{"blue line", "metro:1"},
		{"المسار الأزرق", "metro:1"},
		{"2", "metro:2"},
		{"Red Line", "metro:2"},
		{"المسار الأحمر", "metro:2"},
		{"3", "metro:3"},
		{"Orange Line", "metro:3"},
		{"4", "metro:4"},
		{"Yellow Line", "metro:4"},
		{"5", "metro:5"},
		{"Green Line", "metro:5"},
		{"6", "metro:6"},
		{"Purple Line", "metro:6"},
		{"المسار البنفسجي", "metro:6"},
		{" 1 ", "metro:1"},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			key, ok := CanonicalLine(tc.raw)
			if !ok {
				t.Fatalf("CanonicalLine(%q) not classified", tc.raw)
			}
			if key != tc.expected {
				t.Errorf("CanonicalLine(%q) = %q, expected %q", tc.raw, key, tc.expected)
			}
		})
	}
}

func TestCanonicalLineDistinct(t *testing.T) {
	seen := map[string]string{}
	for _, raw := range []string{"1", "2", "3", "4", "5", "6"} {
		key, ok := CanonicalLine(raw)
		if !ok {
			t.Fatalf("CanonicalLine(%q) not classified", raw)
		}
		if previous, exists := seen[key]; exists {
			t.Errorf("lines %q and %q share canonical key %q", previous, raw, key)
		}
		seen[key] = raw
	}
}

func TestCanonicalLineBusCodes(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"150", "150"},
		{"brt1", "BRT1"},
		{" 7 ", "7"},
		{"920A", "920A"},
	}

	for _, tc := range tests {
		key, ok := CanonicalLine(tc.raw)
		if !ok {
			t.Fatalf("CanonicalLine(%q) not classified", tc.raw)
		}
		if key != tc.expected {
			t.Errorf("CanonicalLine(%q) = %q, expected %q", tc.raw, key, tc.expected)
		}
	}
}

func TestCanonicalLineUnclassifiable(t *testing.T) {
	for _, raw := range []string{"", "   ", "---", "()"} {
		if key, ok := CanonicalLine(raw); ok {
			t.Errorf("CanonicalLine(%q) = %q, expected not classified", raw, key)
		}
	}
}
