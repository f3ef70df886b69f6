package naming

import "testing"

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"King Fahd (Metro)", "king fahd"},
		{"King Fahd (Bus)", "king fahd"},
		{"King Fahd (metro)", "king fahd"},
		{"Olaya (مترو)", "olaya"},
		{"  An Naseem  ", "an naseem"},
		{"Qasr Al Hokm", "qasr al hokm"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := NormalizeLabel(tc.raw); got != tc.expected {
			t.Errorf("NormalizeLabel(%q) = %q, expected %q", tc.raw, got, tc.expected)
		}
	}
}

func TestNormalizeLabelIdempotent(t *testing.T) {
	inputs := []string{"King Fahd (Metro)", "OLAYA (Bus)", "  stc  ", "Western Station"}

	for _, raw := range inputs {
		once := NormalizeLabel(raw)
		twice := NormalizeLabel(once)
		if once != twice {
			t.Errorf("NormalizeLabel not idempotent for %q: %q != %q", raw, once, twice)
		}
	}
}
