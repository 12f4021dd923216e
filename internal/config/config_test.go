package config

import "testing"

func TestParseScoreScale(t *testing.T) {
	cases := []struct {
		raw     string
		want    ScoreScale
		wantErr bool
	}{
		{"tenPoint", ScaleTenPoint, false},
		{"hundredPoint", ScaleHundredPoint, false},
		{"", "", true},
		{"percent", "", true},
	}
	for _, tc := range cases {
		got, err := ParseScoreScale(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseScoreScale(%q) expected error", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseScoreScale(%q): %v", tc.raw, err)
		}
		if got != tc.want {
			t.Errorf("ParseScoreScale(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestHighStressThreshold(t *testing.T) {
	if got := ScaleTenPoint.HighStressThreshold(); got != 8 {
		t.Errorf("tenPoint threshold = %v, want 8", got)
	}
	if got := ScaleHundredPoint.HighStressThreshold(); got != 80 {
		t.Errorf("hundredPoint threshold = %v, want 80", got)
	}
}

func TestParseDedupMode(t *testing.T) {
	if _, err := ParseDedupMode("sometimes"); err == nil {
		t.Error("ParseDedupMode(sometimes) expected error")
	}
	mode, err := ParseDedupMode("transition")
	if err != nil {
		t.Fatalf("ParseDedupMode(transition): %v", err)
	}
	if mode != DedupTransition {
		t.Errorf("ParseDedupMode(transition) = %q", mode)
	}
}
