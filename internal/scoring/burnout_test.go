package scoring

import (
	"testing"

	"github.com/spec-kit/wellness-service/internal/domain"
)

func TestPredictBurnout(t *testing.T) {
	cases := []struct {
		name   string
		scores []int
		want   domain.BurnoutLevel
	}{
		{"no samples", nil, domain.BurnoutLow},
		{"one sample", []int{95}, domain.BurnoutLow},
		{"two samples ignored even when high", []int{95, 90}, domain.BurnoutLow},
		{"moderate band", []int{90, 85, 80, 10, 10}, domain.BurnoutModerate}, // mean 55
		{"high band", []int{90, 90, 90}, domain.BurnoutHigh},
		{"boundary 50 stays low", []int{50, 50, 50}, domain.BurnoutLow},
		{"boundary 70 stays moderate", []int{70, 70, 70}, domain.BurnoutModerate},
		{"low band", []int{20, 25, 40}, domain.BurnoutLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PredictBurnout(tc.scores); got != tc.want {
				t.Errorf("PredictBurnout(%v) = %q, want %q", tc.scores, got, tc.want)
			}
		})
	}
}
