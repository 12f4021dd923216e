package scoring

import "github.com/spec-kit/wellness-service/internal/domain"

// minBurnoutSamples is the smallest trailing window the predictor will
// classify; below it the insufficient-data default applies.
const minBurnoutSamples = 3

// BurnoutWindow is how many recent mood-log stress scores feed a prediction.
const BurnoutWindow = 5

// PredictBurnout classifies burnout risk from recent stress scores
// (hundred-point scale). Fewer than three samples yields Low rather than an
// error. Band boundaries belong to the lower band.
func PredictBurnout(scores []int) domain.BurnoutLevel {
	if len(scores) < minBurnoutSamples {
		return domain.BurnoutLow
	}

	sum := 0
	for _, s := range scores {
		sum += s
	}
	mean := float64(sum) / float64(len(scores))

	switch {
	case mean > 70:
		return domain.BurnoutHigh
	case mean > 50:
		return domain.BurnoutModerate
	default:
		return domain.BurnoutLow
	}
}
