package scoring

import "strings"

// defaultStress is returned for emotion labels outside the known
// vocabulary; classification noise degrades to neutral rather than erroring.
const defaultStress = 50

var stressByEmotion = map[string]int{
	"sadness":  75,
	"anger":    85,
	"fear":     80,
	"joy":      20,
	"love":     25,
	"surprise": 40,
}

// StressForEmotion maps an emotion label to a stress score on the 0-100
// scale. Matching is case-insensitive and total.
func StressForEmotion(label string) int {
	if score, ok := stressByEmotion[strings.ToLower(strings.TrimSpace(label))]; ok {
		return score
	}
	return defaultStress
}
