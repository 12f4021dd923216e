package scoring

import "strings"

// PressureNone is the fallback tag when no keyword group matches.
const PressureNone = "No Major Work Pressure"

// pressureRules is a priority chain: the first group with a keyword hit
// wins, regardless of later matches.
var pressureRules = []struct {
	tag      string
	keywords []string
}{
	{"Deadline Pressure", []string{"deadline", "target", "urgent"}},
	{"Meeting Fatigue", []string{"meeting", "call", "discussion"}},
	{"Workload Overload", []string{"busy", "workload", "tasks"}},
}

// PressureForText tags a mood statement with a work-pressure category via
// case-insensitive substring matching.
func PressureForText(text string) string {
	lowered := strings.ToLower(text)
	for _, rule := range pressureRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.tag
			}
		}
	}
	return PressureNone
}
