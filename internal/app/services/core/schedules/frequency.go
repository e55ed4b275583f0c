package schedules

import "strings"

type frequencyRule struct {
	phrases []string
	spec    FrequencySpec
}

// Ordered decision table, first match wins. Multi-occurrence phrases are
// tested before the bare "daily" substring so that e.g. "twice daily" never
// falls through to the once-daily rule it also contains.
var frequencyRules = []frequencyRule{
	{phrases: []string{"twice daily", "two times daily", "2 times daily"}, spec: FrequencySpec{2, PeriodDay}},
	{phrases: []string{"three times daily", "thrice daily", "3 times daily"}, spec: FrequencySpec{3, PeriodDay}},
	{phrases: []string{"four times daily", "4 times daily"}, spec: FrequencySpec{4, PeriodDay}},
	{phrases: []string{"every 6 hours"}, spec: FrequencySpec{4, PeriodDay}},
	{phrases: []string{"every 8 hours"}, spec: FrequencySpec{3, PeriodDay}},
	{phrases: []string{"every 12 hours"}, spec: FrequencySpec{2, PeriodDay}},
	{phrases: []string{"once daily", "daily", "once a day"}, spec: FrequencySpec{1, PeriodDay}},
	{phrases: []string{"weekly", "once a week"}, spec: FrequencySpec{1, PeriodWeek}},
	{phrases: []string{"monthly", "once a month"}, spec: FrequencySpec{1, PeriodMonth}},
	{phrases: []string{"as needed", "when required"}, spec: FrequencySpec{0, PeriodDay}},
}

// ParseFrequency classifies a free-text frequency string. Unrecognized text
// falls back to once daily; the function never fails.
func ParseFrequency(text string) FrequencySpec {
	freq := strings.ToLower(text)
	for _, rule := range frequencyRules {
		for _, phrase := range rule.phrases {
			if strings.Contains(freq, phrase) {
				return rule.spec
			}
		}
	}
	return FrequencySpec{1, PeriodDay}
}
