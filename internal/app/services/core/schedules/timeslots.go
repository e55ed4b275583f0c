package schedules

import "strings"

type timeSlotRule struct {
	phrases []string
	times   []string
}

var singleDoseRules = []timeSlotRule{
	{phrases: []string{"morning"}, times: []string{"08:00"}},
	{phrases: []string{"evening", "night"}, times: []string{"20:00"}},
	{phrases: []string{"noon", "lunch"}, times: []string{"12:00"}},
	{phrases: []string{"before meals"}, times: []string{"07:30"}},
	{phrases: []string{"after meals"}, times: []string{"08:30"}},
}

var doubleDoseRules = []timeSlotRule{
	{phrases: []string{"morning and evening"}, times: []string{"08:00", "20:00"}},
	{phrases: []string{"before meals"}, times: []string{"07:30", "19:30"}},
	{phrases: []string{"after meals"}, times: []string{"08:30", "20:30"}},
}

var tripleDoseRules = []timeSlotRule{
	{phrases: []string{"before meals"}, times: []string{"07:30", "12:30", "19:30"}},
	{phrases: []string{"after meals"}, times: []string{"08:30", "13:30", "20:30"}},
}

// AssignTimes maps a free-text timing hint and an occurrence count to the
// clock times a dose fires at. PRN frequencies get no times at all; the
// caller handles that path separately.
func AssignTimes(timing string, freq FrequencySpec) []string {
	if freq.OccurrencesPerPeriod == 0 {
		return nil
	}

	lowered := strings.ToLower(timing)

	switch freq.OccurrencesPerPeriod {
	case 1:
		return matchTimeSlots(lowered, singleDoseRules, []string{"08:00"})
	case 2:
		return matchTimeSlots(lowered, doubleDoseRules, []string{"08:00", "20:00"})
	case 3:
		return matchTimeSlots(lowered, tripleDoseRules, []string{"08:00", "14:00", "20:00"})
	case 4:
		// The 02:00 slot wraps past midnight, approximating every-6-hours dosing.
		return []string{"08:00", "14:00", "20:00", "02:00"}
	default:
		return []string{"08:00"}
	}
}

func matchTimeSlots(timing string, rules []timeSlotRule, fallback []string) []string {
	for _, rule := range rules {
		for _, phrase := range rule.phrases {
			if strings.Contains(timing, phrase) {
				return rule.times
			}
		}
	}
	return fallback
}
