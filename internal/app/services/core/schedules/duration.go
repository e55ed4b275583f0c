package schedules

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	daysPattern   = regexp.MustCompile(`(\d+)\s*days?`)
	weeksPattern  = regexp.MustCompile(`(\d+)\s*weeks?`)
	monthsPattern = regexp.MustCompile(`(\d+)\s*months?`)
)

// ResolveEndDate computes the last calendar day covered by a free-text
// duration, anchored at start. Open-ended phrasings get a six month horizon
// and unrecognized text defaults to 30 days.
func ResolveEndDate(text string, start time.Time) time.Time {
	duration := strings.ToLower(text)

	if strings.Contains(duration, "ongoing") ||
		strings.Contains(duration, "continue") ||
		strings.Contains(duration, "indefinitely") {
		return start.AddDate(0, 6, 0)
	}

	if match := daysPattern.FindStringSubmatch(duration); match != nil {
		n, _ := strconv.Atoi(match[1])
		return start.AddDate(0, 0, n)
	}
	if match := weeksPattern.FindStringSubmatch(duration); match != nil {
		n, _ := strconv.Atoi(match[1])
		return start.AddDate(0, 0, n*7)
	}
	if match := monthsPattern.FindStringSubmatch(duration); match != nil {
		n, _ := strconv.Atoi(match[1])
		return start.AddDate(0, n, 0)
	}

	return start.AddDate(0, 0, 30)
}
