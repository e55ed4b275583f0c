package schedules

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// FrequencySpec is the normalized reading of a free-text frequency string.
// OccurrencesPerPeriod 0 is the PRN ("as needed") sentinel: exactly one
// event, never repeating.
type FrequencySpec struct {
	OccurrencesPerPeriod int
	Period               Period
}
