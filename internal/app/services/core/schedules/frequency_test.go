package schedules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFrequency(t *testing.T) {
	t.Run("Once Daily Variants", func(t *testing.T) {
		assert.Equal(t, FrequencySpec{1, PeriodDay}, ParseFrequency("once daily"))
		assert.Equal(t, FrequencySpec{1, PeriodDay}, ParseFrequency("Daily"))
		assert.Equal(t, FrequencySpec{1, PeriodDay}, ParseFrequency("take once a day"))
	})

	t.Run("Twice Daily Wins Over Daily Substring", func(t *testing.T) {
		assert.Equal(t, FrequencySpec{2, PeriodDay}, ParseFrequency("twice daily"),
			"the twice-daily rule must match before the bare daily rule")
		assert.Equal(t, FrequencySpec{2, PeriodDay}, ParseFrequency("2 times daily"))
	})

	t.Run("Three And Four Times Daily", func(t *testing.T) {
		assert.Equal(t, FrequencySpec{3, PeriodDay}, ParseFrequency("three times daily"))
		assert.Equal(t, FrequencySpec{3, PeriodDay}, ParseFrequency("thrice daily"))
		assert.Equal(t, FrequencySpec{4, PeriodDay}, ParseFrequency("four times daily"))
	})

	t.Run("Hour Intervals", func(t *testing.T) {
		assert.Equal(t, FrequencySpec{4, PeriodDay}, ParseFrequency("every 6 hours"))
		assert.Equal(t, FrequencySpec{3, PeriodDay}, ParseFrequency("every 8 hours"))
		assert.Equal(t, FrequencySpec{2, PeriodDay}, ParseFrequency("every 12 hours"))
	})

	t.Run("Weekly And Monthly", func(t *testing.T) {
		assert.Equal(t, FrequencySpec{1, PeriodWeek}, ParseFrequency("weekly"))
		assert.Equal(t, FrequencySpec{1, PeriodWeek}, ParseFrequency("once a week"))
		assert.Equal(t, FrequencySpec{1, PeriodMonth}, ParseFrequency("monthly"))
		assert.Equal(t, FrequencySpec{1, PeriodMonth}, ParseFrequency("once a month"))
	})

	t.Run("As Needed", func(t *testing.T) {
		assert.Equal(t, FrequencySpec{0, PeriodDay}, ParseFrequency("as needed"))
		assert.Equal(t, FrequencySpec{0, PeriodDay}, ParseFrequency("take when required for pain"))
	})

	t.Run("Unrecognized Falls Back To Once Daily", func(t *testing.T) {
		assert.Equal(t, FrequencySpec{1, PeriodDay}, ParseFrequency("whenever you remember"))
		assert.Equal(t, FrequencySpec{1, PeriodDay}, ParseFrequency(""))
	})
}
