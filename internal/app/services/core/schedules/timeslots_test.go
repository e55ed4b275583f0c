package schedules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignTimes(t *testing.T) {
	t.Run("PRN Gets No Times", func(t *testing.T) {
		assert.Empty(t, AssignTimes("morning", FrequencySpec{0, PeriodDay}))
	})

	t.Run("Single Dose Timing", func(t *testing.T) {
		once := FrequencySpec{1, PeriodDay}
		assert.Equal(t, []string{"08:00"}, AssignTimes("in the morning", once))
		assert.Equal(t, []string{"20:00"}, AssignTimes("evening", once))
		assert.Equal(t, []string{"20:00"}, AssignTimes("at night", once))
		assert.Equal(t, []string{"12:00"}, AssignTimes("noon", once))
		assert.Equal(t, []string{"12:00"}, AssignTimes("with lunch", once))
		assert.Equal(t, []string{"07:30"}, AssignTimes("before meals", once))
		assert.Equal(t, []string{"08:30"}, AssignTimes("after meals", once))
		assert.Equal(t, []string{"08:00"}, AssignTimes("", once))
	})

	t.Run("Two Doses Timing", func(t *testing.T) {
		twice := FrequencySpec{2, PeriodDay}
		assert.Equal(t, []string{"08:00", "20:00"}, AssignTimes("morning and evening", twice))
		assert.Equal(t, []string{"07:30", "19:30"}, AssignTimes("before meals", twice))
		assert.Equal(t, []string{"08:30", "20:30"}, AssignTimes("after meals", twice))
		assert.Equal(t, []string{"08:00", "20:00"}, AssignTimes("", twice))
	})

	t.Run("Three Doses Timing", func(t *testing.T) {
		thrice := FrequencySpec{3, PeriodDay}
		assert.Equal(t, []string{"07:30", "12:30", "19:30"}, AssignTimes("before meals", thrice))
		assert.Equal(t, []string{"08:30", "13:30", "20:30"}, AssignTimes("after meals", thrice))
		assert.Equal(t, []string{"08:00", "14:00", "20:00"}, AssignTimes("whenever", thrice))
	})

	t.Run("Four Doses Ignores Timing Text", func(t *testing.T) {
		four := FrequencySpec{4, PeriodDay}
		expected := []string{"08:00", "14:00", "20:00", "02:00"}
		assert.Equal(t, expected, AssignTimes("before meals", four))
		assert.Equal(t, expected, AssignTimes("", four))
	})

	t.Run("Unknown Occurrence Count Defaults", func(t *testing.T) {
		assert.Equal(t, []string{"08:00"}, AssignTimes("morning", FrequencySpec{7, PeriodDay}))
	})
}
