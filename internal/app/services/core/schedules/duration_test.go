package schedules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	assert.NoError(t, err)
	return parsed
}

func TestResolveEndDate(t *testing.T) {
	start := mustDate(t, "2025-01-01")

	t.Run("Explicit Days", func(t *testing.T) {
		assert.Equal(t, mustDate(t, "2025-01-08"), ResolveEndDate("7 days", start))
		assert.Equal(t, mustDate(t, "2025-01-02"), ResolveEndDate("1 day", start))
	})

	t.Run("Explicit Weeks", func(t *testing.T) {
		assert.Equal(t, mustDate(t, "2025-01-15"), ResolveEndDate("2 weeks", start))
		assert.Equal(t, mustDate(t, "2025-01-08"), ResolveEndDate("for 1 week", start))
	})

	t.Run("Explicit Months", func(t *testing.T) {
		assert.Equal(t, mustDate(t, "2025-04-01"), ResolveEndDate("3 months", start))
		assert.Equal(t, mustDate(t, "2025-02-01"), ResolveEndDate("1 month", start))
	})

	t.Run("Open Ended Gets Six Month Horizon", func(t *testing.T) {
		assert.Equal(t, mustDate(t, "2025-07-01"), ResolveEndDate("ongoing", start))
		assert.Equal(t, mustDate(t, "2025-07-01"), ResolveEndDate("continue until review", start))
		assert.Equal(t, mustDate(t, "2025-07-01"), ResolveEndDate("take indefinitely", start))
	})

	t.Run("Unrecognized Defaults To Thirty Days", func(t *testing.T) {
		assert.Equal(t, mustDate(t, "2025-01-31"), ResolveEndDate("until finished", start))
		assert.Equal(t, mustDate(t, "2025-01-31"), ResolveEndDate("", start))
	})

	t.Run("Month End Overflow Normalizes", func(t *testing.T) {
		jan31 := mustDate(t, "2025-01-31")
		// Jan 31 + 1 month normalizes to Mar 3 rather than clamping to Feb 28.
		assert.Equal(t, mustDate(t, "2025-03-03"), ResolveEndDate("1 month", jan31))
	})
}
