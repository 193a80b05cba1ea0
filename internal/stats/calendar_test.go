package stats

import (
	"testing"

	"github.com/2beens/fitlog/internal/records"
	"github.com/stretchr/testify/assert"
)

func TestIntensityBucket(t *testing.T) {
	expected := map[int]int{0: 0, 1: 1, 2: 2, 3: 2, 4: 3, 5: 3, 6: 4, 7: 4, 40: 4, -1: 0}
	for count, bucket := range expected {
		assert.Equal(t, bucket, IntensityBucket(count), "count %d", count)
	}
}

func calendarInput() Input {
	timestamped := workout("Timestamped", "", exercise("Squat", set("5", "100")))
	timestamped.Date = records.DateTimestamp(at("2024-06-03 00:00").Unix(), 0)

	return Input{
		Workouts: []records.WorkoutRecord{
			workout("A", "2024-06-01", exercise("Squat", set("5", "100"), set("5", "100"), set("5", "100"))),
			workout("B", "2024-06-01", exercise("squat", set("5", "100"), set("5", "100"))),
			workout("C", "2024-06-03", exercise("Squat")),
			timestamped,
			workout("D", "2023-12-31", exercise("Squat",
				set("1", "1"), set("1", "1"), set("1", "1"), set("1", "1"), set("1", "1"), set("1", "1"),
			)),
			workout("E", "", exercise("Squat", set("5", "100"))),
			workout("F", "2024-06-05", exercise("Bench", set("5", "100"))),
		},
		Now: at("2024-06-15 12:00"),
	}
}

func TestCalendar_CurrentYear(t *testing.T) {
	view := Calendar(calendarInput(), "squat", 0)

	assert.Equal(t, 2024, view.Year)
	assert.Equal(t, []int{2024, 2023}, view.AvailableYears)
	assert.Equal(t, []CalendarDay{
		{Date: "2024-06-01", Count: 5, Intensity: 3},
		{Date: "2024-06-03", Count: 2, Intensity: 2},
	}, view.Days)
}

func TestCalendar_OtherYears(t *testing.T) {
	view := Calendar(calendarInput(), "Squat", 2023)
	assert.Equal(t, 2023, view.Year)
	assert.Equal(t, []CalendarDay{{Date: "2023-12-31", Count: 6, Intensity: 4}}, view.Days)

	// no data for 2022: most recent year with data
	view = Calendar(calendarInput(), "Squat", 2022)
	assert.Equal(t, 2024, view.Year)
	assert.Len(t, view.Days, 2)
}

func TestCalendar_NoData(t *testing.T) {
	view := Calendar(calendarInput(), "Deadlift", 0)
	assert.Equal(t, 2024, view.Year)
	assert.Empty(t, view.AvailableYears)
	assert.NotNil(t, view.AvailableYears)
	assert.Equal(t, []CalendarDay{}, view.Days)
}
