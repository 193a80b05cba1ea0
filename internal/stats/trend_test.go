package stats

import (
	"testing"
	"time"

	"github.com/2beens/fitlog/internal/records"
	"github.com/stretchr/testify/assert"
)

func TestWeekStart(t *testing.T) {
	// Wednesday
	assert.Equal(t, at("2024-03-10 00:00"), WeekStart(at("2024-03-13 18:30")))
	// Sunday itself
	assert.Equal(t, at("2024-03-10 00:00"), WeekStart(at("2024-03-10 00:00")))
	// across a month boundary
	assert.Equal(t, at("2024-02-25 00:00"), WeekStart(at("2024-03-01 09:00")))

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	assert.NoError(t, err)
	start := WeekStart(time.Date(2024, 3, 13, 1, 0, 0, 0, tokyo))
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, tokyo), start)
}

func TestWeeklyWeightTrend_CurrentWeek(t *testing.T) {
	in := Input{
		WeightLogs: []records.WeightLogEntry{
			weightLog("2024-03-10", 180),
			weightLog("2024-03-13", 178),
		},
		Now: at("2024-03-13 18:00"),
	}

	trend, ok := WeeklyWeightTrend(in)
	assert.True(t, ok)
	assert.Equal(t, -2.0, trend)
}

func TestWeeklyWeightTrend_IgnoresOlderLogsWhenWeekHasTwo(t *testing.T) {
	in := Input{
		WeightLogs: []records.WeightLogEntry{
			weightLog("2024-02-01", 200),
			weightLog("2024-03-13", 178),
			weightLog("2024-03-11", 179),
			weightLog("2024-03-12", 181),
		},
		Now: at("2024-03-14 08:00"),
	}

	trend, ok := WeeklyWeightTrend(in)
	assert.True(t, ok)
	assert.Equal(t, -1.0, trend)
}

func TestWeeklyWeightTrend_FallsBackToLastTwoLogs(t *testing.T) {
	in := Input{
		WeightLogs: []records.WeightLogEntry{
			weightLog("2024-03-01", 185),
			weightLog("2024-03-05", 182),
		},
		Now: at("2024-03-13 18:00"),
	}

	trend, ok := WeeklyWeightTrend(in)
	assert.True(t, ok)
	assert.Equal(t, -3.0, trend)
}

func TestWeeklyWeightTrend_NotEnoughData(t *testing.T) {
	_, ok := WeeklyWeightTrend(Input{Now: at("2024-03-13 18:00")})
	assert.False(t, ok)

	_, ok = WeeklyWeightTrend(Input{
		WeightLogs: []records.WeightLogEntry{weightLog("2024-03-12", 180)},
		Now:        at("2024-03-13 18:00"),
	})
	assert.False(t, ok)
}
