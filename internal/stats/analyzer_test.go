package stats_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/2beens/fitlog/internal/records"
	"github.com/2beens/fitlog/internal/stats"
	"github.com/2beens/fitlog/internal/store"
	"github.com/2beens/fitlog/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 3, 13, 18, 0, 0, 0, time.UTC)

func testHistory() *records.UserHistory {
	return &records.UserHistory{
		Workouts: []records.WorkoutRecord{
			{
				ID:   "w1",
				Name: "Leg Day",
				Date: records.DateString("2024-01-10"),
				Exercises: []records.ExerciseEntry{
					{Name: "Barbell Squat", Sets: []records.SetEntry{
						{Reps: records.StringValue("10"), Weight: records.StringValue("135")},
						{Reps: records.StringValue("8"), Weight: records.StringValue("145")},
					}},
				},
			},
		},
		WeightLogs: []records.WeightLogEntry{
			{ID: "l1", Weight: records.NumberValue(180), Date: records.DateString("2024-03-10")},
			{ID: "l2", Weight: records.NumberValue(178), Date: records.DateString("2024-03-13")},
		},
	}
}

func newTestAnalyzer(t *testing.T) (*stats.Analyzer, *MockhistoryReader, *metrics.Manager) {
	ctrl := gomock.NewController(t)
	repo := NewMockhistoryReader(ctrl)
	metricsManager := metrics.NewTestManager()
	analyzer := stats.NewAnalyzer(repo, time.UTC, metricsManager).
		WithClock(func() time.Time { return testNow })
	return analyzer, repo, metricsManager
}

func TestAnalyzer_Dashboard(t *testing.T) {
	analyzer, repo, metricsManager := newTestAnalyzer(t)
	repo.EXPECT().GetUserHistory(gomock.Any(), "user-1").Return(testHistory(), nil)

	view, err := analyzer.Dashboard(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, view.TotalWorkouts)
	assert.Equal(t, 2510.0, view.TotalVolume)
	require.NotNil(t, view.WeeklyTrend)
	assert.Equal(t, -2.0, *view.WeeklyTrend)

	assert.Equal(t, 1, testutil.CollectAndCount(metricsManager.HistStatsDuration))
}

func TestAnalyzer_UserWithoutHistory(t *testing.T) {
	analyzer, repo, _ := newTestAnalyzer(t)
	repo.EXPECT().GetUserHistory(gomock.Any(), "new-user").Return(nil, store.ErrUserNotFound)

	summary, err := analyzer.Summary(context.Background(), "new-user")
	require.NoError(t, err)
	assert.Equal(t, "N/A", summary.LastWorkout)
	assert.Zero(t, summary.TotalWorkouts)
}

func TestAnalyzer_StoreFailure(t *testing.T) {
	analyzer, repo, _ := newTestAnalyzer(t)
	repo.EXPECT().GetUserHistory(gomock.Any(), "user-1").Return(nil, store.ErrUnavailable)

	_, err := analyzer.Calendar(context.Background(), "user-1", "squat", 0)
	assert.True(t, errors.Is(err, store.ErrUnavailable))
}

func TestAnalyzer_Views(t *testing.T) {
	analyzer, repo, _ := newTestAnalyzer(t)
	repo.EXPECT().GetUserHistory(gomock.Any(), "user-1").Return(testHistory(), nil).AnyTimes()
	ctx := context.Background()

	points, err := analyzer.Progression(ctx, "user-1", "barbell squat", stats.RepFilter{Mode: stats.RepModeExact, Exact: 8})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 145.0, points[0].Weight)

	volume, err := analyzer.VolumeOverTime(ctx, "user-1", "Barbell Squat", stats.WindowThreeMonths)
	require.NoError(t, err)
	require.Len(t, volume, 1)
	assert.Equal(t, 2510.0, volume[0].Volume)

	calendar, err := analyzer.Calendar(ctx, "user-1", "Barbell Squat", 0)
	require.NoError(t, err)
	assert.Equal(t, 2024, calendar.Year)
	assert.Equal(t, []stats.CalendarDay{{Date: "2024-01-10", Count: 2, Intensity: 2}}, calendar.Days)

	weight, err := analyzer.WeightProgress(ctx, "user-1", stats.WindowMonth)
	require.NoError(t, err)
	assert.Len(t, weight.Points, 2)

	options, err := analyzer.Exercises(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []stats.ExerciseOption{{Name: "Barbell Squat", MaxSets: 2}}, options)
}

func TestAnalyzer_TimeZone(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockhistoryReader(ctrl)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 2024-01-10 local midnight in Tokyo, as a legacy timestamp object
	midnight := time.Date(2024, 1, 10, 0, 0, 0, 0, tokyo)
	history := &records.UserHistory{
		Workouts: []records.WorkoutRecord{{
			Name: "Tokyo",
			Date: records.DateTimestamp(midnight.Unix(), 0),
			Exercises: []records.ExerciseEntry{{Name: "Squat", Sets: []records.SetEntry{
				{Reps: records.IntValue(5), Weight: records.IntValue(100)},
			}}},
		}},
	}
	repo.EXPECT().GetUserHistory(gomock.Any(), "user-1").Return(history, nil).Times(2)

	analyzer := stats.NewAnalyzer(repo, tokyo, nil).WithClock(func() time.Time { return testNow })
	calendar, err := analyzer.Calendar(context.Background(), "user-1", "squat", 2024)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", calendar.Days[0].Date)

	utc := stats.NewAnalyzer(repo, time.UTC, nil).WithClock(func() time.Time { return testNow })
	calendar, err = utc.Calendar(context.Background(), "user-1", "squat", 2024)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-09", calendar.Days[0].Date)
}
