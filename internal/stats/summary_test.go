package stats

import (
	"encoding/json"
	"testing"

	"github.com/2beens/fitlog/internal/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	in := Input{
		Workouts: []records.WorkoutRecord{
			workout("Legs", "2024-03-01", exercise("Squat", set("10", "100"), set("10", "100"))),
			workout("Pull", "2024-03-05",
				exercise("squat ", set("5", "100")),
				exercise("Pull-Up (Bodyweight)", set("10", "bodyweight")),
			),
		},
		WeightLogs: []records.WeightLogEntry{weightLog("2024-03-04", 180)},
		Now:        at("2024-03-10 12:00"),
	}

	assert.Equal(t, SummaryMetrics{
		TotalWorkouts:   2,
		TotalExercises:  2,
		TotalSets:       4,
		TotalVolume:     2000 + 500 + 1800,
		WeeklyFrequency: 1,
		LastWorkout:     "3/5/2024",
	}, Summary(in))
}

func TestSummary_Empty(t *testing.T) {
	s := Summary(Input{Now: at("2024-03-10 12:00")})
	assert.Equal(t, "N/A", s.LastWorkout)
	assert.Zero(t, s.TotalVolume)
	assert.Zero(t, s.WeeklyFrequency)
}

func TestWeeklyFrequency(t *testing.T) {
	now := at("2024-03-20 12:00")
	assert.Zero(t, WeeklyFrequency(Input{Now: now}))
	assert.Equal(t, 1.0, WeeklyFrequency(Input{
		Workouts: []records.WorkoutRecord{workout("Only", "2020-01-01")},
		Now:      now,
	}))

	// younger than four weeks: all workouts over the history age
	young := Input{
		Workouts: []records.WorkoutRecord{
			workout("A", "2024-03-06"),
			workout("B", "2024-03-13"),
			workout("C", "2024-03-15"),
		},
		Now: now,
	}
	assert.Equal(t, 1.0, WeeklyFrequency(young))

	old := Input{
		Workouts: []records.WorkoutRecord{
			workout("A", "2024-01-01"),
			workout("B", "2024-02-28"),
			workout("C", "2024-03-01"),
			workout("D", "2024-03-10"),
			workout("E", "2024-03-20"),
			workout("F", "garbage"),
		},
		Now: at("2024-03-29 00:00"),
	}
	assert.Equal(t, 0.8, WeeklyFrequency(old))
}

func TestStatistics_Idempotent(t *testing.T) {
	in := Input{
		Workouts: []records.WorkoutRecord{
			workout("B", "2024-03-05", exercise("Squat", set("5", "100"), set("5", "bodyweight"))),
			workout("A", "2024-03-05", exercise("Squat", set("3", "120"))),
			workout("C", "garbage", exercise("Squat", set("1", "1"))),
			workout("D", "2024-01-15", exercise("squat", set("8", "90"))),
		},
		WeightLogs: []records.WeightLogEntry{
			weightLog("2024-03-04", 180),
			weightLog("2024-03-04", 181),
			weightLog("2024-02-20", 183),
		},
		Now: at("2024-03-10 12:00"),
	}

	render := func() []byte {
		b, err := json.Marshal(map[string]any{
			"dashboard":   Dashboard(in),
			"summary":     Summary(in),
			"progression": Progression(in, "squat", RepFilter{Mode: RepModeAll}),
			"volume":      VolumeOverTime(in, "squat", WindowAll),
			"calendar":    Calendar(in, "squat", 0),
			"weight":      WeightProgress(in, WindowAll),
			"exercises":   ExerciseOptions(in.Workouts),
		})
		require.NoError(t, err)
		return b
	}

	workoutsBefore, err := json.Marshal(in.Workouts)
	require.NoError(t, err)
	logsBefore, err := json.Marshal(in.WeightLogs)
	require.NoError(t, err)

	first := render()
	second := render()
	assert.Equal(t, string(first), string(second))

	workoutsAfter, err := json.Marshal(in.Workouts)
	require.NoError(t, err)
	logsAfter, err := json.Marshal(in.WeightLogs)
	require.NoError(t, err)
	assert.JSONEq(t, string(workoutsBefore), string(workoutsAfter))
	assert.JSONEq(t, string(logsBefore), string(logsAfter))
}
