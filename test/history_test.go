package test

import (
	"context"
	"net/http"
	"net/url"

	"github.com/2beens/fitlog/internal/history"
	"github.com/2beens/fitlog/internal/matcher"
	"github.com/2beens/fitlog/internal/records"
	"github.com/2beens/fitlog/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func legDayBody() map[string]any {
	return map[string]any{
		"name": "Leg Day",
		"date": "2024-01-10",
		"exercises": []map[string]any{
			{
				"name": "Barbell Squat",
				"sets": []map[string]any{
					{"reps": 10, "weight": 135},
					{"reps": "8", "weight": "145"},
				},
			},
		},
	}
}

func (s *IntegrationTestSuite) TestHistoryLifecycle() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := s.registerAndLogin(ctx)

	// the same workout logged twice
	var logged []records.WorkoutRecord
	for range 2 {
		resp := s.do(ctx, http.MethodPost, "/history/workouts", token, legDayBody())
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		workout := decodeResponse[records.WorkoutRecord](t, resp)
		require.NotEmpty(t, workout.ID)
		logged = append(logged, workout)
	}
	assert.NotEqual(t, logged[0].ID, logged[1].ID)

	for _, body := range []map[string]any{
		{"weight": 180, "date": "2024-03-10"},
		{"weight": 178, "date": "2024-03-13"},
	} {
		resp := s.do(ctx, http.MethodPost, "/history/weights", token, body)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.NoError(t, resp.Body.Close())
	}

	resp := s.do(ctx, http.MethodPost, "/history/weights", token, map[string]any{"weight": -3})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	validation := decodeResponse[history.ValidationResponse](t, resp)
	assert.NotEmpty(t, validation.Errors)

	resp = s.do(ctx, http.MethodGet, "/history", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	userHistory := decodeResponse[records.UserHistory](t, resp)
	require.Len(t, userHistory.Workouts, 2)
	require.Len(t, userHistory.WeightLogs, 2)
	assert.Equal(t, 178.0, userHistory.WeightLogs[0].Weight.Float())

	// a displayed workout without id matches both copies, nothing is deleted
	resp = s.do(ctx, http.MethodPost, "/history/workouts/delete", token, legDayBody())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NoError(t, resp.Body.Close())

	resp = s.do(ctx, http.MethodPost, "/history/workouts/delete", token, logged[1])
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "deleted", responseText(t, resp))

	resp = s.do(ctx, http.MethodPut, "/history/weights", token, map[string]any{
		"displayed": userHistory.WeightLogs[0],
		"updated":   map[string]any{"weight": 177.5, "date": "2024-03-13"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	edited := decodeResponse[records.WeightLogEntry](t, resp)
	assert.Equal(t, userHistory.WeightLogs[0].ID, edited.ID)
	assert.Equal(t, 177.5, edited.Weight.Float())

	resp = s.do(ctx, http.MethodGet, "/stats/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	dashboard := decodeResponse[stats.DashboardView](t, resp)
	assert.Equal(t, 1, dashboard.TotalWorkouts)
	assert.Equal(t, 2510.0, dashboard.TotalVolume)
	assert.Equal(t, 2, dashboard.TotalWeightLogs)
	require.NotNil(t, dashboard.CurrentWeight)
	assert.Equal(t, 177.5, *dashboard.CurrentWeight)
	require.NotNil(t, dashboard.LastWorkout)
	require.Len(t, dashboard.RecentWorkouts, 1)
	assert.Equal(t, logged[0].ID, dashboard.RecentWorkouts[0].ID)
}

func (s *IntegrationTestSuite) TestHistoriesAreIsolated() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tokenA, _ := s.registerAndLogin(ctx)
	tokenB, _ := s.registerAndLogin(ctx)

	resp := s.do(ctx, http.MethodPost, "/history/workouts", tokenA, legDayBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NoError(t, resp.Body.Close())

	resp = s.do(ctx, http.MethodGet, "/history", tokenB, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeResponse[records.UserHistory](t, resp).Workouts)

	resp = s.do(ctx, http.MethodGet, "/history", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.NoError(t, resp.Body.Close())
}

func (s *IntegrationTestSuite) TestExerciseSuggestions() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resp := s.do(ctx, http.MethodGet, "/exercises/suggest?q="+url.QueryEscape("barbell squat"), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	suggestions := decodeResponse[matcher.SuggestResponse](t, resp)
	require.NotEmpty(t, suggestions.Suggestions)
	assert.LessOrEqual(t, len(suggestions.Suggestions), 8)
	assert.Equal(t, "Barbell Squat", suggestions.Suggestions[0])

	resp = s.do(ctx, http.MethodGet, "/exercises/closest?q=squat", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	closest := decodeResponse[matcher.ClosestResponse](t, resp)
	assert.True(t, closest.Catalog)
}
