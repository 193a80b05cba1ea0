package history

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/fitlog/internal/records"
	"github.com/2beens/fitlog/internal/store"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=history_test

type historyStore interface {
	GetUserHistory(ctx context.Context, userID string) (*records.UserHistory, error)
	CreateUser(ctx context.Context, userID string) error
	AppendWorkout(ctx context.Context, userID string, workout records.WorkoutRecord) error
	AppendWeightLog(ctx context.Context, userID string, entry records.WeightLogEntry) error
	ReplaceWorkouts(ctx context.Context, userID string, workouts []records.WorkoutRecord) error
	ReplaceWeightLogs(ctx context.Context, userID string, entries []records.WeightLogEntry) error
}

// Service logs new records and resolves edits and deletes of displayed records
// back to the stored ones. Every edit or delete rewrites the whole array.
type Service struct {
	store          historyStore
	loc            *time.Location
	now            func() time.Time
	isBodyweight   func(name string) bool
	metricsManager *metrics.Manager
}

func NewService(
	historyStore historyStore,
	loc *time.Location,
	isBodyweight func(name string) bool,
	metricsManager *metrics.Manager,
) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		store:          historyStore,
		loc:            loc,
		now:            time.Now,
		isBodyweight:   isBodyweight,
		metricsManager: metricsManager,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) countEdit(operation string, err error) {
	if s.metricsManager == nil {
		return
	}
	result := "ok"
	switch {
	case errors.Is(err, ErrRecordNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}
	s.metricsManager.CounterHistoryEdits.WithLabelValues(operation, result).Inc()
}

// History returns the user's records, newest first. A user without a
// history document gets an empty one.
func (s *Service) History(ctx context.Context, userID string) (_ *records.UserHistory, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.history.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	history, err := s.store.GetUserHistory(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return records.NewUserHistory(), nil
	}
	if err != nil {
		return nil, err
	}

	workouts := make([]records.WorkoutRecord, len(history.Workouts))
	copy(workouts, history.Workouts)
	sort.SliceStable(workouts, func(i, j int) bool {
		a := records.Normalize(workouts[i].Date, s.loc)
		b := records.Normalize(workouts[j].Date, s.loc)
		if c := a.Compare(b); c != 0 {
			return c > 0
		}
		return workouts[i].Timestamp.Float() > workouts[j].Timestamp.Float()
	})

	weightLogs := make([]records.WeightLogEntry, len(history.WeightLogs))
	copy(weightLogs, history.WeightLogs)
	sort.SliceStable(weightLogs, func(i, j int) bool {
		a := records.Normalize(weightLogs[i].Date, s.loc)
		b := records.Normalize(weightLogs[j].Date, s.loc)
		if c := a.Compare(b); c != 0 {
			return c > 0
		}
		return weightLogs[i].Timestamp > weightLogs[j].Timestamp
	})

	return &records.UserHistory{
		Workouts:   workouts,
		WeightLogs: weightLogs,
	}, nil
}

// LogWorkout validates and appends a new workout, creating the user's history
// document when it does not exist yet.
func (s *Service) LogWorkout(ctx context.Context, userID string, workout records.WorkoutRecord) (_ *records.WorkoutRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.history.log-workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := records.ValidateWorkout(workout); err != nil {
		return nil, err
	}

	stored := records.NewWorkout(workout, s.now(), s.isBodyweight)
	span.SetAttributes(attribute.String("workout.id", stored.ID))

	err = s.store.AppendWorkout(ctx, userID, stored)
	if errors.Is(err, store.ErrUserNotFound) {
		if err = s.store.CreateUser(ctx, userID); err != nil {
			return nil, fmt.Errorf("create history: %w", err)
		}
		err = s.store.AppendWorkout(ctx, userID, stored)
	}
	if err != nil {
		return nil, err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterWorkoutsLogged.Inc()
	}
	log.Debugf("workout %s logged for %s", stored.ID, userID)
	return &stored, nil
}

// LogWeight validates and appends a new body weight entry.
func (s *Service) LogWeight(ctx context.Context, userID string, entry records.WeightLogEntry) (_ *records.WeightLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.history.log-weight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := records.ValidateWeightLog(entry); err != nil {
		return nil, err
	}

	stored := records.NewWeightLog(entry.Weight.Float(), entry.Date.Text(), s.now())

	err = s.store.AppendWeightLog(ctx, userID, stored)
	if errors.Is(err, store.ErrUserNotFound) {
		if err = s.store.CreateUser(ctx, userID); err != nil {
			return nil, fmt.Errorf("create history: %w", err)
		}
		err = s.store.AppendWeightLog(ctx, userID, stored)
	}
	if err != nil {
		return nil, err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterWeightLogs.Inc()
	}
	log.Debugf("weight log %s logged for %s", stored.ID, userID)
	return &stored, nil
}
