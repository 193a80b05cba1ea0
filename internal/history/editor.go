package history

import (
	"context"
	"errors"

	"github.com/2beens/fitlog/internal/records"
	"github.com/2beens/fitlog/internal/store"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
)

// loadForEdit loads the history an edit works on. A missing document has nothing
// to edit.
func (s *Service) loadForEdit(ctx context.Context, userID string) (*records.UserHistory, error) {
	history, err := s.store.GetUserHistory(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return nil, ErrRecordNotFound
	}
	return history, err
}

func (s *Service) DeleteWorkout(ctx context.Context, userID string, displayed records.WorkoutRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.history.delete-workout")
	defer func() {
		s.countEdit("delete_workout", err)
		tracing.EndSpanWithErrCheck(span, err)
	}()

	history, err := s.loadForEdit(ctx, userID)
	if err != nil {
		return err
	}
	i, err := FindWorkout(history.Workouts, displayed, s.loc)
	if err != nil {
		return err
	}

	return s.store.ReplaceWorkouts(ctx, userID, without(history.Workouts, i))
}

// EditWorkout replaces the stored workout displayed refers to with updated,
// keeping its id and creation timestamp.
func (s *Service) EditWorkout(ctx context.Context, userID string, displayed, updated records.WorkoutRecord) (_ *records.WorkoutRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.history.edit-workout")
	defer func() {
		s.countEdit("edit_workout", err)
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if updated.Date.IsZero() {
		updated.Date = displayed.Date
	}
	if err := records.ValidateWorkout(updated); err != nil {
		return nil, err
	}

	history, err := s.loadForEdit(ctx, userID)
	if err != nil {
		return nil, err
	}
	i, err := FindWorkout(history.Workouts, displayed, s.loc)
	if err != nil {
		return nil, err
	}

	edited := history.Workouts[i].WithUpdates(updated, s.isBodyweight)
	if err := s.store.ReplaceWorkouts(ctx, userID, replaced(history.Workouts, i, edited)); err != nil {
		return nil, err
	}
	return &edited, nil
}

func (s *Service) DeleteWeightLog(ctx context.Context, userID string, displayed records.WeightLogEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.history.delete-weight-log")
	defer func() {
		s.countEdit("delete_weight_log", err)
		tracing.EndSpanWithErrCheck(span, err)
	}()

	history, err := s.loadForEdit(ctx, userID)
	if err != nil {
		return err
	}
	i, err := FindWeightLog(history.WeightLogs, displayed)
	if err != nil {
		return err
	}

	return s.store.ReplaceWeightLogs(ctx, userID, without(history.WeightLogs, i))
}

func (s *Service) EditWeightLog(ctx context.Context, userID string, displayed, updated records.WeightLogEntry) (_ *records.WeightLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.history.edit-weight-log")
	defer func() {
		s.countEdit("edit_weight_log", err)
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := records.ValidateWeightLog(updated); err != nil {
		return nil, err
	}

	history, err := s.loadForEdit(ctx, userID)
	if err != nil {
		return nil, err
	}
	i, err := FindWeightLog(history.WeightLogs, displayed)
	if err != nil {
		return nil, err
	}

	edited := history.WeightLogs[i].WithUpdates(updated)
	if err := s.store.ReplaceWeightLogs(ctx, userID, replaced(history.WeightLogs, i, edited)); err != nil {
		return nil, err
	}
	return &edited, nil
}
