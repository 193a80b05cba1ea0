package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/fitlog/internal/records"
)

var (
	ErrUserNotFound     = errors.New("user history not found")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrUnavailable      = errors.New("store unavailable")
)

// Store persists one history document per user. Appends add a single element to
// the persisted array without dedup; replaces overwrite the named array wholesale.
type Store interface {
	GetUserHistory(ctx context.Context, userID string) (*records.UserHistory, error)
	// CreateUser creates an empty history, doing nothing when one exists.
	CreateUser(ctx context.Context, userID string) error
	AppendWorkout(ctx context.Context, userID string, workout records.WorkoutRecord) error
	AppendWeightLog(ctx context.Context, userID string, entry records.WeightLogEntry) error
	ReplaceWorkouts(ctx context.Context, userID string, workouts []records.WorkoutRecord) error
	ReplaceWeightLogs(ctx context.Context, userID string, entries []records.WeightLogEntry) error
	ListUserIDs(ctx context.Context) ([]string, error)
}

// checkUser fails closed on an empty identity.
func checkUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrNotAuthenticated
	}
	return nil
}

// nonNil keeps replaced arrays encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}
