package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitlog/internal/records"
	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const usersCollection = "users"

var _ Store = (*FirestoreStore)(nil)

// FirestoreStore keeps one document per user under users/{uid}, with the
// workouts and weightLogs array fields.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{
		client: client,
	}
}

func (s *FirestoreStore) doc(userID string) *firestore.DocumentRef {
	return s.client.Collection(usersCollection).Doc(userID)
}

func (s *FirestoreStore) GetUserHistory(ctx context.Context, userID string) (_ *records.UserHistory, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.firestore.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := checkUser(userID); err != nil {
		return nil, err
	}

	snap, err := s.doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		return nil, unavailable("get history", err)
	}

	return HistoryFromFirestore(snap.Data()), nil
}

func (s *FirestoreStore) CreateUser(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.firestore.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := checkUser(userID); err != nil {
		return err
	}

	_, err = s.doc(userID).Create(ctx, map[string]interface{}{
		"workouts":   []interface{}{},
		"weightLogs": []interface{}{},
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return unavailable("create user", err)
	}
	return nil
}

func (s *FirestoreStore) AppendWorkout(ctx context.Context, userID string, workout records.WorkoutRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.firestore.append-workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	value, err := WorkoutToFirestore(workout)
	if err != nil {
		return fmt.Errorf("append workout: %w", err)
	}
	return s.update(ctx, userID, "append workout", "workouts", firestore.ArrayUnion(value))
}

func (s *FirestoreStore) AppendWeightLog(ctx context.Context, userID string, entry records.WeightLogEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.firestore.append-weight-log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	value, err := WeightLogToFirestore(entry)
	if err != nil {
		return fmt.Errorf("append weight log: %w", err)
	}
	return s.update(ctx, userID, "append weight log", "weightLogs", firestore.ArrayUnion(value))
}

func (s *FirestoreStore) ReplaceWorkouts(ctx context.Context, userID string, workouts []records.WorkoutRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.firestore.replace-workouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	values := make([]interface{}, 0, len(workouts))
	for _, w := range workouts {
		value, err := WorkoutToFirestore(w)
		if err != nil {
			return fmt.Errorf("replace workouts: %w", err)
		}
		values = append(values, value)
	}
	return s.update(ctx, userID, "replace workouts", "workouts", values)
}

func (s *FirestoreStore) ReplaceWeightLogs(ctx context.Context, userID string, entries []records.WeightLogEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.firestore.replace-weight-logs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	values := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		value, err := WeightLogToFirestore(e)
		if err != nil {
			return fmt.Errorf("replace weight logs: %w", err)
		}
		values = append(values, value)
	}
	return s.update(ctx, userID, "replace weight logs", "weightLogs", values)
}

func (s *FirestoreStore) ListUserIDs(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.firestore.list-users")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ids := []string{}
	iter := s.client.Collection(usersCollection).DocumentRefs(ctx)
	for {
		ref, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, unavailable("list users", err)
		}
		ids = append(ids, ref.ID)
	}
	return ids, nil
}

func (s *FirestoreStore) update(ctx context.Context, userID, op, path string, value interface{}) error {
	if err := checkUser(userID); err != nil {
		return err
	}

	_, err := s.doc(userID).Update(ctx, []firestore.Update{
		{Path: path, Value: value},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrUserNotFound
		}
		return unavailable(op, err)
	}
	return nil
}
