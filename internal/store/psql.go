package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/fitlog/internal/records"
	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const Schema = `
CREATE TABLE IF NOT EXISTS user_history
(
    user_id     VARCHAR PRIMARY KEY,
    workouts    JSONB       NOT NULL DEFAULT '[]'::jsonb,
    weight_logs JSONB       NOT NULL DEFAULT '[]'::jsonb,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

var _ Store = (*PsqlStore)(nil)

// PsqlStore keeps each user's arrays as jsonb columns of one row, so stored
// records keep their original shape.
type PsqlStore struct {
	db *pgxpool.Pool
}

func NewPsqlStore(db *pgxpool.Pool) *PsqlStore {
	return &PsqlStore{
		db: db,
	}
}

func (s *PsqlStore) GetUserHistory(ctx context.Context, userID string) (_ *records.UserHistory, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := checkUser(userID); err != nil {
		return nil, err
	}

	var workoutsJSON, weightLogsJSON []byte
	err = s.db.QueryRow(
		ctx,
		`SELECT workouts, weight_logs FROM user_history WHERE user_id = $1;`,
		userID,
	).Scan(&workoutsJSON, &weightLogsJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, unavailable("get history", err)
	}

	history, err := decodeColumns(workoutsJSON, weightLogsJSON)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("workouts", len(history.Workouts)),
		attribute.Int("weight_logs", len(history.WeightLogs)),
	)

	return history, nil
}

func (s *PsqlStore) CreateUser(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := checkUser(userID); err != nil {
		return err
	}

	if _, err := s.db.Exec(
		ctx,
		`INSERT INTO user_history (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`,
		userID,
	); err != nil {
		return unavailable("create user", err)
	}
	return nil
}

func (s *PsqlStore) AppendWorkout(ctx context.Context, userID string, workout records.WorkoutRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.append-workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	return s.exec(ctx, userID, "append workout",
		`UPDATE user_history SET workouts = workouts || jsonb_build_array($2::jsonb), updated_at = now() WHERE user_id = $1;`,
		workout,
	)
}

func (s *PsqlStore) AppendWeightLog(ctx context.Context, userID string, entry records.WeightLogEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.append-weight-log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	return s.exec(ctx, userID, "append weight log",
		`UPDATE user_history SET weight_logs = weight_logs || jsonb_build_array($2::jsonb), updated_at = now() WHERE user_id = $1;`,
		entry,
	)
}

func (s *PsqlStore) ReplaceWorkouts(ctx context.Context, userID string, workouts []records.WorkoutRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.replace-workouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workouts", len(workouts)))
	return s.exec(ctx, userID, "replace workouts",
		`UPDATE user_history SET workouts = $2::jsonb, updated_at = now() WHERE user_id = $1;`,
		nonNil(workouts),
	)
}

func (s *PsqlStore) ReplaceWeightLogs(ctx context.Context, userID string, entries []records.WeightLogEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.replace-weight-logs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("weight_logs", len(entries)))
	return s.exec(ctx, userID, "replace weight logs",
		`UPDATE user_history SET weight_logs = $2::jsonb, updated_at = now() WHERE user_id = $1;`,
		nonNil(entries),
	)
}

func (s *PsqlStore) ListUserIDs(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.list-users")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := s.db.Query(ctx, `SELECT user_id FROM user_history ORDER BY user_id;`)
	if err != nil {
		return nil, unavailable("list users", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("list users", err)
	}

	return ids, nil
}

func (s *PsqlStore) exec(ctx context.Context, userID, op, query string, value any) error {
	if err := checkUser(userID); err != nil {
		return err
	}

	valueJSON, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: marshal: %w", op, err)
	}

	tag, err := s.db.Exec(ctx, query, userID, string(valueJSON))
	if err != nil {
		return unavailable(op, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
