package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/2beens/fitlog/internal/records"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	historyKeyPrefix    = "fitlog-history||"
	historyGenKeyPrefix = "fitlog-history-gen||"
	DefaultHistoryTTL   = 5 * time.Minute
)

var _ Store = (*CachedStore)(nil)

// CachedStore is a read-through redis cache in front of another Store. Cached
// documents are keyed by a per-user generation that every write increments, so
// a snapshot read before a write can only ever land under a generation nobody
// reads again. Redis failures only cost a cache miss.
type CachedStore struct {
	next        Store
	redisClient *redis.Client
	ttl         time.Duration
}

func NewCachedStore(next Store, redisClient *redis.Client, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = DefaultHistoryTTL
	}
	return &CachedStore{
		next:        next,
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func historyKey(userID string, gen int64) string {
	return historyKeyPrefix + userID + "||" + strconv.FormatInt(gen, 10)
}

// historyGenKey holds the user's write generation. It never expires: resetting
// it would make old snapshots readable again.
func historyGenKey(userID string) string {
	return historyGenKeyPrefix + userID
}

func (s *CachedStore) generation(ctx context.Context, userID string) (int64, error) {
	gen, err := s.redisClient.Get(ctx, historyGenKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (s *CachedStore) GetUserHistory(ctx context.Context, userID string) (*records.UserHistory, error) {
	if err := checkUser(userID); err != nil {
		return nil, err
	}

	gen, err := s.generation(ctx, userID)
	if err != nil {
		log.Errorf("get history generation for %s: %s", userID, err)
		return s.next.GetUserHistory(ctx, userID)
	}

	key := historyKey(userID, gen)
	cached, err := s.redisClient.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		history, decodeErr := decodeHistory(cached)
		if decodeErr == nil {
			return history, nil
		}
		log.Warnf("cached history for %s: %s", userID, decodeErr)
	case !errors.Is(err, redis.Nil):
		log.Errorf("get cached history for %s: %s", userID, err)
	}

	history, err := s.next.GetUserHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	historyJSON, err := json.Marshal(history)
	if err != nil {
		log.Errorf("marshal history for %s: %s", userID, err)
		return history, nil
	}
	if err := s.redisClient.Set(ctx, key, string(historyJSON), s.ttl).Err(); err != nil {
		log.Errorf("cache history for %s: %s", userID, err)
	}

	return history, nil
}

func (s *CachedStore) CreateUser(ctx context.Context, userID string) error {
	return s.invalidate(ctx, userID, s.next.CreateUser(ctx, userID))
}

func (s *CachedStore) AppendWorkout(ctx context.Context, userID string, workout records.WorkoutRecord) error {
	return s.invalidate(ctx, userID, s.next.AppendWorkout(ctx, userID, workout))
}

func (s *CachedStore) AppendWeightLog(ctx context.Context, userID string, entry records.WeightLogEntry) error {
	return s.invalidate(ctx, userID, s.next.AppendWeightLog(ctx, userID, entry))
}

func (s *CachedStore) ReplaceWorkouts(ctx context.Context, userID string, workouts []records.WorkoutRecord) error {
	return s.invalidate(ctx, userID, s.next.ReplaceWorkouts(ctx, userID, workouts))
}

func (s *CachedStore) ReplaceWeightLogs(ctx context.Context, userID string, entries []records.WeightLogEntry) error {
	return s.invalidate(ctx, userID, s.next.ReplaceWeightLogs(ctx, userID, entries))
}

func (s *CachedStore) ListUserIDs(ctx context.Context) ([]string, error) {
	return s.next.ListUserIDs(ctx)
}

// invalidate moves the user to a new generation after a write attempt, whatever
// its outcome. Documents cached under older generations expire with their TTL.
func (s *CachedStore) invalidate(ctx context.Context, userID string, writeErr error) error {
	if errors.Is(writeErr, ErrNotAuthenticated) {
		return writeErr
	}
	if err := s.redisClient.Incr(ctx, historyGenKey(userID)).Err(); err != nil {
		log.Errorf("bump history generation for %s: %s", userID, err)
	}
	return writeErr
}
