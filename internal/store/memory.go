package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/2beens/fitlog/internal/records"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps histories in process. Documents are stored encoded, so
// callers never share memory with it.
type MemoryStore struct {
	mutex sync.RWMutex
	docs  map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string][]byte),
	}
}

func (s *MemoryStore) GetUserHistory(_ context.Context, userID string) (*records.UserHistory, error) {
	if err := checkUser(userID); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	doc, ok := s.docs[userID]
	s.mutex.RUnlock()
	if !ok {
		return nil, ErrUserNotFound
	}

	return decodeHistory(doc)
}

func (s *MemoryStore) CreateUser(_ context.Context, userID string) error {
	if err := checkUser(userID); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, ok := s.docs[userID]; ok {
		return nil
	}
	doc, err := json.Marshal(records.NewUserHistory())
	if err != nil {
		return err
	}
	s.docs[userID] = doc
	return nil
}

func (s *MemoryStore) AppendWorkout(_ context.Context, userID string, workout records.WorkoutRecord) error {
	return s.update(userID, func(h *records.UserHistory) {
		h.Workouts = append(h.Workouts, workout)
	})
}

func (s *MemoryStore) AppendWeightLog(_ context.Context, userID string, entry records.WeightLogEntry) error {
	return s.update(userID, func(h *records.UserHistory) {
		h.WeightLogs = append(h.WeightLogs, entry)
	})
}

func (s *MemoryStore) ReplaceWorkouts(_ context.Context, userID string, workouts []records.WorkoutRecord) error {
	return s.update(userID, func(h *records.UserHistory) {
		h.Workouts = nonNil(workouts)
	})
}

func (s *MemoryStore) ReplaceWeightLogs(_ context.Context, userID string, entries []records.WeightLogEntry) error {
	return s.update(userID, func(h *records.UserHistory) {
		h.WeightLogs = nonNil(entries)
	})
}

func (s *MemoryStore) ListUserIDs(_ context.Context) ([]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	ids := make([]string, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *MemoryStore) update(userID string, apply func(h *records.UserHistory)) error {
	if err := checkUser(userID); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	doc, ok := s.docs[userID]
	if !ok {
		return ErrUserNotFound
	}
	history, err := decodeHistory(doc)
	if err != nil {
		return err
	}
	apply(history)

	updated, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	s.docs[userID] = updated
	return nil
}

func decodeHistory(doc []byte) (*records.UserHistory, error) {
	var raw struct {
		Workouts   json.RawMessage `json:"workouts"`
		WeightLogs json.RawMessage `json:"weightLogs"`
	}
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return decodeColumns(raw.Workouts, raw.WeightLogs)
}

// decodeColumns decodes the two persisted arrays tolerantly; a missing array is empty.
func decodeColumns(workoutsJSON, weightLogsJSON []byte) (*records.UserHistory, error) {
	history := records.NewUserHistory()
	if len(workoutsJSON) > 0 {
		workouts, err := records.DecodeWorkouts(workoutsJSON)
		if err != nil {
			return nil, err
		}
		history.Workouts = nonNil(workouts)
	}
	if len(weightLogsJSON) > 0 {
		logs, err := records.DecodeWeightLogs(weightLogsJSON)
		if err != nil {
			return nil, err
		}
		history.WeightLogs = nonNil(logs)
	}
	return history, nil
}
