package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

const UnnamedWorkout = "Unnamed Workout"

type SetEntry struct {
	Reps   Value `json:"reps,omitzero"`
	Weight Value `json:"weight,omitzero"`
}

type ExerciseEntry struct {
	Name string `json:"name"`
	// nil when the stored entry has no sets field at all
	Sets []SetEntry `json:"sets,omitzero"`
}

type WorkoutRecord struct {
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name"`
	Date      DateLike        `json:"date,omitzero"`
	Timestamp Value           `json:"timestamp,omitzero"`
	Exercises []ExerciseEntry `json:"exercises,omitzero"`

	persisted
}

func (w WorkoutRecord) MarshalJSON() ([]byte, error) {
	if w.stored != nil {
		return w.stored, nil
	}
	type plain WorkoutRecord
	return encodeRecord(plain(w), w.extra)
}

func (w *WorkoutRecord) UnmarshalJSON(data []byte) error {
	type plain WorkoutRecord
	var p plain
	decoded, err := decodeRecord(data, &p, "workout")
	*w = WorkoutRecord(p)
	w.persisted = decoded
	return err
}

// DisplayName returns the workout name, or a placeholder for unnamed workouts.
func (w WorkoutRecord) DisplayName() string {
	if strings.TrimSpace(w.Name) == "" {
		return UnnamedWorkout
	}
	return w.Name
}

// FindExercise returns the first exercise entry whose trimmed name matches
// name case-insensitively.
func (w WorkoutRecord) FindExercise(name string) (ExerciseEntry, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, e := range w.Exercises {
		if strings.ToLower(strings.TrimSpace(e.Name)) == want {
			return e, true
		}
	}
	return ExerciseEntry{}, false
}

type WeightLogEntry struct {
	ID        string   `json:"id,omitempty"`
	Weight    Value    `json:"weight,omitzero"`
	Date      DateLike `json:"date,omitzero"`
	Timestamp string   `json:"timestamp,omitempty"`

	persisted
}

func (l WeightLogEntry) MarshalJSON() ([]byte, error) {
	if l.stored != nil {
		return l.stored, nil
	}
	type plain WeightLogEntry
	return encodeRecord(plain(l), l.extra)
}

func (l *WeightLogEntry) UnmarshalJSON(data []byte) error {
	type plain WeightLogEntry
	var p plain
	decoded, err := decodeRecord(data, &p, "weight log")
	*l = WeightLogEntry(p)
	l.persisted = decoded
	return err
}

// UserHistory is everything stored for one user.
type UserHistory struct {
	Workouts   []WorkoutRecord  `json:"workouts"`
	WeightLogs []WeightLogEntry `json:"weightLogs"`
}

func NewUserHistory() *UserHistory {
	return &UserHistory{
		Workouts:   []WorkoutRecord{},
		WeightLogs: []WeightLogEntry{},
	}
}

// DecodeWorkouts decodes a stored workouts array. Fields with unexpected types are
// left at their zero value; only structurally broken JSON is an error.
func DecodeWorkouts(data []byte) ([]WorkoutRecord, error) {
	workouts := []WorkoutRecord{}
	if len(data) == 0 {
		return workouts, nil
	}
	if err := tolerateTypeErrors(json.Unmarshal(data, &workouts), "workouts"); err != nil {
		return nil, err
	}
	return workouts, nil
}

// DecodeWeightLogs is DecodeWorkouts for the weight logs array.
func DecodeWeightLogs(data []byte) ([]WeightLogEntry, error) {
	logs := []WeightLogEntry{}
	if len(data) == 0 {
		return logs, nil
	}
	if err := tolerateTypeErrors(json.Unmarshal(data, &logs), "weight logs"); err != nil {
		return nil, err
	}
	return logs, nil
}

func tolerateTypeErrors(err error, what string) error {
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		log.Warnf("decode %s: coercing malformed field: %s", what, err)
		return nil
	}
	return fmt.Errorf("decode %s: %w", what, err)
}
