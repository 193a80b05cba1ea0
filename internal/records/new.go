package records

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const isoMillisLayout = "2006-01-02T15:04:05.000Z07:00"

func NewID() string {
	return uuid.NewString()
}

// NewWorkout prepares a validated workout for storage: names are trimmed, blank
// weights and every weight of a bodyweight exercise get the marker, and the
// record gets an id and a creation timestamp.
func NewWorkout(w WorkoutRecord, now time.Time, isBodyweight func(string) bool) WorkoutRecord {
	out := WorkoutRecord{
		ID:        NewID(),
		Name:      strings.TrimSpace(w.Name),
		Date:      w.Date,
		Timestamp: NumberValue(float64(now.UnixMilli())),
		Exercises: normalizeExercises(w.Exercises, isBodyweight),
	}
	return out
}

// WithUpdates applies an edited workout onto the stored one, keeping its id
// (or minting one for legacy records), its creation timestamp and any stored
// fields the model does not cover.
func (w WorkoutRecord) WithUpdates(updated WorkoutRecord, isBodyweight func(string) bool) WorkoutRecord {
	id := w.ID
	if id == "" {
		id = NewID()
	}
	date := updated.Date
	if date.IsZero() {
		date = w.Date
	}
	return WorkoutRecord{
		ID:        id,
		Name:      strings.TrimSpace(updated.Name),
		Date:      date,
		Timestamp: w.Timestamp,
		Exercises: normalizeExercises(updated.Exercises, isBodyweight),
		persisted: persisted{extra: w.extra},
	}
}

func normalizeExercises(in []ExerciseEntry, isBodyweight func(string) bool) []ExerciseEntry {
	out := make([]ExerciseEntry, 0, len(in))
	for _, e := range in {
		name := strings.TrimSpace(e.Name)
		bodyweight := isBodyweight != nil && isBodyweight(name)
		sets := make([]SetEntry, 0, len(e.Sets))
		for _, s := range e.Sets {
			if bodyweight || s.Weight.IsBlank() {
				s.Weight = StringValue(BodyweightMarker)
			}
			sets = append(sets, s)
		}
		out = append(out, ExerciseEntry{Name: name, Sets: sets})
	}
	return out
}

func NewWeightLog(weight float64, date string, now time.Time) WeightLogEntry {
	return WeightLogEntry{
		ID:        NewID(),
		Weight:    NumberValue(weight),
		Date:      DateString(date),
		Timestamp: FormatTimestamp(now),
	}
}

// WithUpdates applies an edited weight log onto the stored one, keeping its id
// and the stored fields the model does not cover. The weight is stored as a
// number.
func (l WeightLogEntry) WithUpdates(updated WeightLogEntry) WeightLogEntry {
	id := l.ID
	if id == "" {
		id = NewID()
	}
	timestamp := l.Timestamp
	if updated.Timestamp != "" {
		timestamp = updated.Timestamp
	}
	return WeightLogEntry{
		ID:        id,
		Weight:    NumberValue(updated.Weight.Float()),
		Date:      updated.Date,
		Timestamp: timestamp,
		persisted: persisted{extra: l.extra},
	}
}

// FormatTimestamp formats t as an ISO 8601 UTC instant with milliseconds.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(isoMillisLayout)
}
