package history

import (
	"errors"
	"time"

	"github.com/2beens/fitlog/internal/records"
)

// ErrRecordNotFound is returned when a displayed record matches no stored
// record, or more than one.
var ErrRecordNotFound = errors.New("record not found")

// FindWorkout returns the position of the stored workout that displayed refers to.
// Records carrying an id are looked up by id. Legacy records without one are
// matched by name, display date and exercise count, and only a unique match counts.
func FindWorkout(workouts []records.WorkoutRecord, displayed records.WorkoutRecord, loc *time.Location) (int, error) {
	if displayed.ID != "" {
		return uniqueIndex(len(workouts), func(i int) bool {
			return workouts[i].ID == displayed.ID
		})
	}

	label := records.Normalize(displayed.Date, loc).Label(loc)
	return uniqueIndex(len(workouts), func(i int) bool {
		w := workouts[i]
		return w.Name == displayed.Name &&
			len(w.Exercises) == len(displayed.Exercises) &&
			records.Normalize(w.Date, loc).Label(loc) == label
	})
}

// FindWeightLog returns the position of the stored weight log that displayed
// refers to, by id or else by date, weight and timestamp.
func FindWeightLog(entries []records.WeightLogEntry, displayed records.WeightLogEntry) (int, error) {
	if displayed.ID != "" {
		return uniqueIndex(len(entries), func(i int) bool {
			return entries[i].ID == displayed.ID
		})
	}

	return uniqueIndex(len(entries), func(i int) bool {
		l := entries[i]
		return l.Weight.Float() == displayed.Weight.Float() &&
			l.Timestamp == displayed.Timestamp &&
			l.Date.Equal(displayed.Date)
	})
}

func uniqueIndex(n int, matches func(i int) bool) (int, error) {
	found := -1
	for i := 0; i < n; i++ {
		if !matches(i) {
			continue
		}
		if found >= 0 {
			return -1, ErrRecordNotFound
		}
		found = i
	}
	if found < 0 {
		return -1, ErrRecordNotFound
	}
	return found, nil
}

// without returns a copy of s with the element at i removed.
func without[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

// replaced returns a copy of s with the element at i set to v.
func replaced[T any](s []T, i int, v T) []T {
	out := make([]T, len(s))
	copy(out, s)
	out[i] = v
	return out
}
