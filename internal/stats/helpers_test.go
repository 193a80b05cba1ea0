package stats

import (
	"time"

	"github.com/2beens/fitlog/internal/records"
)

func set(reps, weight string) records.SetEntry {
	return records.SetEntry{Reps: records.StringValue(reps), Weight: records.StringValue(weight)}
}

func exercise(name string, sets ...records.SetEntry) records.ExerciseEntry {
	return records.ExerciseEntry{Name: name, Sets: sets}
}

func workout(name, date string, exercises ...records.ExerciseEntry) records.WorkoutRecord {
	return records.WorkoutRecord{Name: name, Date: records.DateString(date), Exercises: exercises}
}

func weightLog(date string, weight float64) records.WeightLogEntry {
	return records.WeightLogEntry{Weight: records.NumberValue(weight), Date: records.DateString(date)}
}

func at(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}
