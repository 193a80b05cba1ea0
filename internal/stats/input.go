package stats

import (
	"math"
	"sort"
	"time"

	"github.com/2beens/fitlog/internal/records"
)

// DefaultBodyweight stands in for body weight when no weight log exists.
const DefaultBodyweight = 155

// Input is everything a statistics view is derived from. Now carries the time
// zone used for every calendar computation.
type Input struct {
	Workouts   []records.WorkoutRecord
	WeightLogs []records.WeightLogEntry
	Now        time.Time
}

func (in Input) loc() *time.Location {
	if loc := in.Now.Location(); loc != nil {
		return loc
	}
	return time.Local
}

type datedWorkout struct {
	records.WorkoutRecord
	at records.Instant
}

type datedWeightLog struct {
	records.WeightLogEntry
	at records.Instant
}

// workoutsOldestFirst returns a sorted copy, the input is never reordered.
func (in Input) workoutsOldestFirst() []datedWorkout {
	loc := in.loc()
	out := make([]datedWorkout, 0, len(in.Workouts))
	for _, w := range in.Workouts {
		out = append(out, datedWorkout{WorkoutRecord: w, at: records.Normalize(w.Date, loc)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].at.Before(out[j].at)
	})
	return out
}

func (in Input) workoutsNewestFirst() []datedWorkout {
	out := in.workoutsOldestFirst()
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].at.Before(out[i].at)
	})
	return out
}

// weightLogsNewestFirst sorts by date, then by logging timestamp, newest first.
func (in Input) weightLogsNewestFirst() []datedWeightLog {
	loc := in.loc()
	out := make([]datedWeightLog, 0, len(in.WeightLogs))
	for _, l := range in.WeightLogs {
		out = append(out, datedWeightLog{WeightLogEntry: l, at: records.Normalize(l.Date, loc)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].at.Compare(out[j].at); c != 0 {
			return c > 0
		}
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}

func (in Input) weightLogsOldestFirst() []datedWeightLog {
	out := in.weightLogsNewestFirst()
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// BodyweightStandIn is the latest logged body weight, or DefaultBodyweight.
func (in Input) BodyweightStandIn() float64 {
	logs := in.weightLogsNewestFirst()
	if len(logs) == 0 {
		return DefaultBodyweight
	}
	return logs[0].Weight.Float()
}

// EffectiveWeight is the numeric set weight, the stand-in for bodyweight
// markers, and 0 for anything else.
func EffectiveWeight(weight records.Value, standIn float64) float64 {
	if f, ok := weight.FloatOK(); ok {
		return f
	}
	if weight.IsBodyweight() {
		return standIn
	}
	return 0
}

func setVolume(s records.SetEntry, standIn float64) float64 {
	return float64(s.Reps.Int()) * EffectiveWeight(s.Weight, standIn)
}

func exerciseVolume(e records.ExerciseEntry, standIn float64) float64 {
	var total float64
	for _, s := range e.Sets {
		total += setVolume(s, standIn)
	}
	return total
}

// TotalVolume sums reps x effective weight over every set of every workout.
func TotalVolume(workouts []records.WorkoutRecord, bodyweightStandIn float64) float64 {
	var total float64
	for _, w := range workouts {
		for _, e := range w.Exercises {
			total += exerciseVolume(e, bodyweightStandIn)
		}
	}
	return total
}

func round(f float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(f*p) / p
}
