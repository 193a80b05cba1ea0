package stats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/fitlog/internal/records"
)

type RepMode string

const (
	RepModeAll   RepMode = "all"
	RepModeRange RepMode = "range"
	RepModeExact RepMode = "exact"
)

type RepFilter struct {
	Mode  RepMode
	Min   int
	Max   int
	Exact int
}

var ErrInvalidRepFilter = errors.New("invalid rep filter")

// ParseRepFilter builds a filter from query-like values. An empty mode means "all".
func ParseRepFilter(mode, minReps, maxReps, exact string) (RepFilter, error) {
	atoi := func(name, s string) (int, error) {
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("%w: %s is not a number", ErrInvalidRepFilter, name)
		}
		return i, nil
	}

	switch RepMode(strings.ToLower(mode)) {
	case "", RepModeAll:
		return RepFilter{Mode: RepModeAll}, nil
	case RepModeRange:
		lo, err := atoi("min", minReps)
		if err != nil {
			return RepFilter{}, err
		}
		hi, err := atoi("max", maxReps)
		if err != nil {
			return RepFilter{}, err
		}
		if lo > hi {
			return RepFilter{}, fmt.Errorf("%w: min %d > max %d", ErrInvalidRepFilter, lo, hi)
		}
		return RepFilter{Mode: RepModeRange, Min: lo, Max: hi}, nil
	case RepModeExact:
		reps, err := atoi("reps", exact)
		if err != nil {
			return RepFilter{}, err
		}
		return RepFilter{Mode: RepModeExact, Exact: reps}, nil
	}

	return RepFilter{}, fmt.Errorf("%w: unknown mode %q", ErrInvalidRepFilter, mode)
}

func (f RepFilter) Matches(reps int) bool {
	switch f.Mode {
	case RepModeRange:
		return reps >= f.Min && reps <= f.Max
	case RepModeExact:
		return reps == f.Exact
	}
	return true
}

type ProgressionPoint struct {
	Date    string  `json:"date"`
	Label   string  `json:"label"`
	Workout string  `json:"workout"`
	Set     string  `json:"set"`
	Reps    int     `json:"reps"`
	Weight  float64 `json:"weight"`
}

// Progression lists every set of exercise across all workouts, oldest first,
// keeping sets accepted by filter that resolve to a positive weight. Bodyweight
// sets use the full stand-in body weight.
func Progression(in Input, exercise string, filter RepFilter) []ProgressionPoint {
	loc := in.loc()
	standIn := in.BodyweightStandIn()

	points := []ProgressionPoint{}
	for _, w := range in.workoutsOldestFirst() {
		entry, ok := w.FindExercise(exercise)
		if !ok {
			continue
		}
		for i, s := range entry.Sets {
			reps := s.Reps.Int()
			if !filter.Matches(reps) {
				continue
			}
			weight := EffectiveWeight(s.Weight, standIn)
			if weight <= 0 {
				continue
			}
			points = append(points, ProgressionPoint{
				Date:    w.at.DayKey(loc),
				Label:   w.at.Label(loc),
				Workout: w.DisplayName(),
				Set:     fmt.Sprintf("Set %d", i+1),
				Reps:    reps,
				Weight:  weight,
			})
		}
	}
	return points
}

// ExerciseOption is a distinct logged exercise name with its largest set count.
type ExerciseOption struct {
	Name    string `json:"name"`
	MaxSets int    `json:"maxSets"`
}

// ExerciseOptions lists distinct exercise names (trimmed, case-insensitive dedup,
// first spelling wins), sorted by name.
func ExerciseOptions(workouts []records.WorkoutRecord) []ExerciseOption {
	index := map[string]int{}
	options := []ExerciseOption{}
	for _, w := range workouts {
		for _, e := range w.Exercises {
			name := strings.TrimSpace(e.Name)
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			i, ok := index[key]
			if !ok {
				index[key] = len(options)
				options = append(options, ExerciseOption{Name: name, MaxSets: len(e.Sets)})
				continue
			}
			if len(e.Sets) > options[i].MaxSets {
				options[i].MaxSets = len(e.Sets)
			}
		}
	}

	sortOptions(options)
	return options
}
