package stats

import (
	"math"
	"sort"
	"strings"
	"time"
)

const week = 7 * 24 * time.Hour

type SummaryMetrics struct {
	TotalWorkouts   int     `json:"totalWorkouts"`
	TotalExercises  int     `json:"totalExercises"`
	TotalSets       int     `json:"totalSets"`
	TotalVolume     float64 `json:"totalVolume"`
	WeeklyFrequency float64 `json:"weeklyFrequency"`
	LastWorkout     string  `json:"lastWorkout"`
}

// Summary aggregates the whole history. Bodyweight sets count with the full
// stand-in body weight.
func Summary(in Input) SummaryMetrics {
	distinct := map[string]bool{}
	totalSets := 0
	for _, w := range in.Workouts {
		for _, e := range w.Exercises {
			if name := strings.ToLower(strings.TrimSpace(e.Name)); name != "" {
				distinct[name] = true
			}
			totalSets += len(e.Sets)
		}
	}

	lastWorkout := "N/A"
	if newest := in.workoutsNewestFirst(); len(newest) > 0 {
		lastWorkout = newest[0].at.Label(in.loc())
	}

	return SummaryMetrics{
		TotalWorkouts:   len(in.Workouts),
		TotalExercises:  len(distinct),
		TotalSets:       totalSets,
		TotalVolume:     TotalVolume(in.Workouts, in.BodyweightStandIn()),
		WeeklyFrequency: WeeklyFrequency(in),
		LastWorkout:     lastWorkout,
	}
}

// WeeklyFrequency is the average number of workouts per week over the last four
// weeks, or over the whole history when it is younger than four weeks.
func WeeklyFrequency(in Input) float64 {
	switch len(in.Workouts) {
	case 0:
		return 0
	case 1:
		return 1
	}

	sorted := in.workoutsOldestFirst()
	var oldest time.Time
	found := false
	for _, w := range sorted {
		if w.at.Valid {
			oldest, found = w.at.Time, true
			break
		}
	}
	if !found {
		return 0
	}

	ageInWeeks := int(math.Ceil(float64(in.Now.Sub(oldest)) / float64(week)))
	if ageInWeeks < 1 {
		ageInWeeks = 1
	}
	weeks := min(4, ageInWeeks)

	recent := 0
	fourWeeksAgo := in.Now.AddDate(0, 0, -28)
	for _, w := range sorted {
		if ageInWeeks < 4 || (w.at.Valid && !w.at.Time.Before(fourWeeksAgo)) {
			recent++
		}
	}

	return round(float64(recent)/float64(weeks), 1)
}

func sortOptions(options []ExerciseOption) {
	sort.SliceStable(options, func(i, j int) bool {
		a, b := strings.ToLower(options[i].Name), strings.ToLower(options[j].Name)
		if a != b {
			return a < b
		}
		return options[i].Name < options[j].Name
	})
}
