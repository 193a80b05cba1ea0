package stats

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Window string

const (
	WindowMonth       Window = "1m"
	WindowThreeMonths Window = "3m"
	WindowSixMonths   Window = "6m"
	WindowYear        Window = "1y"
	WindowAll         Window = "all"
)

var ErrInvalidWindow = errors.New("invalid window")

// ParseWindow parses a look-back window, empty means three months.
func ParseWindow(s string) (Window, error) {
	switch w := Window(strings.ToLower(strings.TrimSpace(s))); w {
	case "":
		return WindowThreeMonths, nil
	case WindowMonth, WindowThreeMonths, WindowSixMonths, WindowYear, WindowAll:
		return w, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidWindow, s)
}

// Start returns the earliest included instant; bounded is false for WindowAll.
func (w Window) Start(now time.Time) (start time.Time, bounded bool) {
	switch w {
	case WindowMonth:
		return now.AddDate(0, -1, 0), true
	case WindowThreeMonths:
		return now.AddDate(0, -3, 0), true
	case WindowSixMonths:
		return now.AddDate(0, -6, 0), true
	case WindowYear:
		return now.AddDate(-1, 0, 0), true
	}
	return time.Time{}, false
}

type VolumePoint struct {
	Date    string  `json:"date"`
	Label   string  `json:"label"`
	Workout string  `json:"workout"`
	Volume  float64 `json:"volume"`
}

// VolumeOverTime sums reps x effective weight of the exercise per workout within
// the window, oldest first. Workouts without a valid date are never included.
func VolumeOverTime(in Input, exercise string, window Window) []VolumePoint {
	loc := in.loc()
	standIn := in.BodyweightStandIn()
	start, bounded := window.Start(in.Now)

	points := []VolumePoint{}
	for _, w := range in.workoutsOldestFirst() {
		if !w.at.Valid || (bounded && w.at.Time.Before(start)) {
			continue
		}
		entry, ok := w.FindExercise(exercise)
		if !ok {
			continue
		}
		points = append(points, VolumePoint{
			Date:    w.at.DayKey(loc),
			Label:   w.at.Label(loc),
			Workout: w.DisplayName(),
			Volume:  exerciseVolume(entry, standIn),
		})
	}
	return points
}
