package stats

import (
	"math"
)

const (
	dashboardRecentWorkouts = 4
	dashboardRecentWeights  = 3
	dashboardChartPoints    = 10
)

type RecentWorkout struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Label     string `json:"label"`
	Exercises int    `json:"exercises"`
}

type RecentWeight struct {
	ID     string  `json:"id,omitempty"`
	Date   string  `json:"date"`
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
}

type LastWorkout struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

type DashboardView struct {
	TotalWorkouts   int             `json:"totalWorkouts"`
	TotalVolume     float64         `json:"totalVolume"`
	TotalWeightLogs int             `json:"totalWeightLogs"`
	WeeklyTrend     *float64        `json:"weeklyTrend,omitempty"`
	CurrentWeight   *float64        `json:"currentWeight,omitempty"`
	LastWorkout     *LastWorkout    `json:"lastWorkout,omitempty"`
	RecentWorkouts  []RecentWorkout `json:"recentWorkouts"`
	RecentWeights   []RecentWeight  `json:"recentWeights"`
	WeightChart     []WeightPoint   `json:"weightChart"`
}

// DashboardBodyweight is the per-set load the dashboard uses for bodyweight sets:
// a quarter of the stand-in body weight, rounded.
func DashboardBodyweight(in Input) float64 {
	return math.Round(in.BodyweightStandIn() * 0.25)
}

func Dashboard(in Input) DashboardView {
	loc := in.loc()

	view := DashboardView{
		TotalWorkouts:   len(in.Workouts),
		TotalVolume:     TotalVolume(in.Workouts, DashboardBodyweight(in)),
		TotalWeightLogs: len(in.WeightLogs),
		RecentWorkouts:  []RecentWorkout{},
		RecentWeights:   []RecentWeight{},
		WeightChart:     []WeightPoint{},
	}

	if trend, ok := WeeklyWeightTrend(in); ok {
		trend = round(trend, 2)
		view.WeeklyTrend = &trend
	}

	workouts := in.workoutsNewestFirst()
	if len(workouts) > 0 {
		view.LastWorkout = &LastWorkout{
			Name: workouts[0].DisplayName(),
			Date: workouts[0].at.Label(loc),
		}
	}
	for i, w := range workouts {
		if i == dashboardRecentWorkouts {
			break
		}
		view.RecentWorkouts = append(view.RecentWorkouts, RecentWorkout{
			ID:        w.ID,
			Name:      w.DisplayName(),
			Date:      w.at.DayKey(loc),
			Label:     w.at.Label(loc),
			Exercises: len(w.Exercises),
		})
	}

	logs := in.weightLogsNewestFirst()
	if len(logs) > 0 {
		current := logs[0].Weight.Float()
		view.CurrentWeight = &current
	}
	for i, l := range logs {
		if i == dashboardRecentWeights {
			break
		}
		view.RecentWeights = append(view.RecentWeights, RecentWeight{
			ID:     l.ID,
			Date:   l.at.DayKey(loc),
			Label:  l.at.Label(loc),
			Weight: l.Weight.Float(),
		})
	}

	chartLen := min(dashboardChartPoints, len(logs))
	for i := chartLen - 1; i >= 0; i-- {
		l := logs[i]
		label := l.at.Label(loc)
		if l.at.Valid {
			label = l.at.Time.In(loc).Format("Jan 2")
		}
		view.WeightChart = append(view.WeightChart, WeightPoint{
			Date:   l.at.DayKey(loc),
			Label:  label,
			Weight: l.Weight.Float(),
		})
	}

	return view
}
