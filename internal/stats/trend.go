package stats

import (
	"time"
)

// WeekStart is the most recent Sunday at local midnight, relative to now.
func WeekStart(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, now.Location())
}

// WeeklyWeightTrend is the weight change within the current week (latest minus
// oldest entry of the week). With fewer than two entries this week it falls back
// to the latest minus the second latest entry overall. ok is false without data.
func WeeklyWeightTrend(in Input) (trend float64, ok bool) {
	logs := in.weightLogsNewestFirst()
	start := WeekStart(in.Now)

	var inWeek []datedWeightLog
	for _, l := range logs {
		if l.at.Valid && !l.at.Time.Before(start) {
			inWeek = append(inWeek, l)
		}
	}

	if len(inWeek) >= 2 {
		return inWeek[0].Weight.Float() - inWeek[len(inWeek)-1].Weight.Float(), true
	}
	if len(logs) >= 2 {
		return logs[0].Weight.Float() - logs[1].Weight.Float(), true
	}
	return 0, false
}
