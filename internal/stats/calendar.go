package stats

import (
	"sort"
)

// IntensityBucket maps a day's set count to a heatmap level:
// 0 -> 0, 1 -> 1, 2-3 -> 2, 4-5 -> 3, 6+ -> 4.
func IntensityBucket(count int) int {
	switch {
	case count <= 0:
		return 0
	case count == 1:
		return 1
	case count <= 3:
		return 2
	case count <= 5:
		return 3
	}
	return 4
}

type CalendarDay struct {
	Date      string `json:"date"`
	Count     int    `json:"count"`
	Intensity int    `json:"intensity"`
}

type CalendarView struct {
	Exercise       string        `json:"exercise"`
	Year           int           `json:"year"`
	AvailableYears []int         `json:"availableYears"`
	Days           []CalendarDay `json:"days"`
}

// Calendar counts, per local calendar day of the year, the sets logged for the
// exercise (1 for entries without sets). When the requested year has no data the
// most recent year with data is shown; year 0 means the current year.
func Calendar(in Input, exercise string, year int) CalendarView {
	loc := in.loc()
	if year == 0 {
		year = in.Now.Year()
	}

	counts := map[string]int{}
	yearOf := map[string]int{}
	years := map[int]bool{}
	for _, w := range in.workoutsOldestFirst() {
		if !w.at.Valid {
			continue
		}
		entry, ok := w.FindExercise(exercise)
		if !ok {
			continue
		}

		day := w.at.DayKey(loc)
		if entry.Sets == nil {
			counts[day]++
		} else {
			counts[day] += len(entry.Sets)
		}
		y := w.at.Time.In(loc).Year()
		yearOf[day] = y
		years[y] = true
	}

	available := make([]int, 0, len(years))
	for y := range years {
		available = append(available, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(available)))

	if !years[year] && len(available) > 0 {
		year = available[0]
	}

	days := []CalendarDay{}
	for day, count := range counts {
		if yearOf[day] != year {
			continue
		}
		days = append(days, CalendarDay{
			Date:      day,
			Count:     count,
			Intensity: IntensityBucket(count),
		})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	return CalendarView{
		Exercise:       exercise,
		Year:           year,
		AvailableYears: available,
		Days:           days,
	}
}
