package stats

type WeightPoint struct {
	Date   string  `json:"date"`
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
}

type WeightChange struct {
	Value     float64 `json:"value"`
	Direction string  `json:"direction"`
	Timeframe string  `json:"timeframe"`
}

type WeightProgressView struct {
	Window  Window        `json:"window"`
	Points  []WeightPoint `json:"points"`
	Current *float64      `json:"current,omitempty"`
	Change  *WeightChange `json:"change,omitempty"`
}

// WeightProgress lists weight logs within the window, oldest first, with the
// change between the latest one and the nearest earlier log dated at least a
// week before it.
func WeightProgress(in Input, window Window) WeightProgressView {
	loc := in.loc()
	start, bounded := window.Start(in.Now)

	var filtered []datedWeightLog
	for _, l := range in.weightLogsOldestFirst() {
		if !l.at.Valid || (bounded && l.at.Time.Before(start)) {
			continue
		}
		filtered = append(filtered, l)
	}

	view := WeightProgressView{
		Window: window,
		Points: make([]WeightPoint, 0, len(filtered)),
	}
	for _, l := range filtered {
		view.Points = append(view.Points, WeightPoint{
			Date:   l.at.DayKey(loc),
			Label:  l.at.Time.In(loc).Format("Jan 2"),
			Weight: l.Weight.Float(),
		})
	}
	if len(filtered) == 0 {
		return view
	}

	latest := filtered[len(filtered)-1]
	current := latest.Weight.Float()
	view.Current = &current

	oneWeekBefore := latest.at.Time.AddDate(0, 0, -7)
	for i := len(filtered) - 2; i >= 0; i-- {
		if filtered[i].at.Time.After(oneWeekBefore) {
			continue
		}
		change := round(current-filtered[i].Weight.Float(), 1)
		direction := "lost"
		if change > 0 {
			direction = "gained"
		}
		if change < 0 {
			change = -change
		}
		view.Change = &WeightChange{
			Value:     change,
			Direction: direction,
			Timeframe: "past week",
		}
		break
	}

	return view
}
