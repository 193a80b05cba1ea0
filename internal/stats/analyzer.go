package stats

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/fitlog/internal/records"
	"github.com/2beens/fitlog/internal/store"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=stats_test

type historyReader interface {
	GetUserHistory(ctx context.Context, userID string) (*records.UserHistory, error)
}

// Analyzer loads a user's history and derives the statistics views from it,
// with now taken from its clock in the configured time zone.
type Analyzer struct {
	repo           historyReader
	loc            *time.Location
	now            func() time.Time
	metricsManager *metrics.Manager
}

func NewAnalyzer(repo historyReader, loc *time.Location, metricsManager *metrics.Manager) *Analyzer {
	if loc == nil {
		loc = time.Local
	}
	return &Analyzer{
		repo:           repo,
		loc:            loc,
		now:            time.Now,
		metricsManager: metricsManager,
	}
}

// WithClock replaces the clock, for reproducible views.
func (a *Analyzer) WithClock(now func() time.Time) *Analyzer {
	a.now = now
	return a
}

func (a *Analyzer) Location() *time.Location {
	return a.loc
}

func (a *Analyzer) input(ctx context.Context, userID string) (Input, error) {
	history, err := a.repo.GetUserHistory(ctx, userID)
	if err != nil {
		// a user without a document has an empty history
		if !errors.Is(err, store.ErrUserNotFound) {
			return Input{}, err
		}
		history = records.NewUserHistory()
	}

	return Input{
		Workouts:   history.Workouts,
		WeightLogs: history.WeightLogs,
		Now:        a.now().In(a.loc),
	}, nil
}

func (a *Analyzer) observe(view string, begin time.Time) {
	if a.metricsManager == nil {
		return
	}
	a.metricsManager.HistStatsDuration.WithLabelValues(view).Observe(time.Since(begin).Seconds())
}

func (a *Analyzer) Dashboard(ctx context.Context, userID string) (_ *DashboardView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.dashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	in, err := a.input(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer a.observe("dashboard", time.Now())

	view := Dashboard(in)
	return &view, nil
}

func (a *Analyzer) Summary(ctx context.Context, userID string) (_ *SummaryMetrics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	in, err := a.input(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer a.observe("summary", time.Now())

	summary := Summary(in)
	return &summary, nil
}

func (a *Analyzer) Progression(ctx context.Context, userID, exercise string, filter RepFilter) (_ []ProgressionPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.progression")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("exercise", exercise),
		attribute.String("rep_mode", string(filter.Mode)),
	)

	in, err := a.input(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer a.observe("progression", time.Now())

	return Progression(in, exercise, filter), nil
}

func (a *Analyzer) VolumeOverTime(ctx context.Context, userID, exercise string, window Window) (_ []VolumePoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.volume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("exercise", exercise),
		attribute.String("window", string(window)),
	)

	in, err := a.input(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer a.observe("volume", time.Now())

	return VolumeOverTime(in, exercise, window), nil
}

func (a *Analyzer) Calendar(ctx context.Context, userID, exercise string, year int) (_ *CalendarView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.calendar")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("exercise", exercise),
		attribute.Int("year", year),
	)

	in, err := a.input(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer a.observe("calendar", time.Now())

	view := Calendar(in, exercise, year)
	return &view, nil
}

func (a *Analyzer) WeightProgress(ctx context.Context, userID string, window Window) (_ *WeightProgressView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.weight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	in, err := a.input(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer a.observe("weight", time.Now())

	view := WeightProgress(in, window)
	return &view, nil
}

func (a *Analyzer) Exercises(ctx context.Context, userID string) (_ []ExerciseOption, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	in, err := a.input(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer a.observe("exercises", time.Now())

	return ExerciseOptions(in.Workouts), nil
}
