package stats

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/store"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	analyzer *Analyzer
}

func NewHandler(analyzer *Analyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	statsRouter := router.PathPrefix("/stats").Subrouter()
	statsRouter.HandleFunc("/dashboard", handler.HandleDashboard).Methods("GET", "OPTIONS").Name("stats-dashboard")
	statsRouter.HandleFunc("/summary", handler.HandleSummary).Methods("GET", "OPTIONS").Name("stats-summary")
	statsRouter.HandleFunc("/progression", handler.HandleProgression).Methods("GET", "OPTIONS").Name("stats-progression")
	statsRouter.HandleFunc("/volume", handler.HandleVolume).Methods("GET", "OPTIONS").Name("stats-volume")
	statsRouter.HandleFunc("/calendar", handler.HandleCalendar).Methods("GET", "OPTIONS").Name("stats-calendar")
	statsRouter.HandleFunc("/weight", handler.HandleWeight).Methods("GET", "OPTIONS").Name("stats-weight")
	statsRouter.HandleFunc("/exercises", handler.HandleExercises).Methods("GET", "OPTIONS").Name("stats-exercises")
}

// writeResult writes v as JSON, or maps err to a status code.
func writeResult(w http.ResponseWriter, what string, v any, err error) {
	if err != nil {
		if errors.Is(err, store.ErrNotAuthenticated) {
			http.Error(w, "not authenticated", http.StatusUnauthorized)
			return
		}
		log.Errorf("stats %s: %s", what, err)
		http.Error(w, "failed to compute "+what, http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, v, http.StatusOK)
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
	}
	return userID, ok
}

func requireExercise(w http.ResponseWriter, r *http.Request) (string, bool) {
	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		http.Error(w, "error, parameter <exercise> missing", http.StatusBadRequest)
		return "", false
	}
	return exercise, true
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.dashboard")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	view, err := handler.analyzer.Dashboard(ctx, userID)
	writeResult(w, "dashboard", view, err)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.summary")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	summary, err := handler.analyzer.Summary(ctx, userID)
	writeResult(w, "summary", summary, err)
}

func (handler *Handler) HandleProgression(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.progression")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	exercise, ok := requireExercise(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	filter, err := ParseRepFilter(query.Get("mode"), query.Get("min"), query.Get("max"), query.Get("reps"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	points, err := handler.analyzer.Progression(ctx, userID, exercise, filter)
	writeResult(w, "progression", points, err)
}

func (handler *Handler) HandleVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.volume")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	exercise, ok := requireExercise(w, r)
	if !ok {
		return
	}

	window, err := ParseWindow(r.URL.Query().Get("window"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	points, err := handler.analyzer.VolumeOverTime(ctx, userID, exercise, window)
	writeResult(w, "volume", points, err)
}

func (handler *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.calendar")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	exercise, ok := requireExercise(w, r)
	if !ok {
		return
	}

	year := 0
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil || parsed < 1 {
			http.Error(w, "parse form error, parameter <year>", http.StatusBadRequest)
			return
		}
		year = parsed
	}

	view, err := handler.analyzer.Calendar(ctx, userID, exercise, year)
	writeResult(w, "calendar", view, err)
}

func (handler *Handler) HandleWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.weight")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	window, err := ParseWindow(r.URL.Query().Get("window"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := handler.analyzer.WeightProgress(ctx, userID, window)
	writeResult(w, "weight progress", view, err)
}

func (handler *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.exercises")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	options, err := handler.analyzer.Exercises(ctx, userID)
	writeResult(w, "exercises", options, err)
}
