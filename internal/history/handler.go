package history

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/records"
	"github.com/2beens/fitlog/internal/store"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type WorkoutEditRequest struct {
	Displayed records.WorkoutRecord `json:"displayed"`
	Updated   records.WorkoutRecord `json:"updated"`
}

type WeightLogEditRequest struct {
	Displayed records.WeightLogEntry `json:"displayed"`
	Updated   records.WeightLogEntry `json:"updated"`
}

type ValidationResponse struct {
	Errors records.ValidationErrors `json:"errors"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	historyRouter := router.PathPrefix("/history").Subrouter()
	historyRouter.HandleFunc("", handler.HandleGet).Methods("GET", "OPTIONS").Name("history-get")
	historyRouter.HandleFunc("/workouts", handler.HandleLogWorkout).Methods("POST", "OPTIONS").Name("history-log-workout")
	historyRouter.HandleFunc("/workouts", handler.HandleEditWorkout).Methods("PUT").Name("history-edit-workout")
	historyRouter.HandleFunc("/workouts/delete", handler.HandleDeleteWorkout).Methods("POST", "OPTIONS").Name("history-delete-workout")
	historyRouter.HandleFunc("/weights", handler.HandleLogWeight).Methods("POST", "OPTIONS").Name("history-log-weight")
	historyRouter.HandleFunc("/weights", handler.HandleEditWeight).Methods("PUT").Name("history-edit-weight")
	historyRouter.HandleFunc("/weights/delete", handler.HandleDeleteWeight).Methods("POST", "OPTIONS").Name("history-delete-weight")
}

// writeError maps service errors to status codes.
func writeError(w http.ResponseWriter, what string, err error) {
	var validationErrs records.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		pkg.WriteJSON(w, ValidationResponse{Errors: validationErrs}, http.StatusBadRequest)
	case errors.Is(err, ErrRecordNotFound):
		http.Error(w, "record not found", http.StatusNotFound)
	case errors.Is(err, store.ErrNotAuthenticated):
		http.Error(w, "not authenticated", http.StatusUnauthorized)
	default:
		log.Errorf("history %s: %s", what, err)
		http.Error(w, "failed to "+what, http.StatusInternalServerError)
	}
}

// decodeBody reads a JSON request body into v, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Debugf("history, unmarshal json body: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
	}
	return userID, ok
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.get")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	history, err := handler.service.History(ctx, userID)
	if err != nil {
		writeError(w, "get history", err)
		return
	}
	pkg.WriteJSON(w, history, http.StatusOK)
}

func (handler *Handler) HandleLogWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.log-workout")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var workout records.WorkoutRecord
	if !decodeBody(w, r, &workout) {
		return
	}

	stored, err := handler.service.LogWorkout(ctx, userID, workout)
	if err != nil {
		writeError(w, "log workout", err)
		return
	}
	pkg.WriteJSON(w, stored, http.StatusCreated)
}

func (handler *Handler) HandleLogWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.log-weight")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var entry records.WeightLogEntry
	if !decodeBody(w, r, &entry) {
		return
	}

	stored, err := handler.service.LogWeight(ctx, userID, entry)
	if err != nil {
		writeError(w, "log weight", err)
		return
	}
	pkg.WriteJSON(w, stored, http.StatusCreated)
}

func (handler *Handler) HandleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.delete-workout")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var displayed records.WorkoutRecord
	if !decodeBody(w, r, &displayed) {
		return
	}

	if err := handler.service.DeleteWorkout(ctx, userID, displayed); err != nil {
		writeError(w, "delete workout", err)
		return
	}
	pkg.WriteTextResponseOK(w, "deleted")
}

func (handler *Handler) HandleEditWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.edit-workout")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req WorkoutEditRequest
	if !decodeBody(w, r, &req) {
		return
	}

	edited, err := handler.service.EditWorkout(ctx, userID, req.Displayed, req.Updated)
	if err != nil {
		writeError(w, "edit workout", err)
		return
	}
	pkg.WriteJSON(w, edited, http.StatusOK)
}

func (handler *Handler) HandleDeleteWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.delete-weight")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var displayed records.WeightLogEntry
	if !decodeBody(w, r, &displayed) {
		return
	}

	if err := handler.service.DeleteWeightLog(ctx, userID, displayed); err != nil {
		writeError(w, "delete weight log", err)
		return
	}
	pkg.WriteTextResponseOK(w, "deleted")
}

func (handler *Handler) HandleEditWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.edit-weight")
	defer span.End()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req WeightLogEditRequest
	if !decodeBody(w, r, &req) {
		return
	}

	edited, err := handler.service.EditWeightLog(ctx, userID, req.Displayed, req.Updated)
	if err != nil {
		writeError(w, "edit weight log", err)
		return
	}
	pkg.WriteJSON(w, edited, http.StatusOK)
}
