package matcher

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitlog/internal/catalog"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"
)

const (
	megabyte           = 1024 * 1024
	suggestCacheExpire = 60 * 60 // seconds
)

type SuggestResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

type ClosestResponse struct {
	Query   string `json:"query"`
	Match   string `json:"match"`
	Catalog bool   `json:"inCatalog"`
}

type BodyweightResponse struct {
	Name       string `json:"name"`
	Bodyweight bool   `json:"bodyweight"`
}

type Handler struct {
	matcher        *Matcher
	catalog        *catalog.Catalog
	cache          *freecache.Cache
	metricsManager *metrics.Manager
}

func NewHandler(c *catalog.Catalog, cacheSizeMB int, metricsManager *metrics.Manager) *Handler {
	if cacheSizeMB <= 0 {
		cacheSizeMB = 10
	}
	return &Handler{
		matcher:        New(c),
		catalog:        c,
		cache:          freecache.NewCache(cacheSizeMB * megabyte),
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercises/suggest", handler.HandleSuggest).Methods("GET", "OPTIONS").Name("exercises-suggest")
	r.HandleFunc("/exercises/closest", handler.HandleClosest).Methods("GET", "OPTIONS").Name("exercises-closest")
	r.HandleFunc("/exercises/bodyweight", handler.HandleIsBodyweight).Methods("GET", "OPTIONS").Name("exercises-bodyweight")
}

func (handler *Handler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.suggest")
	defer span.End()

	query := r.URL.Query().Get("q")
	phrase := strings.Join(tokenize(query), " ")
	span.SetAttributes(attribute.String("query", phrase))

	cacheKey := fmt.Sprintf("suggest::%s", phrase)
	if cached, err := handler.cache.Get([]byte(cacheKey)); err == nil {
		log.Tracef("suggestions for [%s] found in cache", phrase)
		handler.countSuggestion(true)
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	resp := SuggestResponse{
		Query:       phrase,
		Suggestions: handler.matcher.FindMatchingExercises(query),
	}
	respBytes, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal suggestions for [%s]: %s", phrase, err)
		http.Error(w, "error, failed to get suggestions", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set([]byte(cacheKey), respBytes, suggestCacheExpire); err != nil {
		log.Errorf("failed to cache suggestions for [%s]: %s", phrase, err)
	}

	handler.countSuggestion(false)
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (handler *Handler) HandleClosest(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.closest")
	defer span.End()

	query := r.URL.Query().Get("q")
	if strings.TrimSpace(query) == "" {
		http.Error(w, "error, query empty", http.StatusBadRequest)
		return
	}

	match := handler.matcher.ClosestMatch(query)
	inCatalog := false
	for _, n := range handler.catalog.Names() {
		if n == match {
			inCatalog = true
			break
		}
	}

	pkg.WriteJSON(w, ClosestResponse{
		Query:   query,
		Match:   match,
		Catalog: inCatalog,
	}, http.StatusOK)
}

func (handler *Handler) HandleIsBodyweight(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		http.Error(w, "error, name empty", http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, BodyweightResponse{
		Name:       name,
		Bodyweight: handler.catalog.IsBodyweightExercise(name),
	}, http.StatusOK)
}

func (handler *Handler) countSuggestion(cached bool) {
	if handler.metricsManager == nil {
		return
	}
	handler.metricsManager.CounterSuggestions.WithLabelValues(fmt.Sprintf("%t", cached)).Inc()
}
