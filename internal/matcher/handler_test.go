package matcher

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitlog/internal/catalog"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
)

func newTestHandler() (*Handler, *mux.Router, *metrics.Manager) {
	metricsManager := metrics.NewTestManager()
	handler := NewHandler(catalog.Default(), 1, metricsManager)
	router := mux.NewRouter()
	handler.SetupRoutes(router)
	return handler, router, metricsManager
}

func get(router *mux.Router, path string, query url.Values) *httptest.ResponseRecorder {
	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestHandleSuggest_CachesByPhrase(t *testing.T) {
	handler, router, metricsManager := newTestHandler()

	rr := get(router, "/exercises/suggest", url.Values{"q": {"  Bench "}})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp SuggestResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "bench", resp.Query)
	assert.Contains(t, resp.Suggestions, "Barbell Bench Press")
	assert.LessOrEqual(t, len(resp.Suggestions), MaxSuggestions)

	cached, err := handler.cache.Get([]byte("suggest::bench"))
	require.NoError(t, err)
	assert.JSONEq(t, rr.Body.String(), string(cached))
	assert.Equal(t, 1.0, testutil.ToFloat64(metricsManager.CounterSuggestions.WithLabelValues("false")))
	assert.Zero(t, testutil.ToFloat64(metricsManager.CounterSuggestions.WithLabelValues("true")))

	// same phrase, different spelling: served from the cache
	again := get(router, "/exercises/suggest", url.Values{"q": {"BENCH"}})
	require.Equal(t, http.StatusOK, again.Code)
	assert.Equal(t, rr.Body.String(), again.Body.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(metricsManager.CounterSuggestions.WithLabelValues("true")))
}

func TestHandleSuggest_EmptyQuery(t *testing.T) {
	_, router, _ := newTestHandler()

	for _, q := range []string{"", "   "} {
		rr := get(router, "/exercises/suggest", url.Values{"q": {q}})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"query":"","suggestions":[]}`, rr.Body.String())
	}
}

func TestHandleClosest(t *testing.T) {
	_, router, _ := newTestHandler()

	testCases := []struct {
		name      string
		query     string
		match     string
		inCatalog bool
	}{
		{name: "exact, any case", query: "barbell squat", match: "Barbell Squat", inCatalog: true},
		{name: "unknown name echoed", query: "Zercher Walk", match: "Zercher Walk", inCatalog: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := get(router, "/exercises/closest", url.Values{"q": {tc.query}})
			require.Equal(t, http.StatusOK, rr.Code)

			var resp ClosestResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tc.query, resp.Query)
			assert.Equal(t, tc.match, resp.Match)
			assert.Equal(t, tc.inCatalog, resp.Catalog)
		})
	}
}

func TestHandleIsBodyweight(t *testing.T) {
	_, router, _ := newTestHandler()

	rr := get(router, "/exercises/bodyweight", url.Values{"name": {"pull-up (bodyweight)"}})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"name":"pull-up (bodyweight)","bodyweight":true}`, rr.Body.String())

	rr = get(router, "/exercises/bodyweight", url.Values{"name": {"Barbell Squat"}})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"name":"Barbell Squat","bodyweight":false}`, rr.Body.String())
}

func TestHandler_EmptyNames(t *testing.T) {
	_, router, _ := newTestHandler()

	rr := get(router, "/exercises/closest", url.Values{"q": {"  "}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "error, query empty\n", rr.Body.String())

	rr = get(router, "/exercises/bodyweight", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "error, name empty\n", rr.Body.String())
}
