package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLatencyCollapsesRouteParams(t *testing.T) {
	hist := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "test_endpoint_latency_seconds",
	}, []string{"endpoint"})

	r := chi.NewRouter()
	r.Use(Latency(hist))
	r.Delete("/user/{user_id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for range 2 {
		req := httptest.NewRequest(http.MethodDelete, "/user/"+uuid.New().String(), nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	// Two distinct ids, one series: the label is the route pattern.
	assert.Equal(t, 1, testutil.CollectAndCount(hist))
}

func TestContentTypeJSON(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	post := func(contentType string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		rec := httptest.NewRecorder()
		ContentTypeJSON(next).ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, post("application/json").Code)
	assert.Equal(t, http.StatusOK, post("application/json; charset=utf-8").Code)
	assert.Equal(t, http.StatusOK, post("").Code)
	assert.Equal(t, http.StatusUnsupportedMediaType, post("text/plain").Code)
}
