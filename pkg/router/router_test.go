package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func get(r *Router, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestExactRoute(t *testing.T) {
	r := New()
	r.GET("/api/v1/runs", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, get(r, "/api/v1/runs").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/api/v1/other").Code)
}

func TestWildcardRoute(t *testing.T) {
	r := New()
	r.GET("/api/v1/runs/*/report", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, get(r, "/api/v1/runs/abc/report").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/api/v1/runs/abc/errors").Code)
}

func TestMethodNotAllowed(t *testing.T) {
	r := New()
	r.POST("/api/v1/runs", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	assert.Equal(t, http.StatusMethodNotAllowed, get(r, "/api/v1/runs").Code)
}

func TestMountedHandlerServesPrefix(t *testing.T) {
	r := New()
	r.Handle("/metrics", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	assert.Equal(t, http.StatusTeapot, get(r, "/metrics").Code)
}

func TestWildcardRegistrationOrderWins(t *testing.T) {
	r := New()
	r.GET("/api/v1/runs/*/report", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.GET("/api/v1/runs/*", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	assert.Equal(t, http.StatusOK, get(r, "/api/v1/runs/abc/report").Code)
	assert.Equal(t, http.StatusAccepted, get(r, "/api/v1/runs/abc").Code)
}

func TestMatchWildcardRoute(t *testing.T) {
	assert.True(t, matchWildcardRoute("/api/v1/runs/abc", "/api/v1/runs/*"))
	assert.True(t, matchWildcardRoute("/api/v1/runs/abc/report", "/api/v1/runs/*/report"))
	assert.False(t, matchWildcardRoute("/api/v1/runs", "/api/v1/runs/*/report"))
	assert.True(t, matchWildcardRoute("/api/v1/runs/a/b/c", "/api/v1/runs/*"))
}
