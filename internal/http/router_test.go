package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"refapi/internal/store"
	"refapi/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() http.Handler {
	repo := store.NewBibliographyMem()
	logger := zap.NewNop()
	return NewRouter(
		logger,
		NewPageHandler(repo, logger),
		NewReferenceHandler(),
		NewBibliographyHandler(repo),
		RouterConfig{MaxBodyBytes: 1 << 20},
	)
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "healthz", method: http.MethodGet, path: "/healthz", expectedStatus: http.StatusOK},
		{name: "form page", method: http.MethodGet, path: "/", expectedStatus: http.StatusOK},
		{name: "unknown path", method: http.MethodGet, path: "/nope", expectedStatus: http.StatusNotFound},
		{name: "preview wrong method", method: http.MethodGet, path: "/references/preview", expectedStatus: http.StatusMethodNotAllowed},
		{name: "bibliography wrong method", method: http.MethodPut, path: "/bibliography", expectedStatus: http.StatusMethodNotAllowed},
		{name: "list bibliography", method: http.MethodGet, path: "/bibliography", expectedStatus: http.StatusOK},
		{name: "export", method: http.MethodGet, path: "/bibliography/export", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_RequestIDAndSecurityHeaders(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestRouter_AddListDeleteFlow(t *testing.T) {
	router := newTestRouter()

	// add
	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/bibliography", map[string]interface{}{
		"authors":   []string{"Smith, J."},
		"year":      "2020",
		"title":     "Example Title",
		"place":     "London",
		"publisher": "Pearson",
	}))
	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusCreated, resp.Code)

	data, ok := resp.Body["data"].(map[string]interface{})
	require.True(t, ok)
	id, _ := data["id"].(string)
	require.NotEmpty(t, id)

	// list
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/bibliography", nil))
	resp = testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)
	meta, ok := resp.Body["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), meta["total"])

	// export carries the entry
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/bibliography/export?format=md", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "*Example Title*")

	// delete
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequest(http.MethodDelete, "/bibliography/"+id, nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	// gone
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequest(http.MethodDelete, "/bibliography/"+id, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
