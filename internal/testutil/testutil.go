package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"refapi/internal/entity"
)

// TestReference is a fully populated book reference for tests.
var TestReference = entity.Reference{
	Type:      entity.SourceBook,
	Authors:   []string{"Smith, J."},
	Year:      "2020",
	Title:     "Example Title",
	Place:     "London",
	Publisher: "Pearson",
}

// TestEntry is a bibliography entry built from TestReference.
var TestEntry = entity.BibliographyEntry{
	ID:        "test-entry-id-123",
	Reference: TestReference,
	Formatted: "Smith, J. (2020) Example Title. London: Pearson.",
	Markdown:  "Smith, J. (2020) *Example Title*. London: Pearson.",
	CreatedAt: time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC),
}

// NewRequest creates a new HTTP request for testing. A non-nil body is
// JSON encoded.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse is a decoded HTTP response for assertions.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse decodes a recorded response body as JSON.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
