package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"refapi/internal/entity"
	"refapi/internal/export"
	"refapi/internal/httpx"
	"refapi/internal/reference"
	"refapi/internal/usecase"
)

type BibliographyHandler struct {
	repo usecase.BibliographyRepository
}

func NewBibliographyHandler(repo usecase.BibliographyRepository) *BibliographyHandler {
	return &BibliographyHandler{repo: repo}
}

// Add formats a reference and appends it to the working bibliography.
func (h *BibliographyHandler) Add(w http.ResponseWriter, r *http.Request) {
	ref, ok := decodeReference(w, r)
	if !ok {
		return
	}

	entry := entity.BibliographyEntry{
		ID:        uuid.New().String(),
		Reference: ref,
		Formatted: reference.Format(ref),
		Markdown:  reference.FormatMarkdown(ref),
		CreatedAt: time.Now().UTC(),
	}
	if err := h.repo.Add(r.Context(), entry); err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not store the reference", nil)
		return
	}

	httpx.JSONSuccessCreated(r, w, entry)
}

// List returns the bibliography sorted A-Z.
func (h *BibliographyHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.repo.List(r.Context())
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not load the bibliography", nil)
		return
	}
	if entries == nil {
		entries = []entity.BibliographyEntry{}
	}

	httpx.JSONSuccess(r, w, entries, map[string]interface{}{"total": len(entries)})
}

// DeleteByID removes a single entry, /bibliography/{id}.
func (h *BibliographyHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	const prefix = "/bibliography/"
	id := strings.TrimPrefix(r.URL.Path, prefix)
	if id == "" || strings.Contains(id, "/") {
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Bibliography entry not found", nil)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Bibliography entry not found", nil)
		default:
			httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not delete the entry", nil)
		}
		return
	}

	httpx.JSONSuccessNoContent(w)
}

// Clear empties the working bibliography.
func (h *BibliographyHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Clear(r.Context()); err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not clear the bibliography", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// Export downloads the sorted bibliography as a text or Markdown file,
// /bibliography/export?format=txt|md.
func (h *BibliographyHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := export.Format(r.URL.Query().Get("format"))
	if format == "" {
		format = export.FormatText
	}
	if !format.Valid() {
		httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_FORMAT", "format must be txt or md", nil)
		return
	}

	entries, err := h.repo.List(r.Context())
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not load the bibliography", nil)
		return
	}

	body := export.Render(format, entries)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+format.FileName()+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
