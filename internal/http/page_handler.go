package http

import (
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"refapi/internal/entity"
	"refapi/internal/reference"
	"refapi/internal/usecase"
)

//go:embed templates/index.html.tmpl
var templatesFS embed.FS

// PageHandler serves the single-page reference form: the five book fields
// from the original tool, a generate button and a generate-and-add button.
type PageHandler struct {
	tmpl   *template.Template
	repo   usecase.BibliographyRepository
	logger *zap.Logger
}

func NewPageHandler(repo usecase.BibliographyRepository, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		tmpl:   template.Must(template.ParseFS(templatesFS, "templates/index.html.tmpl")),
		repo:   repo,
		logger: logger,
	}
}

type pageData struct {
	Author    string
	Year      string
	Title     string
	Publisher string
	Place     string
	Result    string
	Added     bool
	Error     string
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.render(w, pageData{})
	case http.MethodPost:
		h.submit(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *PageHandler) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, pageData{Error: "The form could not be read."})
		return
	}

	data := pageData{
		Author:    strings.TrimSpace(r.PostFormValue("author")),
		Year:      strings.TrimSpace(r.PostFormValue("year")),
		Title:     strings.TrimSpace(r.PostFormValue("title")),
		Publisher: strings.TrimSpace(r.PostFormValue("publisher")),
		Place:     strings.TrimSpace(r.PostFormValue("place")),
	}

	if data.Author == "" || data.Year == "" || data.Title == "" {
		data.Error = "Please fill in at least Author, Year and Title."
		h.render(w, data)
		return
	}

	ref := entity.Reference{
		Type:      entity.SourceBook,
		Authors:   []string{data.Author},
		Year:      data.Year,
		Title:     data.Title,
		Publisher: data.Publisher,
		Place:     data.Place,
	}
	data.Result = reference.Format(ref)

	if r.PostFormValue("action") == "add" {
		entry := entity.BibliographyEntry{
			ID:        uuid.New().String(),
			Reference: ref,
			Formatted: data.Result,
			Markdown:  reference.FormatMarkdown(ref),
			CreatedAt: time.Now().UTC(),
		}
		if err := h.repo.Add(r.Context(), entry); err != nil {
			h.logger.Error("add to bibliography failed", zap.Error(err))
			data.Error = "The reference could not be added to the bibliography."
			h.render(w, data)
			return
		}
		data.Added = true
	}

	h.render(w, data)
}

func (h *PageHandler) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, data); err != nil {
		h.logger.Error("render page failed", zap.Error(err))
	}
}
