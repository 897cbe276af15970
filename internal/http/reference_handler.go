package http

import (
	"encoding/json"
	"net/http"

	"refapi/internal/entity"
	"refapi/internal/httpx"
	"refapi/internal/reference"
)

// referenceRequest is the JSON body shared by the preview and
// bibliography endpoints. Author, year and title are always required,
// the rest depends on the source type and is passed through as-is.
type referenceRequest struct {
	Type    string   `json:"type" validate:"omitempty,source_type"`
	Authors []string `json:"authors" validate:"required,min=1,dive,required,max=200"`
	Year    string   `json:"year" validate:"required,year"`
	Title   string   `json:"title" validate:"required,max=500"`

	Edition   string `json:"edition" validate:"max=50"`
	Place     string `json:"place" validate:"max=200"`
	Publisher string `json:"publisher" validate:"max=200"`

	Editors   string `json:"editors" validate:"max=500"`
	BookTitle string `json:"book_title" validate:"max=500"`

	Journal string `json:"journal" validate:"max=500"`
	Volume  string `json:"volume" validate:"max=50"`
	Issue   string `json:"issue" validate:"max=50"`
	Pages   string `json:"pages" validate:"max=50"`

	Site     string `json:"site" validate:"max=200"`
	URL      string `json:"url" validate:"omitempty,url,max=2000"`
	Accessed string `json:"accessed" validate:"max=100"`

	Degree     string `json:"degree" validate:"max=200"`
	University string `json:"university" validate:"max=200"`
}

func (req referenceRequest) toEntity() entity.Reference {
	return entity.Reference{
		Type:       entity.SourceType(req.Type),
		Authors:    req.Authors,
		Year:       req.Year,
		Title:      req.Title,
		Edition:    req.Edition,
		Place:      req.Place,
		Publisher:  req.Publisher,
		Editors:    req.Editors,
		BookTitle:  req.BookTitle,
		Journal:    req.Journal,
		Volume:     req.Volume,
		Issue:      req.Issue,
		Pages:      req.Pages,
		Site:       req.Site,
		URL:        req.URL,
		Accessed:   req.Accessed,
		Degree:     req.Degree,
		University: req.University,
	}
}

// decodeReference decodes and validates a reference body, writing the
// error response itself when the body is unusable.
func decodeReference(w http.ResponseWriter, r *http.Request) (entity.Reference, bool) {
	var req referenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", nil)
		return entity.Reference{}, false
	}
	if verrs := ValidateStruct(req); verrs != nil {
		details := make([]httpx.ErrorDetail, 0, len(verrs))
		for _, ve := range verrs {
			details = append(details, httpx.ErrorDetail{Field: ve.Field, Message: ve.Message})
		}
		httpx.JSONError(r, w, http.StatusUnprocessableEntity, "VALIDATION_FAILED", "Reference details are invalid", details)
		return entity.Reference{}, false
	}
	return req.toEntity(), true
}

type ReferenceHandler struct{}

func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

type previewResponse struct {
	Formatted string `json:"formatted"`
	Markdown  string `json:"markdown"`
}

// Preview formats a reference without touching the bibliography.
func (h *ReferenceHandler) Preview(w http.ResponseWriter, r *http.Request) {
	ref, ok := decodeReference(w, r)
	if !ok {
		return
	}

	httpx.JSONSuccess(r, w, previewResponse{
		Formatted: reference.Format(ref),
		Markdown:  reference.FormatMarkdown(ref),
	}, nil)
}
