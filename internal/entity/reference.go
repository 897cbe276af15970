package entity

import "time"

// SourceType identifies the kind of work being referenced. All types are
// formatted in the same Leeds Harvard style, they only differ in which
// fields take part in the output.
type SourceType string

const (
	SourceBook    SourceType = "book"
	SourceChapter SourceType = "chapter"
	SourceJournal SourceType = "journal"
	SourceWebsite SourceType = "website"
	SourceReport  SourceType = "report"
	SourceThesis  SourceType = "thesis"
)

// SourceTypes lists every supported source type in display order.
var SourceTypes = []SourceType{
	SourceBook,
	SourceChapter,
	SourceJournal,
	SourceWebsite,
	SourceReport,
	SourceThesis,
}

// Valid reports whether t is one of the supported source types.
func (t SourceType) Valid() bool {
	switch t {
	case SourceBook, SourceChapter, SourceJournal, SourceWebsite, SourceReport, SourceThesis:
		return true
	}
	return false
}

// Reference holds the bibliographic details for a single work. All fields
// are free text; which ones are meaningful depends on Type. Fields that do
// not apply to the chosen type are ignored by the formatter.
type Reference struct {
	Type    SourceType `json:"type"`
	Authors []string   `json:"authors"`
	Year    string     `json:"year"`
	Title   string     `json:"title"`

	// book, chapter, report
	Edition   string `json:"edition,omitempty"`
	Place     string `json:"place,omitempty"`
	Publisher string `json:"publisher,omitempty"`

	// chapter
	Editors   string `json:"editors,omitempty"`
	BookTitle string `json:"book_title,omitempty"`

	// journal (Pages is shared with chapter)
	Journal string `json:"journal,omitempty"`
	Volume  string `json:"volume,omitempty"`
	Issue   string `json:"issue,omitempty"`
	Pages   string `json:"pages,omitempty"`

	// website
	Site     string `json:"site,omitempty"`
	URL      string `json:"url,omitempty"`
	Accessed string `json:"accessed,omitempty"`

	// thesis
	Degree     string `json:"degree,omitempty"`
	University string `json:"university,omitempty"`
}

// BibliographyEntry is a formatted reference held in the working
// bibliography. Entries are transient: there is no persistence and the
// list is lost when the process exits.
type BibliographyEntry struct {
	ID        string    `json:"id"`
	Reference Reference `json:"reference"`
	Formatted string    `json:"formatted"`
	Markdown  string    `json:"markdown"`
	CreatedAt time.Time `json:"created_at"`
}
