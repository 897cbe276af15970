// Package export renders the working bibliography into downloadable
// documents.
package export

import (
	"strings"

	"refapi/internal/entity"
)

// Format selects the download format.
type Format string

const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
)

func (f Format) Valid() bool {
	return f == FormatText || f == FormatMarkdown
}

func (f Format) ContentType() string {
	if f == FormatMarkdown {
		return "text/markdown; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

func (f Format) FileName() string {
	return "leeds_harvard_bibliography." + string(f)
}

// Render produces the document body for the given format. Entries are
// written in the order given; callers pass an already sorted list.
func Render(f Format, entries []entity.BibliographyEntry) string {
	if f == FormatMarkdown {
		return renderMarkdown(entries)
	}
	return renderText(entries)
}

func renderText(entries []entity.BibliographyEntry) string {
	var b strings.Builder
	b.WriteString("Bibliography\n\n")
	for _, e := range entries {
		b.WriteString(e.Formatted)
		b.WriteByte('\n')
	}
	return b.String()
}

func renderMarkdown(entries []entity.BibliographyEntry) string {
	var b strings.Builder
	b.WriteString("# Bibliography\n\n")
	for _, e := range entries {
		b.WriteString("- ")
		b.WriteString(e.Markdown)
		b.WriteByte('\n')
	}
	return b.String()
}
