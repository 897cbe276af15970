// Package reference builds Leeds Harvard style reference strings from
// bibliographic details. Formatting is a pure function: the same input
// always produces the same output and nothing is mutated.
package reference

import (
	"strings"

	"refapi/internal/entity"
)

// Format returns the plain-text rendering of a reference, e.g.
//
//	Smith, J. (2020) Example Title. London: Pearson.
//
// Empty fields are omitted together with their punctuation: an empty year
// never produces "()", and a place without a publisher is dropped.
func Format(ref entity.Reference) string {
	return format(ref, func(s string) string { return s })
}

// FormatMarkdown is Format with the title of standalone works (books,
// journals, websites, reports, theses) wrapped in *asterisks* so that
// Markdown renderers italicise it, matching how references appear in a
// finished reference list.
func FormatMarkdown(ref entity.Reference) string {
	return format(ref, func(s string) string { return "*" + s + "*" })
}

func format(ref entity.Reference, emph func(string) string) string {
	typ := ref.Type
	if typ == "" {
		// the minimal five-field form maps straight onto a book reference
		typ = entity.SourceBook
	}

	segs := headSegments(JoinAuthors(ref.Authors), ref.Year)

	switch typ {
	case entity.SourceBook:
		segs = appendEmphTitle(segs, ref.Title, emph)
		if e := editionSegment(ref.Edition); e != "" {
			segs = append(segs, e)
		}
		segs = appendImprint(segs, ref.Place, ref.Publisher, "")
	case entity.SourceChapter:
		segs = appendChapter(segs, ref, emph)
	case entity.SourceJournal:
		segs = appendJournal(segs, ref, emph)
	case entity.SourceWebsite:
		segs = appendEmphTitle(segs, ref.Title, emph)
		if ref.Site != "" {
			segs = append(segs, ref.Site+".")
		}
		if ref.URL != "" {
			s := "Available at: " + ref.URL
			if ref.Accessed != "" {
				s += " (Accessed: " + ref.Accessed + ")"
			}
			segs = append(segs, s+".")
		}
	case entity.SourceReport:
		segs = appendEmphTitle(segs, ref.Title, emph)
		segs = appendImprint(segs, ref.Place, ref.Publisher, "")
	case entity.SourceThesis:
		segs = appendEmphTitle(segs, ref.Title, emph)
		if ref.Degree != "" {
			segs = append(segs, ref.Degree+".")
		}
		if ref.University != "" {
			segs = append(segs, ref.University+".")
		}
	default:
		return ""
	}

	return strings.Join(segs, " ")
}

// headSegments builds the "Author (Year)" opening, dropping whichever part
// is empty.
func headSegments(author, year string) []string {
	var segs []string
	if author != "" {
		segs = append(segs, author)
	}
	if year != "" {
		segs = append(segs, "("+year+")")
	}
	return segs
}

func appendEmphTitle(segs []string, title string, emph func(string) string) []string {
	if title == "" {
		return segs
	}
	return append(segs, emph(title)+".")
}

// appendImprint renders the trailing "Place: Publisher." segment. A place
// with no publisher is dropped, which is how the original tool behaves.
// An optional page range is attached before the closing full stop.
func appendImprint(segs []string, place, publisher, pages string) []string {
	var s string
	switch {
	case place != "" && publisher != "":
		s = place + ": " + publisher
	case publisher != "":
		s = publisher
	case pages != "":
		return append(segs, "pp. "+pages+".")
	default:
		return segs
	}
	if pages != "" {
		s += ", pp. " + pages
	}
	return append(segs, s+".")
}

func appendChapter(segs []string, ref entity.Reference, emph func(string) string) []string {
	if ref.Title != "" {
		segs = append(segs, "'"+ref.Title+"',")
	}
	if ref.Editors != "" || ref.BookTitle != "" {
		in := "in"
		if ref.Editors != "" {
			in += " " + ref.Editors + " (ed.)"
		}
		if ref.BookTitle != "" {
			in += " " + emph(ref.BookTitle)
		}
		segs = append(segs, in+".")
	}
	return appendImprint(segs, ref.Place, ref.Publisher, ref.Pages)
}

func appendJournal(segs []string, ref entity.Reference, emph func(string) string) []string {
	var items []string
	if ref.Journal != "" {
		items = append(items, emph(ref.Journal))
	}
	if v := volumeIssue(ref.Volume, ref.Issue); v != "" {
		items = append(items, v)
	}
	if ref.Pages != "" {
		items = append(items, "pp. "+ref.Pages)
	}

	if ref.Title != "" {
		if len(items) == 0 {
			return append(segs, "'"+ref.Title+"'.")
		}
		segs = append(segs, "'"+ref.Title+"',")
	}
	if len(items) > 0 {
		segs = append(segs, strings.Join(items, ", ")+".")
	}
	return segs
}

func volumeIssue(volume, issue string) string {
	switch {
	case volume != "" && issue != "":
		return volume + "(" + issue + ")"
	case volume != "":
		return volume
	case issue != "":
		return "(" + issue + ")"
	}
	return ""
}

// editionSegment turns "2nd" into "2nd ed.", leaving input that already
// carries an edition marker alone.
func editionSegment(edition string) string {
	e := strings.TrimSpace(edition)
	if e == "" {
		return ""
	}
	bare := strings.TrimSuffix(e, ".")
	lower := strings.ToLower(bare)
	if strings.HasSuffix(lower, "ed") || strings.HasSuffix(lower, "edn") || strings.HasSuffix(lower, "edition") {
		return bare + "."
	}
	return e + " ed."
}

// JoinAuthors joins author names the way a reference list reads them:
// "Smith, J.", "Smith, J. and Doe, R.", "Smith, J., Doe, R. and Lee, K.".
// Blank entries are skipped.
func JoinAuthors(authors []string) string {
	var names []string
	for _, a := range authors {
		if t := strings.TrimSpace(a); t != "" {
			names = append(names, t)
		}
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

// SortKey produces the value a bibliography is alphabetised on: author
// names first, then year, then title. Collation handles case folding, the
// key only fixes the field order.
func SortKey(ref entity.Reference) string {
	parts := make([]string, 0, 3)
	if a := JoinAuthors(ref.Authors); a != "" {
		parts = append(parts, a)
	}
	if ref.Year != "" {
		parts = append(parts, ref.Year)
	}
	if ref.Title != "" {
		parts = append(parts, ref.Title)
	}
	return strings.Join(parts, " ")
}
