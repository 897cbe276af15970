package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"refapi/internal/entity"
	"refapi/internal/reference"
)

var (
	refType     string
	refAuthors  []string
	refYear     string
	refTitle    string
	refEdition  string
	refPlace    string
	refPub      string
	refEditors  string
	refBook     string
	refJournal  string
	refVolume   string
	refIssue    string
	refPages    string
	refSite     string
	refURL      string
	refAccessed string
	refDegree   string
	refUni      string
	asMarkdown  bool
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Format a single reference and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(refAuthors) == 0 || refYear == "" || refTitle == "" {
			return errors.New("please supply at least --author, --year and --title")
		}
		typ := entity.SourceType(refType)
		if !typ.Valid() {
			return fmt.Errorf("unknown source type %q (run 'cite types' to see the supported ones)", refType)
		}

		ref := entity.Reference{
			Type:       typ,
			Authors:    refAuthors,
			Year:       refYear,
			Title:      refTitle,
			Edition:    refEdition,
			Place:      refPlace,
			Publisher:  refPub,
			Editors:    refEditors,
			BookTitle:  refBook,
			Journal:    refJournal,
			Volume:     refVolume,
			Issue:      refIssue,
			Pages:      refPages,
			Site:       refSite,
			URL:        refURL,
			Accessed:   refAccessed,
			Degree:     refDegree,
			University: refUni,
		}

		out := reference.Format(ref)
		if asMarkdown {
			out = reference.FormatMarkdown(ref)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	f := formatCmd.Flags()
	f.StringVar(&refType, "type", "book", "source type (book, chapter, journal, website, report, thesis)")
	f.StringArrayVar(&refAuthors, "author", nil, "author name, repeat for multiple authors")
	f.StringVar(&refYear, "year", "", "year of publication")
	f.StringVar(&refTitle, "title", "", "title of the work")
	f.StringVar(&refEdition, "edition", "", "edition, leave blank if 1st (e.g. 2nd)")
	f.StringVar(&refPlace, "place", "", "place of publication")
	f.StringVar(&refPub, "publisher", "", "publisher")
	f.StringVar(&refEditors, "editors", "", "editors of the containing book (chapters)")
	f.StringVar(&refBook, "book-title", "", "title of the containing book (chapters)")
	f.StringVar(&refJournal, "journal", "", "journal title (articles)")
	f.StringVar(&refVolume, "volume", "", "journal volume")
	f.StringVar(&refIssue, "issue", "", "journal issue")
	f.StringVar(&refPages, "pages", "", "page range (e.g. 45-60)")
	f.StringVar(&refSite, "site", "", "website or organisation name")
	f.StringVar(&refURL, "url", "", "URL of the page")
	f.StringVar(&refAccessed, "accessed", "", "date accessed (e.g. 14 March 2024)")
	f.StringVar(&refDegree, "degree", "", "degree (theses)")
	f.StringVar(&refUni, "university", "", "awarding university (theses)")
	f.BoolVar(&asMarkdown, "markdown", false, "italicise titles with Markdown asterisks")

	rootCmd.AddCommand(formatCmd)
}
