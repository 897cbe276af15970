package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"refapi/internal/entity"
)

// typeFields maps each source type to the flags that take part in its
// output, beyond the always-used author, year and title.
var typeFields = map[entity.SourceType]string{
	entity.SourceBook:    "--edition, --place, --publisher",
	entity.SourceChapter: "--editors, --book-title, --place, --publisher, --pages",
	entity.SourceJournal: "--journal, --volume, --issue, --pages",
	entity.SourceWebsite: "--site, --url, --accessed",
	entity.SourceReport:  "--place, --publisher",
	entity.SourceThesis:  "--degree, --university",
}

var typeExamples = map[entity.SourceType]string{
	entity.SourceBook:    "Smith, J. (2020) Example Title. London: Pearson.",
	entity.SourceChapter: "Smith, J. (2019) 'On Citing Well', in Doe, R. (ed.) The Referencing Handbook. Leeds: White Rose Press, pp. 45-60.",
	entity.SourceJournal: "Smith, J. (2021) 'A Study of Styles', Journal of Citation Research, 12(3), pp. 101-118.",
	entity.SourceWebsite: "University of Leeds (2024) Referencing Explained. Available at: https://library.leeds.ac.uk/referencing (Accessed: 14 March 2024).",
	entity.SourceReport:  "Department of Health (2018) Annual Review. London: HMSO.",
	entity.SourceThesis:  "Smith, J. (2017) Citation Graphs. PhD thesis. University of Leeds.",
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the supported source types and their fields",
	Run: func(cmd *cobra.Command, args []string) {
		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Type", "Extra fields", "Example"})
		for _, typ := range entity.SourceTypes {
			t.AppendRow(table.Row{string(typ), typeFields[typ], typeExamples[typ]})
		}
		t.SetStyle(table.StyleLight)
		t.Render()
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
