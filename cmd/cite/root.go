package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "cite",
	Short: "Format Leeds Harvard references from the command line",
	Long: `cite formats bibliographic details into Leeds Harvard style reference
strings, the same formatting the refapi web service provides.

Examples:
  cite format --author "Smith, J." --year 2020 --title "Example Title" \
      --place London --publisher Pearson
  cite format --type journal --author "Smith, J." --year 2021 \
      --title "A Study of Styles" --journal "Journal of Citation Research" \
      --volume 12 --issue 3 --pages 101-118
  cite types`,
	SilenceUsage: true,
}
