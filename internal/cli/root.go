// Package cli implements the headmeta command line.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "headmeta",
	Short: "SEO head metadata and JSON-LD builder",
	Long: `headmeta resolves page SEO properties against site-wide defaults and
renders the result as HTML head tags or as a metadata JSON object.

It can also import page records into a SQLite store and serve them with
live previews, a metadata API, sitemap.xml and robots.txt.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
