package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/headmeta/internal/config"
	"github.com/eringen/headmeta/site"
)

type importFlagValues struct {
	db string
}

var importFlags importFlagValues

var importCmd = &cobra.Command{
	Use:   "import <pages.yaml>",
	Short: "Import page records into the site database",
	Long: `Upsert every record of a pages file into the SQLite store used by
"headmeta serve". Existing records with the same path are replaced.`,
	Example: "  headmeta import --db data/headmeta.db pages.yaml",
	Args:    cobra.ExactArgs(1),
	RunE:    runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importFlags.db, "db", "data/headmeta.db", "SQLite database path")
}

func resetImportFlags() {
	importFlags = importFlagValues{db: "data/headmeta.db"}
}

func runImport(cmd *cobra.Command, args []string) error {
	pages, err := config.LoadPages(args[0])
	if err != nil {
		return err
	}

	store, err := site.NewStore(importFlags.db)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	for _, p := range pages {
		if err := store.SavePage(p); err != nil {
			return fmt.Errorf("save %s: %w", p.Path, err)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d pages into %s\n", len(pages), importFlags.db)
	return nil
}
