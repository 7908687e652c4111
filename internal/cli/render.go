package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eringen/headmeta"
	"github.com/eringen/headmeta/internal/config"
)

type renderFlagValues struct {
	site   string
	page   string
	format string
}

var renderFlags renderFlagValues

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the head metadata of one page",
	Long: `Resolve a page file against a site file and print the result.

  --format html   <title>, <meta>, <link> and JSON-LD tags (default)
  --format json   the resolved metadata object`,
	Example: "  headmeta render --site site.yaml --page about.yaml --format json",
	Args:    cobra.NoArgs,
	RunE:    runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&renderFlags.site, "site", "site.yaml", "Site defaults file")
	renderCmd.Flags().StringVar(&renderFlags.page, "page", "", "Page properties file (required)")
	renderCmd.Flags().StringVar(&renderFlags.format, "format", "html", "Output format: html|json")
	_ = renderCmd.MarkFlagRequired("page")
}

func resetRenderFlags() {
	renderFlags = renderFlagValues{site: "site.yaml", format: "html"}
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderFlags.format != "html" && renderFlags.format != "json" {
		return fmt.Errorf("unknown format %q (use html or json)", renderFlags.format)
	}
	cfg, err := config.LoadSite(renderFlags.site)
	if err != nil {
		return fmt.Errorf("load site: %w", err)
	}
	page, err := config.LoadPage(renderFlags.page)
	if err != nil {
		return fmt.Errorf("load page: %w", err)
	}
	return writeMetadata(cmd, cmd.OutOrStdout(), headmeta.Build(cfg, page), renderFlags.format)
}

func writeMetadata(cmd *cobra.Command, w io.Writer, m headmeta.Metadata, format string) error {
	if format == "json" {
		out := struct {
			Metadata       headmeta.Metadata `json:"metadata"`
			StructuredData any               `json:"structuredData,omitempty"`
		}{m, m.StructuredData}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := headmeta.Head(m).Render(ctx, w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
