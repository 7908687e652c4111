package cli

import (
	"fmt"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/eringen/headmeta"
	"github.com/eringen/headmeta/internal/config"
	"github.com/eringen/headmeta/site"
)

type serveFlagValues struct {
	config    string
	staticDir string
}

var serveFlags serveFlagValues

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve page previews, the metadata API and the admin API",
	Long: `Start the headmeta site server.

Settings come from an optional YAML site file (--config), then from the
environment. A .env file in the working directory is loaded first.

Environment:
  SITE_NAME, SITE_URL, SITE_DESCRIPTION, SITE_AUTHOR, SITE_LOCALE,
  TWITTER_HANDLE, ADDR, DATABASE_PATH, COOKIE_SECURE
  ADMIN_PASSWORD, SESSION_SECRET (required)`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveFlags.config, "config", "", "Site defaults file (optional)")
	serveCmd.Flags().StringVar(&serveFlags.staticDir, "static", "public", "Static asset and upload directory")
}

func runServe(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := siteConfig(serveFlags.config)
	if err != nil {
		return err
	}
	cfg.AdminPassword = site.MustEnv("ADMIN_PASSWORD")
	cfg.SessionSecret = site.MustEnv("SESSION_SECRET")

	app := site.New(cfg, site.WithStaticDir(serveFlags.staticDir))
	defer app.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "serving %s on %s\n", app.Config.SEO.BaseURL, app.Config.Addr)
	return app.Start()
}

// siteConfig merges the optional site file with environment overrides.
// Secrets are left to the caller.
func siteConfig(path string) (site.SiteConfig, error) {
	var seo headmeta.Config
	if path != "" {
		loaded, err := config.LoadSite(path)
		if err != nil {
			return site.SiteConfig{}, fmt.Errorf("--config: %w", err)
		}
		seo = loaded
	}

	seo.SiteName = site.EnvOr("SITE_NAME", seo.SiteName)
	seo.BaseURL = site.EnvOr("SITE_URL", seo.BaseURL)
	seo.DefaultAuthor = site.EnvOr("SITE_AUTHOR", seo.DefaultAuthor)
	seo.DefaultLocale = site.EnvOr("SITE_LOCALE", seo.DefaultLocale)
	seo.TwitterHandle = site.EnvOr("TWITTER_HANDLE", seo.TwitterHandle)

	secure, err := strconv.ParseBool(site.EnvOr("COOKIE_SECURE", "false"))
	if err != nil {
		return site.SiteConfig{}, fmt.Errorf("COOKIE_SECURE: %w", err)
	}

	return site.SiteConfig{
		SEO:          seo,
		Description:  site.EnvOr("SITE_DESCRIPTION", ""),
		Addr:         site.EnvOr("ADDR", ""),
		DatabasePath: site.EnvOr("DATABASE_PATH", ""),
		CookieSecure: secure,
	}, nil
}
