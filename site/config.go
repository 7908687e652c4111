package site

import (
	"time"

	"github.com/eringen/headmeta"
)

// SiteConfig holds all configuration for a headmeta site.
type SiteConfig struct {
	SEO         headmeta.Config // Site-wide SEO defaults
	Description string          // Site description for the WebSite JSON-LD

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path (default "data/headmeta.db")

	AdminPassword string // Required: admin login password
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	PageCacheTTL time.Duration // Page cache TTL (default 5min)
	CORSOrigins  []string      // Origins allowed to read /api/ (default "*")
}

func (c *SiteConfig) setDefaults() {
	if c.SEO.SiteName == "" {
		c.SEO.SiteName = "Site"
	}
	if c.SEO.BaseURL == "" {
		c.SEO.BaseURL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/headmeta.db"
	}
	if c.PageCacheTTL == 0 {
		c.PageCacheTTL = 5 * time.Minute
	}
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = []string{"*"}
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets and uploaded card
// images (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithViews replaces the default preview templates.
func WithViews(v ViewFuncs) Option {
	return func(a *App) {
		a.Views = v
	}
}
