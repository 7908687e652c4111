// Package site serves headmeta output over HTTP. It keeps page SEO records
// in SQLite, renders preview pages with their resolved head and JSON-LD,
// exposes the resolved metadata as JSON, and generates sitemap.xml and
// robots.txt. A session-protected admin API edits pages and uploads
// OpenGraph card images.
package site

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/headmeta"
)

// App is the central headmeta site. It wires together the store, cache,
// builder, handlers, middleware, and preview templates.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Store   *Store
	Cache   *PageCache
	Builder *headmeta.Builder
	Views   ViewFuncs

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates a new App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Builder:   headmeta.New(cfg.SEO),
		Views:     DefaultViews(),
		staticDir: "public",
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Setup opens the store and registers middleware and routes. Start calls
// it; tests call it directly and drive a.Echo with httptest.
func (a *App) Setup() error {
	if a.Config.AdminPassword == "" {
		return errors.New("headmeta: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return errors.New("headmeta: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("headmeta: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewPageCache(a.Store, a.Config.PageCacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start sets the app up and serves until the server stops.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/api/metadata", a.handleMetadata)
	e.GET("/api/metadata/*", a.handleMetadata)

	admin := e.Group("/admin", a.adminMiddleware()...)
	admin.GET("/", a.handleAdmin)
	admin.POST("/login/", a.handleAdminLogin)
	admin.POST("/logout/", handleAdminLogout)
	admin.GET("/pages/", a.handleAdminPages)
	admin.POST("/pages/", a.handleAdminSave)
	admin.DELETE("/pages/*", a.handleAdminDelete)
	admin.GET("/images/", a.handleImageList)
	admin.POST("/images/", a.handleImageUpload)
	admin.DELETE("/images/:filename/", a.handleImageDelete)

	// Preview pages match everything else.
	e.GET("/*", a.handlePage)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("headmeta: required environment variable %s is not set", key)
	}
	return v
}
