package site

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/headmeta"
	"github.com/eringen/headmeta/jsonld"
)

// resolved is a page with its head metadata and JSON-LD records.
type resolved struct {
	Record         PageRecord        `json:"-"`
	Metadata       headmeta.Metadata `json:"metadata"`
	StructuredData []jsonld.Record   `json:"structuredData,omitempty"`
}

func (a *App) resolve(rec PageRecord) resolved {
	meta := a.Builder.Build(HeadPage(rec))
	return resolved{
		Record:         rec,
		Metadata:       meta,
		StructuredData: StructuredData(a.Config, rec, meta),
	}
}

func (a *App) lookup(c echo.Context) (resolved, error) {
	path := NormalizePath(c.Param("*"))
	rec, err := a.Cache.GetPage(path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return resolved{}, echo.NewHTTPError(http.StatusNotFound, "page not found")
		}
		return resolved{}, err
	}
	return a.resolve(rec), nil
}

func (a *App) handlePage(c echo.Context) error {
	r, err := a.lookup(c)
	if err != nil {
		return err
	}
	return renderHTML(c, http.StatusOK, r.Metadata.Robots.Directives(), a.Views.Page(r.Record, r.Metadata, r.StructuredData))
}

func (a *App) handleMetadata(c echo.Context) error {
	r, err := a.lookup(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

// handleRobots generates robots.txt using the configured base URL.
// Page-level exclusion uses the robots meta tag and X-Robots-Tag. /api/
// serves head renderers over CORS, not crawlers.
func (a *App) handleRobots(c echo.Context) error {
	base := strings.TrimSuffix(a.Config.SEO.BaseURL, "/")
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", base)
	return c.String(http.StatusOK, body)
}

func (a *App) handleSitemap(c echo.Context) error {
	pages, err := a.Cache.ListPages()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, pages)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		if wantsJSON(c) {
			_ = c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
			return
		}
		_ = renderHTML(c, http.StatusNotFound, "noindex", a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		if wantsJSON(c) {
			_ = c.JSON(code, map[string]string{"error": http.StatusText(code)})
			return
		}
		_ = renderHTML(c, code, "noindex", a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

func wantsJSON(c echo.Context) bool {
	path := c.Request().URL.Path
	return strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/admin/")
}
