package site

import (
	"crypto/subtle"
	"errors"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"

	"github.com/eringen/headmeta"
)

// plain strips markup from admin input; head values are plain text.
var plain = bluemonday.StrictPolicy()

// PlainText removes HTML tags from s and trims it.
func PlainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(plain.Sanitize(s)))
}

func (a *App) handleAdmin(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"authenticated": IsAdmin(c),
		"csrf":          CsrfToken(c),
	})
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many login attempts, try again later"})
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) != 1 {
		a.loginLimiter.Record(ip)
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid password"})
	}
	if err := setAdminSession(c, true); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"authenticated": true})
}

func handleAdminLogout(c echo.Context) error {
	if err := setAdminSession(c, false); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"authenticated": false})
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
}

func (a *App) handleAdminPages(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	pages, err := a.Store.ListAllPages()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pages)
}

func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	rec, err := pageFromRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := a.Store.SavePage(rec); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return c.JSON(http.StatusOK, a.resolve(rec))
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	if err := a.Store.DeletePage(NormalizePath(c.Param("*"))); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return c.NoContent(http.StatusNoContent)
}

// pageFromRequest reads a page record from a JSON body or a form post and
// normalizes it.
func pageFromRequest(c echo.Context) (PageRecord, error) {
	var rec PageRecord
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		if err := c.Bind(&rec); err != nil {
			return PageRecord{}, errors.New("invalid JSON body")
		}
	} else {
		if err := c.Request().ParseForm(); err != nil {
			return PageRecord{}, err
		}
		rec = PageRecord{
			Path:        c.FormValue("path"),
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
			Image:       c.FormValue("image"),
			ImageAlt:    c.FormValue("image_alt"),
			Keywords:    strings.Split(c.FormValue("keywords"), ","),
			Author:      c.FormValue("author"),
			Locale:      c.FormValue("locale"),
			Type:        c.FormValue("type"),
			Section:     c.FormValue("section"),
			NoIndex:     c.FormValue("noindex") != "",
			Alternates:  parseAlternates(c.FormValue("alternates")),
			Body:        c.FormValue("body"),
			Date:        c.FormValue("date"),
			Updated:     c.FormValue("updated"),
			Published:   c.FormValue("published") != "",
		}
	}
	return normalizeRecord(rec)
}

func normalizeRecord(rec PageRecord) (PageRecord, error) {
	rec.Title = PlainText(rec.Title)
	rec.Description = PlainText(rec.Description)
	rec.ImageAlt = PlainText(rec.ImageAlt)
	rec.Author = PlainText(rec.Author)
	rec.Section = PlainText(rec.Section)
	rec.Image = strings.TrimSpace(rec.Image)
	rec.Locale = strings.TrimSpace(rec.Locale)
	rec.Type = strings.TrimSpace(rec.Type)
	for i := range rec.Keywords {
		rec.Keywords[i] = PlainText(rec.Keywords[i])
	}
	rec.Keywords = FilterEmpty(rec.Keywords)

	if rec.Title == "" {
		return PageRecord{}, errors.New("title is required")
	}
	if strings.TrimSpace(rec.Path) == "" {
		rec.Path = headmeta.Slugify(rec.Title)
	}
	rec.Path = NormalizePath(rec.Path)

	if rec.Date == "" {
		rec.Date = time.Now().Format("2006-01-02")
	}
	for _, d := range []string{rec.Date, rec.Updated} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			if _, err := time.Parse(time.RFC3339, d); err != nil {
				return PageRecord{}, errors.New("invalid date format, use YYYY-MM-DD or RFC 3339")
			}
		}
	}
	return rec, nil
}

// parseAlternates reads "de=/de/about, fr=https://fr.example.com/about".
func parseAlternates(s string) map[string]string {
	var out map[string]string
	for _, pair := range strings.Split(s, ",") {
		locale, target, ok := strings.Cut(pair, "=")
		locale, target = strings.TrimSpace(locale), strings.TrimSpace(target)
		if !ok || locale == "" || target == "" {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[locale] = target
	}
	return out
}
