package site

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string        `xml:"loc"`
	LastMod    string        `xml:"lastmod,omitempty"`
	Alternates []sitemapLink `xml:"xhtml:link"`
}

type sitemapLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// buildSitemap lists the canonical URL of every indexable page, with its
// hreflang alternates.
func (a *App) buildSitemap(pages []PageRecord) sitemapURLSet {
	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTML: "http://www.w3.org/1999/xhtml",
	}
	for _, p := range pages {
		if p.NoIndex {
			continue
		}
		meta := a.Builder.Build(HeadPage(p))
		alt := meta.Alternates
		if alt == nil || alt.Canonical == "" {
			continue
		}
		u := sitemapURL{Loc: alt.Canonical, LastMod: p.Updated}
		if u.LastMod == "" {
			u.LastMod = p.Date
		}
		for _, locale := range alt.Locales() {
			u.Alternates = append(u.Alternates, sitemapLink{
				Rel:      "alternate",
				Hreflang: locale,
				Href:     alt.Languages[locale],
			})
		}
		set.URLs = append(set.URLs, u)
	}
	return set
}

func (a *App) renderSitemap(c echo.Context, pages []PageRecord) error {
	sitemap := a.buildSitemap(pages)
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
