package site

import (
	"strings"

	"github.com/eringen/headmeta"
	"github.com/eringen/headmeta/jsonld"
	"github.com/eringen/headmeta/readtime"
)

// NormalizePath turns a request or form path into the stored form: a
// leading slash and no trailing slash, except for the root "/".
func NormalizePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	return "/" + p
}

// HeadPage maps a stored record onto headmeta page properties. Empty
// record fields stay unset so the site defaults apply.
func HeadPage(rec PageRecord) headmeta.Page {
	p := headmeta.Page{
		Title:       rec.Title,
		Description: rec.Description,
		ImageAlt:    rec.ImageAlt,
		Keywords:    rec.Keywords,
		Path:        rec.Path,
		NoIndex:     rec.NoIndex,
		Alternates:  rec.Alternates,
		Type:        rec.Type,
	}
	if rec.Image != "" {
		p.Image = headmeta.String(rec.Image)
	}
	if rec.Author != "" {
		p.Author = headmeta.String(rec.Author)
	}
	if rec.Locale != "" {
		p.Locale = headmeta.String(rec.Locale)
	}
	return p
}

// StructuredData returns the JSON-LD records of a page: WebSite for the
// root, an Article for article pages, and a breadcrumb trail for nested
// paths.
func StructuredData(cfg SiteConfig, rec PageRecord, m headmeta.Metadata) []jsonld.Record {
	base := strings.TrimSuffix(cfg.SEO.BaseURL, "/")
	pageURL := base + rec.Path
	if m.Alternates != nil && m.Alternates.Canonical != "" {
		pageURL = m.Alternates.Canonical
	}

	var records []jsonld.Record
	if rec.Path == "/" {
		records = append(records, jsonld.WebSite(cfg.SEO.SiteName, base, cfg.Description))
	}
	if rec.IsArticle() {
		stats := readtime.Analyze(rec.Body)
		in := jsonld.ArticleInput{
			Headline:       rec.Title,
			Description:    rec.Description,
			URL:            pageURL,
			DatePublished:  rec.Date,
			DateModified:   rec.Updated,
			PublisherName:  m.Publisher,
			WordCount:      stats.Words,
			ReadingMinutes: stats.Minutes,
			Keywords:       m.Keywords,
			Section:        rec.Section,
		}
		if len(m.OpenGraph.Images) > 0 {
			in.Image = m.OpenGraph.Images[0].URL
		}
		if len(m.Authors) > 0 {
			in.AuthorName = m.Authors[0].Name
		}
		records = append(records, jsonld.Article(in))
	}
	if crumbs := breadcrumbs(base, rec); len(crumbs) > 1 {
		records = append(records, jsonld.BreadcrumbList(crumbs))
	}
	return records
}

// breadcrumbs lists the root, every intermediate path segment, and the
// page itself.
func breadcrumbs(base string, rec PageRecord) []jsonld.BreadcrumbItem {
	items := []jsonld.BreadcrumbItem{{Name: "Home", Item: base}}
	segments := strings.Split(strings.Trim(rec.Path, "/"), "/")
	if len(segments) == 1 && segments[0] == "" {
		return items
	}
	prefix := ""
	for i, seg := range segments {
		prefix += "/" + seg
		name := seg
		if i == len(segments)-1 {
			name = rec.Title
		}
		items = append(items, jsonld.BreadcrumbItem{Name: name, Item: base + prefix})
	}
	return items
}
