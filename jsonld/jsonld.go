// Package jsonld builds Schema.org JSON-LD records and renders them as
// application/ld+json script tags.
package jsonld

import (
	"strconv"
	"strings"
)

// Context is the @context value of every top-level record.
const Context = "https://schema.org"

// Record is one Schema.org entity. Values are JSON-compatible.
type Record map[string]any

// PersonInput describes a Person. Name and URL are required.
type PersonInput struct {
	Name        string
	URL         string
	JobTitle    string
	Description string
	Email       string
	Image       string
	SameAs      []string // social profile links
	KnowsAbout  []string
	Location    string
	WorksFor    string
	WorksForURL string
}

// Person returns a Person record. Optional keys are omitted when empty.
func Person(in PersonInput) Record {
	r := Record{
		"@context": Context,
		"@type":    "Person",
		"name":     in.Name,
		"url":      in.URL,
	}
	setString(r, "jobTitle", in.JobTitle)
	setString(r, "description", in.Description)
	setString(r, "email", in.Email)
	setString(r, "image", in.Image)
	setList(r, "sameAs", in.SameAs)
	setList(r, "knowsAbout", in.KnowsAbout)
	if in.Location != "" {
		r["homeLocation"] = Record{"@type": "Place", "name": in.Location}
	}
	if in.WorksFor != "" {
		org := Record{"@type": "Organization", "name": in.WorksFor}
		setString(org, "url", in.WorksForURL)
		r["worksFor"] = org
	}
	return r
}

// ArticleInput describes an Article. Headline, Description, URL and
// DatePublished are required; dates are passed through unmodified.
type ArticleInput struct {
	Type           string // default "BlogPosting"
	Headline       string
	Description    string
	URL            string
	DatePublished  string
	DateModified   string
	Image          string
	AuthorName     string
	AuthorURL      string
	PublisherName  string
	PublisherLogo  string
	WordCount      int
	ReadingMinutes int
	Keywords       []string
	Section        string
}

// Article returns an Article (BlogPosting by default) record.
func Article(in ArticleInput) Record {
	typ := in.Type
	if typ == "" {
		typ = "BlogPosting"
	}
	r := Record{
		"@context":      Context,
		"@type":         typ,
		"headline":      in.Headline,
		"description":   in.Description,
		"url":           in.URL,
		"datePublished": in.DatePublished,
		"mainEntityOfPage": Record{
			"@type": "WebPage",
			"@id":   in.URL,
		},
	}
	setString(r, "dateModified", in.DateModified)
	setString(r, "image", in.Image)
	if in.AuthorName != "" || in.AuthorURL != "" {
		author := Record{"@type": "Person"}
		setString(author, "name", in.AuthorName)
		setString(author, "url", in.AuthorURL)
		r["author"] = author
	}
	if in.PublisherName != "" || in.PublisherLogo != "" {
		pub := Record{"@type": "Organization"}
		setString(pub, "name", in.PublisherName)
		if in.PublisherLogo != "" {
			pub["logo"] = Record{"@type": "ImageObject", "url": in.PublisherLogo}
		}
		r["publisher"] = pub
	}
	if in.WordCount > 0 {
		r["wordCount"] = in.WordCount
	}
	if in.ReadingMinutes > 0 {
		r["timeRequired"] = Duration(in.ReadingMinutes)
	}
	if len(in.Keywords) > 0 {
		r["keywords"] = strings.Join(in.Keywords, ", ")
	}
	setString(r, "articleSection", in.Section)
	return r
}

// Duration formats minutes as an ISO-8601 duration, e.g. "PT7M".
func Duration(minutes int) string {
	return "PT" + strconv.Itoa(minutes) + "M"
}

// OrganizationInput describes an Organization. Name and URL are required.
type OrganizationInput struct {
	Name        string
	URL         string
	Logo        string
	Description string
	SameAs      []string
	Email       string
	Telephone   string
}

func Organization(in OrganizationInput) Record {
	r := Record{
		"@context": Context,
		"@type":    "Organization",
		"name":     in.Name,
		"url":      in.URL,
	}
	setString(r, "logo", in.Logo)
	setString(r, "description", in.Description)
	setList(r, "sameAs", in.SameAs)
	setString(r, "email", in.Email)
	setString(r, "telephone", in.Telephone)
	return r
}

// WebSite returns a WebSite record for the site root.
func WebSite(name, url, description string) Record {
	r := Record{
		"@context": Context,
		"@type":    "WebSite",
		"name":     name,
		"url":      url,
	}
	setString(r, "description", description)
	return r
}

// BreadcrumbItem maps a name to an absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList returns a BreadcrumbList with 1-based positions.
func BreadcrumbList(items []BreadcrumbItem) Record {
	el := make([]Record, 0, len(items))
	for i, it := range items {
		el = append(el, Record{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return Record{
		"@context":        Context,
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

func setString(r Record, key, v string) {
	if v != "" {
		r[key] = v
	}
}

func setList(r Record, key string, v []string) {
	if len(v) > 0 {
		r[key] = append([]string(nil), v...)
	}
}
