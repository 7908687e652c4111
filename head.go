package headmeta

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/headmeta/jsonld"
)

// Head returns a templ.Component that renders m as <head> elements:
// title, meta and link tags, and a JSON-LD script when m carries
// structured data.
func Head(m Metadata) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeHead(&b, m)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeHead(b *strings.Builder, m Metadata) {
	b.WriteString("<title>")
	b.WriteString(templ.EscapeString(m.Title))
	b.WriteString("</title>")
	metaName(b, "description", m.Description)
	if len(m.Keywords) > 0 {
		metaName(b, "keywords", strings.Join(m.Keywords, ","))
	}
	for _, a := range m.Authors {
		metaName(b, "author", a.Name)
	}
	metaName(b, "creator", m.Creator)
	metaName(b, "publisher", m.Publisher)
	metaName(b, "robots", m.Robots.Directives())
	if gb := m.Robots.GoogleBot; gb != nil {
		metaName(b, "googlebot", gb.directives())
	}

	if alt := m.Alternates; alt != nil {
		if alt.Canonical != "" {
			link(b, `rel="canonical"`, alt.Canonical)
		}
		for _, locale := range alt.Locales() {
			link(b, `rel="alternate" hreflang="`+templ.EscapeString(locale)+`"`, alt.Languages[locale])
		}
	}

	og := m.OpenGraph
	metaProperty(b, "og:title", og.Title)
	metaProperty(b, "og:description", og.Description)
	metaProperty(b, "og:url", og.URL)
	metaProperty(b, "og:site_name", og.SiteName)
	metaProperty(b, "og:locale", og.Locale)
	for _, img := range og.Images {
		metaProperty(b, "og:image", img.URL)
		metaProperty(b, "og:image:width", strconv.Itoa(img.Width))
		metaProperty(b, "og:image:height", strconv.Itoa(img.Height))
		metaProperty(b, "og:image:alt", img.Alt)
	}
	metaProperty(b, "og:type", og.Type)

	tw := m.Twitter
	metaName(b, "twitter:card", tw.Card)
	metaName(b, "twitter:creator", tw.Creator)
	metaName(b, "twitter:title", tw.Title)
	metaName(b, "twitter:description", tw.Description)
	for _, img := range tw.Images {
		metaName(b, "twitter:image", img.URL)
		metaName(b, "twitter:image:alt", img.Alt)
	}

	if m.StructuredData != nil {
		b.WriteString(jsonld.ScriptTag(m.StructuredData))
	}
}

func metaName(b *strings.Builder, name, content string) {
	if content == "" {
		return
	}
	b.WriteString(`<meta name="`)
	b.WriteString(name)
	b.WriteString(`" content="`)
	b.WriteString(templ.EscapeString(content))
	b.WriteString(`">`)
}

func metaProperty(b *strings.Builder, property, content string) {
	if content == "" {
		return
	}
	b.WriteString(`<meta property="`)
	b.WriteString(property)
	b.WriteString(`" content="`)
	b.WriteString(templ.EscapeString(content))
	b.WriteString(`">`)
}

func link(b *strings.Builder, attrs, href string) {
	b.WriteString(`<link `)
	b.WriteString(attrs)
	b.WriteString(` href="`)
	b.WriteString(templ.EscapeString(href))
	b.WriteString(`">`)
}

// Directives formats r as a robots meta or X-Robots-Tag value.
func (r Robots) Directives() string {
	return indexDirective(r.Index) + ", " + followDirective(r.Follow)
}

func (g GoogleBot) directives() string {
	return strings.Join([]string{
		indexDirective(g.Index),
		followDirective(g.Follow),
		"max-video-preview:" + strconv.Itoa(g.MaxVideoPreview),
		"max-image-preview:" + g.MaxImagePreview,
		"max-snippet:" + strconv.Itoa(g.MaxSnippet),
	}, ", ")
}

func indexDirective(index bool) string {
	if index {
		return "index"
	}
	return "noindex"
}

func followDirective(follow bool) string {
	if follow {
		return "follow"
	}
	return "nofollow"
}
