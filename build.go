package headmeta

import (
	"sort"
	"strings"
)

// Build resolves p against cfg. It never fails and never mutates its
// inputs; equal inputs always produce equal output.
func Build(cfg Config, p Page) Metadata {
	siteName := resolveSiteName(cfg, p)
	baseURL := trimBase(pick(p.BaseURL, cfg.BaseURL))
	author := pick(p.Author, cfg.DefaultAuthor)
	canonical := canonicalURL(baseURL, p.Path)
	title := assembleTitle(p.Title, separator(cfg), siteName)

	m := Metadata{
		Title:        title,
		Description:  p.Description,
		Keywords:     mergeKeywords(cfg.DefaultKeywords, p.Keywords),
		Publisher:    resolvePublisher(cfg, siteName),
		Robots:       robots(p.NoIndex),
		MetadataBase: baseURL,
		OpenGraph: OpenGraph{
			Title:       title,
			Description: p.Description,
			URL:         canonical,
			SiteName:    siteName,
			Locale:      pick(p.Locale, cfg.DefaultLocale),
			Type:        ogType(p.Type),
		},
		Twitter: Twitter{
			Card:        CardSummary,
			Title:       title,
			Description: p.Description,
			Creator:     pick(p.TwitterHandle, cfg.TwitterHandle),
		},
		StructuredData: p.StructuredData,
	}
	if author != "" {
		m.Authors = []Author{{Name: author}}
		m.Creator = author
	}
	if img, ok := resolveImage(cfg, p, siteName); ok {
		m.OpenGraph.Images = []Image{img}
		m.Twitter.Images = []Image{img}
		m.Twitter.Card = CardSummaryLargeImage
	}

	alt := Alternates{Canonical: canonical, Languages: languageAlternates(cfg, p, baseURL)}
	if alt.Canonical != "" || len(alt.Languages) > 0 {
		m.Alternates = &alt
	}
	return m
}

// pick returns the page value when it was provided, else the global one.
func pick(page *string, global string) string {
	if page != nil {
		return *page
	}
	return global
}

func resolveSiteName(cfg Config, p Page) string {
	return pick(p.SiteName, cfg.SiteName)
}

func resolvePublisher(cfg Config, siteName string) string {
	if cfg.DefaultPublisher != "" {
		return cfg.DefaultPublisher
	}
	return siteName
}

func separator(cfg Config) string {
	if cfg.TitleSeparator != "" {
		return cfg.TitleSeparator
	}
	return DefaultTitleSeparator
}

func assembleTitle(title, sep, siteName string) string {
	if siteName == "" {
		return title
	}
	return title + " " + sep + " " + siteName
}

func ogType(t string) string {
	if t == "" {
		return DefaultOGType
	}
	return t
}

// mergeKeywords concatenates global then page keywords, keeping the first
// occurrence of each. It returns nil when both lists are empty.
func mergeKeywords(global, page []string) []string {
	if len(global)+len(page) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(global)+len(page))
	out := make([]string, 0, len(global)+len(page))
	for _, list := range [][]string{global, page} {
		for _, k := range list {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}

// canonicalURL joins base and path. base must already be trimmed.
func canonicalURL(base, path string) string {
	if base == "" {
		return ""
	}
	if p := trimPath(path); p != "" {
		return base + "/" + p
	}
	return base
}

func resolveImage(cfg Config, p Page, siteName string) (Image, bool) {
	url := cfg.DefaultImage
	switch {
	case p.Image != nil:
		url = *p.Image
	case p.DefaultImage != nil:
		url = *p.DefaultImage
	}
	if url == "" {
		return Image{}, false
	}
	img := Image{
		URL:    url,
		Width:  p.ImageWidth,
		Height: p.ImageHeight,
		Alt:    p.ImageAlt,
	}
	if img.Width == 0 {
		img.Width = DefaultImageWidth
	}
	if img.Height == 0 {
		img.Height = DefaultImageHeight
	}
	if img.Alt == "" {
		img.Alt = p.Title
		if siteName != "" {
			img.Alt = p.Title + " - " + siteName
		}
	}
	return img, true
}

// languageAlternates builds the hreflang map. Page alternates take
// precedence over the configured locale prefixes.
func languageAlternates(cfg Config, p Page, base string) map[string]string {
	if len(p.Alternates) > 0 {
		langs := make(map[string]string, len(p.Alternates))
		for locale, v := range p.Alternates {
			langs[locale] = absoluteURL(base, v)
		}
		return langs
	}
	if len(cfg.LocalePrefixes) == 0 || base == "" || p.Path == "" {
		return nil
	}
	path := trimPath(p.Path)
	langs := make(map[string]string, len(cfg.LocalePrefixes))
	for locale, prefix := range cfg.LocalePrefixes {
		u := base + prefix
		if path != "" {
			u += "/" + path
		}
		langs[locale] = u
	}
	return langs
}

func absoluteURL(base, v string) string {
	if strings.HasPrefix(v, "http") || base == "" {
		return v
	}
	if !strings.HasPrefix(v, "/") {
		v = "/" + v
	}
	return base + v
}

func robots(noIndex bool) Robots {
	if noIndex {
		return Robots{}
	}
	return Robots{
		Index:  true,
		Follow: true,
		GoogleBot: &GoogleBot{
			Index:           true,
			Follow:          true,
			MaxVideoPreview: -1,
			MaxImagePreview: "large",
			MaxSnippet:      -1,
		},
	}
}

// Locales returns the keys of the hreflang map in sorted order.
func (a *Alternates) Locales() []string {
	if a == nil {
		return nil
	}
	locales := make([]string, 0, len(a.Languages))
	for l := range a.Languages {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	return locales
}
