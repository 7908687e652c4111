package site

// PageRecord is the SEO record of one page, stored in SQLite and rendered
// through headmeta.
type PageRecord struct {
	Path        string            `json:"path" yaml:"path"`
	Title       string            `json:"title" yaml:"title"`
	Description string            `json:"description" yaml:"description"`
	Image       string            `json:"image,omitempty" yaml:"image"`
	ImageAlt    string            `json:"imageAlt,omitempty" yaml:"image_alt"`
	Keywords    []string          `json:"keywords,omitempty" yaml:"keywords"`
	Author      string            `json:"author,omitempty" yaml:"author"`
	Locale      string            `json:"locale,omitempty" yaml:"locale"`
	Type        string            `json:"type,omitempty" yaml:"type"` // "website" or "article"
	Section     string            `json:"section,omitempty" yaml:"section"`
	NoIndex     bool              `json:"noIndex,omitempty" yaml:"no_index"`
	Alternates  map[string]string `json:"alternates,omitempty" yaml:"alternates"`
	Body        string            `json:"body,omitempty" yaml:"body"` // Markdown
	Date        string            `json:"date,omitempty" yaml:"date"`
	Updated     string            `json:"updated,omitempty" yaml:"updated"`
	Published   bool              `json:"published" yaml:"published"`
}

// IsArticle reports whether the page is rendered as an Article.
func (p PageRecord) IsArticle() bool {
	return p.Type == "article"
}
