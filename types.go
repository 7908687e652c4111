package headmeta

// Page carries the SEO properties of a single page render.
//
// Pointer fields override the matching Config value when non-nil, even
// when they point at an empty string: SiteName: String("") drops the
// " | Site" suffix regardless of Config.SiteName.
type Page struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`

	SiteName      *string `json:"siteName,omitempty" yaml:"site_name"`
	BaseURL       *string `json:"baseUrl,omitempty" yaml:"base_url"`
	Image         *string `json:"image,omitempty" yaml:"image"`
	DefaultImage  *string `json:"defaultImage,omitempty" yaml:"default_image"` // legacy per-page default
	Locale        *string `json:"locale,omitempty" yaml:"locale"`
	Author        *string `json:"author,omitempty" yaml:"author"`
	TwitterHandle *string `json:"twitterHandle,omitempty" yaml:"twitter_handle"`

	ImageAlt    string            `json:"imageAlt,omitempty" yaml:"image_alt"`
	ImageWidth  int               `json:"imageWidth,omitempty" yaml:"image_width"`
	ImageHeight int               `json:"imageHeight,omitempty" yaml:"image_height"`
	Keywords    []string          `json:"keywords,omitempty" yaml:"keywords"`
	Path        string            `json:"path,omitempty" yaml:"path"`
	NoIndex     bool              `json:"noIndex,omitempty" yaml:"no_index"`
	Alternates  map[string]string `json:"alternates,omitempty" yaml:"alternates"` // locale -> absolute URL or path
	Type        string            `json:"type,omitempty" yaml:"type"`             // OpenGraph type, "website" when empty

	StructuredData any `json:"structuredData,omitempty" yaml:"structured_data"`
}

// Metadata is the resolved head metadata. Field names and nesting follow
// the metadata object consumed by the host framework's head renderer.
type Metadata struct {
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Keywords     []string    `json:"keywords,omitempty"`
	Authors      []Author    `json:"authors,omitempty"`
	Creator      string      `json:"creator,omitempty"`
	Publisher    string      `json:"publisher,omitempty"`
	Robots       Robots      `json:"robots"`
	MetadataBase string      `json:"metadataBase,omitempty"`
	OpenGraph    OpenGraph   `json:"openGraph"`
	Twitter      Twitter     `json:"twitter"`
	Alternates   *Alternates `json:"alternates,omitempty"`

	// StructuredData is passed through from Page for the head renderer.
	StructuredData any `json:"-"`
}

type Author struct {
	Name string `json:"name"`
}

// Robots holds indexing directives. GoogleBot is nil when the page is
// excluded from indexing.
type Robots struct {
	Index     bool       `json:"index"`
	Follow    bool       `json:"follow"`
	GoogleBot *GoogleBot `json:"googleBot,omitempty"`
}

// GoogleBot holds the preview directives. -1 means unlimited.
type GoogleBot struct {
	Index           bool   `json:"index"`
	Follow          bool   `json:"follow"`
	MaxVideoPreview int    `json:"max-video-preview"`
	MaxImagePreview string `json:"max-image-preview"`
	MaxSnippet      int    `json:"max-snippet"`
}

type OpenGraph struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url,omitempty"`
	SiteName    string  `json:"siteName,omitempty"`
	Images      []Image `json:"images,omitempty"`
	Locale      string  `json:"locale,omitempty"`
	Type        string  `json:"type"`
}

type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Alt    string `json:"alt"`
}

// Twitter card types.
const (
	CardSummary           = "summary"
	CardSummaryLargeImage = "summary_large_image"
)

type Twitter struct {
	Card        string  `json:"card"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Images      []Image `json:"images,omitempty"`
	Creator     string  `json:"creator,omitempty"`
}

// Alternates holds the canonical URL and the hreflang map.
type Alternates struct {
	Canonical string            `json:"canonical,omitempty"`
	Languages map[string]string `json:"languages,omitempty"`
}

// String returns a pointer to s, for Page overrides.
func String(s string) *string {
	return &s
}
