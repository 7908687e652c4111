package headmeta

// Defaults applied when neither the page nor the config provide a value.
const (
	DefaultTitleSeparator = "|"
	DefaultImageWidth     = 1200
	DefaultImageHeight    = 630
	DefaultOGType         = "website"
)

// Config holds site-wide SEO defaults. Every field is optional; an empty
// string or nil collection means "not configured".
type Config struct {
	SiteName         string            `json:"siteName,omitempty" yaml:"site_name"`
	BaseURL          string            `json:"baseUrl,omitempty" yaml:"base_url"`
	DefaultImage     string            `json:"defaultImage,omitempty" yaml:"default_image"`
	TitleSeparator   string            `json:"titleSeparator,omitempty" yaml:"title_separator"` // default "|"
	DefaultLocale    string            `json:"defaultLocale,omitempty" yaml:"default_locale"`
	DefaultKeywords  []string          `json:"defaultKeywords,omitempty" yaml:"default_keywords"`
	DefaultAuthor    string            `json:"defaultAuthor,omitempty" yaml:"default_author"`
	DefaultPublisher string            `json:"defaultPublisher,omitempty" yaml:"default_publisher"` // falls back to SiteName
	TwitterHandle    string            `json:"twitterHandle,omitempty" yaml:"twitter_handle"`
	LocalePrefixes   map[string]string `json:"localePrefixes,omitempty" yaml:"locale_prefixes"` // locale -> path prefix, e.g. "de" -> "/de"
}
