// Package headmeta resolves page-level SEO properties against site-wide
// defaults into the metadata a page head is rendered from: title,
// description, keywords, robots directives, canonical and hreflang links,
// OpenGraph and Twitter Card tags.
//
// Build is a pure function. New binds a Config once for repeated use, and
// Head renders a resolved Metadata as templ output.
package headmeta

// Builder binds a Config once so it can be applied to many pages.
type Builder struct {
	cfg Config
}

// New returns a Builder for cfg. The config is copied; later changes to
// the caller's slices or maps do not affect the Builder.
func New(cfg Config) *Builder {
	return &Builder{cfg: cloneConfig(cfg)}
}

// Config returns a copy of the bound configuration.
func (b *Builder) Config() Config {
	return cloneConfig(b.cfg)
}

func cloneConfig(cfg Config) Config {
	if cfg.DefaultKeywords != nil {
		cfg.DefaultKeywords = append([]string(nil), cfg.DefaultKeywords...)
	}
	if cfg.LocalePrefixes != nil {
		prefixes := make(map[string]string, len(cfg.LocalePrefixes))
		for k, v := range cfg.LocalePrefixes {
			prefixes[k] = v
		}
		cfg.LocalePrefixes = prefixes
	}
	return cfg
}

// Build resolves p against the bound configuration.
func (b *Builder) Build(p Page) Metadata {
	return Build(b.cfg, p)
}
