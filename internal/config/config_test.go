package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSite_AllFields(t *testing.T) {
	path := writeFile(t, "site.yaml", `site_name: Acme
base_url: https://acme.test/
default_image: https://acme.test/og.png
title_separator: "-"
default_locale: en_US
default_keywords: [acme, docs]
default_author: Acme Team
default_publisher: Acme Inc
twitter_handle: "@acme"
locale_prefixes:
  de_DE: /de
`)

	cfg, err := LoadSite(path)
	require.NoError(t, err)

	assert.Equal(t, "Acme", cfg.SiteName)
	assert.Equal(t, "https://acme.test/", cfg.BaseURL)
	assert.Equal(t, "https://acme.test/og.png", cfg.DefaultImage)
	assert.Equal(t, "-", cfg.TitleSeparator)
	assert.Equal(t, "en_US", cfg.DefaultLocale)
	assert.Equal(t, []string{"acme", "docs"}, cfg.DefaultKeywords)
	assert.Equal(t, "Acme Team", cfg.DefaultAuthor)
	assert.Equal(t, "Acme Inc", cfg.DefaultPublisher)
	assert.Equal(t, "@acme", cfg.TwitterHandle)
	assert.Equal(t, map[string]string{"de_DE": "/de"}, cfg.LocalePrefixes)
}

func TestLoadSite_NotFound(t *testing.T) {
	_, err := LoadSite(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoadSite_InvalidYAML(t *testing.T) {
	path := writeFile(t, "site.yaml", "site_name: [unterminated")
	_, err := LoadSite(path)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoadPage_ExplicitEmptyOverrides(t *testing.T) {
	path := writeFile(t, "page.yaml", `title: About
description: About us
site_name: ""
image: https://acme.test/about.png
image_width: 800
path: /about
no_index: true
alternates:
  de: /de/about
structured_data:
  "@type": AboutPage
`)

	p, err := LoadPage(path)
	require.NoError(t, err)

	assert.Equal(t, "About", p.Title)
	require.NotNil(t, p.SiteName)
	assert.Equal(t, "", *p.SiteName)
	require.NotNil(t, p.Image)
	assert.Equal(t, "https://acme.test/about.png", *p.Image)
	assert.Nil(t, p.Author, "absent keys stay unset")
	assert.Equal(t, 800, p.ImageWidth)
	assert.True(t, p.NoIndex)
	assert.Equal(t, "/de/about", p.Alternates["de"])
	assert.Equal(t, map[string]any{"@type": "AboutPage"}, p.StructuredData)
}

func TestLoadPages(t *testing.T) {
	path := writeFile(t, "pages.yaml", `pages:
  - path: about/
    title: About
    description: About us
    keywords: [acme]
    published: true
  - path: /blog/hello
    title: Hello
    description: First post
    type: article
    date: "2024-01-15"
    body: |
      # Hello
      World.
`)

	pages, err := LoadPages(path)
	require.NoError(t, err)
	require.Len(t, pages, 2)

	assert.Equal(t, "/about", pages[0].Path)
	assert.Equal(t, []string{"acme"}, pages[0].Keywords)
	assert.True(t, pages[0].Published)
	assert.True(t, pages[1].IsArticle())
	assert.Equal(t, "2024-01-15", pages[1].Date)
	assert.Contains(t, pages[1].Body, "World.")
}

func TestLoadPages_RequiresPathAndTitle(t *testing.T) {
	_, err := LoadPages(writeFile(t, "pages.yaml", "pages:\n  - title: No path\n"))
	assert.ErrorContains(t, err, "has no path")

	_, err = LoadPages(writeFile(t, "pages.yaml", "pages:\n  - path: /x\n"))
	assert.ErrorContains(t, err, "has no title")
}
