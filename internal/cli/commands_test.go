package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/headmeta/internal/config"
	"github.com/eringen/headmeta/site"
)

const testSiteYAML = `site_name: Acme
base_url: https://acme.test
default_locale: en_US
`

const testPageYAML = `title: About
description: About Acme
path: /about
`

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRenderCmd_HTML(t *testing.T) {
	resetRenderFlags()
	dir := t.TempDir()
	renderFlags.site = writeTemp(t, dir, "site.yaml", testSiteYAML)
	renderFlags.page = writeTemp(t, dir, "page.yaml", testPageYAML)

	var out bytes.Buffer
	renderCmd.SetOut(&out)
	t.Cleanup(func() { renderCmd.SetOut(nil) })

	require.NoError(t, runRender(renderCmd, nil))

	doc, err := goquery.NewDocumentFromReader(&out)
	require.NoError(t, err)
	assert.Equal(t, "About | Acme", doc.Find("title").Text())
	href, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	assert.Equal(t, "https://acme.test/about", href)
}

func TestRenderCmd_JSON(t *testing.T) {
	resetRenderFlags()
	dir := t.TempDir()
	renderFlags.site = writeTemp(t, dir, "site.yaml", testSiteYAML)
	renderFlags.page = writeTemp(t, dir, "page.yaml", testPageYAML)
	renderFlags.format = "json"

	var out bytes.Buffer
	renderCmd.SetOut(&out)
	t.Cleanup(func() { renderCmd.SetOut(nil) })

	require.NoError(t, runRender(renderCmd, nil))

	var body struct {
		Metadata struct {
			Title     string `json:"title"`
			OpenGraph struct {
				URL string `json:"url"`
			} `json:"openGraph"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &body))
	assert.Equal(t, "About | Acme", body.Metadata.Title)
	assert.Equal(t, "https://acme.test/about", body.Metadata.OpenGraph.URL)
}

func TestRenderCmd_Errors(t *testing.T) {
	resetRenderFlags()
	renderFlags.format = "xml"
	err := runRender(renderCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")

	resetRenderFlags()
	renderFlags.site = filepath.Join(t.TempDir(), "missing.yaml")
	renderFlags.page = "page.yaml"
	err = runRender(renderCmd, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrConfigNotFound))
}

func TestImportCmd_ArgsValidation(t *testing.T) {
	assert.Error(t, importCmd.Args(importCmd, []string{}))
	assert.Error(t, importCmd.Args(importCmd, []string{"a", "b"}))
	assert.NoError(t, importCmd.Args(importCmd, []string{"pages.yaml"}))
}

func TestImportCmd(t *testing.T) {
	resetImportFlags()
	dir := t.TempDir()
	importFlags.db = filepath.Join(dir, "data", "pages.db")
	pages := writeTemp(t, dir, "pages.yaml", `pages:
  - path: /
    title: Home
    description: Welcome
    published: true
  - path: docs/intro
    title: Intro
    description: Getting started
`)

	var out bytes.Buffer
	importCmd.SetOut(&out)
	t.Cleanup(func() { importCmd.SetOut(nil) })

	require.NoError(t, runImport(importCmd, []string{pages}))
	assert.True(t, strings.HasPrefix(out.String(), "imported 2 pages"))

	store, err := site.NewStore(importFlags.db)
	require.NoError(t, err)
	defer store.Close()

	all, err := store.ListAllPages()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "/", all[0].Path)
	assert.Equal(t, "/docs/intro", all[1].Path)
	assert.False(t, all[1].Published)
}

func TestSiteConfig_EnvOverridesFile(t *testing.T) {
	path := writeTemp(t, t.TempDir(), "site.yaml", testSiteYAML+"twitter_handle: \"@acme\"\n")
	t.Setenv("SITE_NAME", "Acme Docs")
	t.Setenv("SITE_URL", "")
	t.Setenv("SITE_DESCRIPTION", "Docs for Acme")
	t.Setenv("ADDR", ":8080")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := siteConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme Docs", cfg.SEO.SiteName)
	assert.Equal(t, "https://acme.test", cfg.SEO.BaseURL, "empty env keeps the file value")
	assert.Equal(t, "@acme", cfg.SEO.TwitterHandle)
	assert.Equal(t, "Docs for Acme", cfg.Description)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.True(t, cfg.CookieSecure)
}

func TestSiteConfig_Errors(t *testing.T) {
	_, err := siteConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, config.ErrConfigNotFound))

	t.Setenv("COOKIE_SECURE", "maybe")
	_, err = siteConfig("")
	assert.ErrorContains(t, err, "COOKIE_SECURE")
}

func TestResolveVersionInfo_LdflagsOverride(t *testing.T) {
	original := version
	defer func() { version = original }()

	version = "1.2.3"
	v, _, _ := resolveVersionInfo()
	assert.Equal(t, "1.2.3", v)
}
