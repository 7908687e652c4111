// Package config reads headmeta site settings and page records from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eringen/headmeta"
	"github.com/eringen/headmeta/site"
)

// ErrConfigNotFound is returned when a config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// PagesFile is the layout of a pages file accepted by LoadPages.
type PagesFile struct {
	Pages []site.PageRecord `yaml:"pages"`
}

func load(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, ErrConfigNotFound)
		}
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// LoadSite reads the site-wide SEO defaults.
func LoadSite(path string) (headmeta.Config, error) {
	var cfg headmeta.Config
	if err := load(path, &cfg); err != nil {
		return headmeta.Config{}, err
	}
	return cfg, nil
}

// LoadPage reads the properties of a single page. Keys that are present
// with an empty value override the site default with "".
func LoadPage(path string) (headmeta.Page, error) {
	var p headmeta.Page
	if err := load(path, &p); err != nil {
		return headmeta.Page{}, err
	}
	return p, nil
}

// LoadPages reads page records for import. Paths are normalized and
// records without a path are rejected.
func LoadPages(path string) ([]site.PageRecord, error) {
	var f PagesFile
	if err := load(path, &f); err != nil {
		return nil, err
	}
	for i := range f.Pages {
		p := &f.Pages[i]
		if p.Path == "" {
			return nil, fmt.Errorf("%s: page %d (%q) has no path", path, i+1, p.Title)
		}
		if p.Title == "" {
			return nil, fmt.Errorf("%s: page %s has no title", path, p.Path)
		}
		p.Path = site.NormalizePath(p.Path)
	}
	return f.Pages, nil
}
