package site

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/eringen/headmeta/ogimage"
)

// Store wraps a SQLite database holding page SEO records and uploaded
// card images.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the preview handlers read while the admin writes; writers
	// wait on the busy timeout instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS pages (
    path TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    image TEXT NOT NULL DEFAULT '',
    image_alt TEXT NOT NULL DEFAULT '',
    keywords TEXT NOT NULL DEFAULT '',
    author TEXT NOT NULL DEFAULT '',
    locale TEXT NOT NULL DEFAULT '',
    type TEXT NOT NULL DEFAULT '',
    section TEXT NOT NULL DEFAULT '',
    noindex INTEGER NOT NULL DEFAULT 0,
    alternates TEXT NOT NULL DEFAULT '',
    body TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL DEFAULT '',
    updated TEXT NOT NULL DEFAULT '',
    published INTEGER NOT NULL DEFAULT 1
);
CREATE TABLE IF NOT EXISTS images (
    filename TEXT PRIMARY KEY,
    original_name TEXT NOT NULL,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    size INTEGER NOT NULL,
    uploaded_at TEXT NOT NULL
);
`)
	return err
}

const pageColumns = `path, title, description, image, image_alt, keywords, author, locale, type, section, noindex, alternates, body, date, updated, published`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(row rowScanner) (PageRecord, error) {
	var p PageRecord
	var keywords, alternates string
	var noIndex, published int
	err := row.Scan(&p.Path, &p.Title, &p.Description, &p.Image, &p.ImageAlt, &keywords,
		&p.Author, &p.Locale, &p.Type, &p.Section, &noIndex, &alternates, &p.Body,
		&p.Date, &p.Updated, &published)
	if err != nil {
		return PageRecord{}, err
	}
	if p.Keywords, err = decodeKeywords(keywords); err != nil {
		return PageRecord{}, fmt.Errorf("decode keywords of %s: %w", p.Path, err)
	}
	p.NoIndex = noIndex == 1
	p.Published = published == 1
	if alternates != "" {
		if err := json.Unmarshal([]byte(alternates), &p.Alternates); err != nil {
			return PageRecord{}, fmt.Errorf("decode alternates of %s: %w", p.Path, err)
		}
	}
	return p, nil
}

func (s *Store) queryPages(query string, args ...any) ([]PageRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []PageRecord
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// ListPages returns all published pages ordered by path.
func (s *Store) ListPages() ([]PageRecord, error) {
	return s.queryPages(`SELECT ` + pageColumns + ` FROM pages WHERE published = 1 ORDER BY path`)
}

// ListAllPages returns every page (published and drafts) ordered by path.
func (s *Store) ListAllPages() ([]PageRecord, error) {
	return s.queryPages(`SELECT ` + pageColumns + ` FROM pages ORDER BY path`)
}

// GetPage returns a single published page by path.
func (s *Store) GetPage(path string) (PageRecord, error) {
	return scanPage(s.db.QueryRow(`SELECT `+pageColumns+` FROM pages WHERE path = ? AND published = 1`, path))
}

// GetPageAny returns a page by path regardless of published status (for admin).
func (s *Store) GetPageAny(path string) (PageRecord, error) {
	return scanPage(s.db.QueryRow(`SELECT `+pageColumns+` FROM pages WHERE path = ?`, path))
}

// SavePage upserts a page record. Keywords are trimmed; empty ones are dropped.
func (s *Store) SavePage(p PageRecord) error {
	keywords, err := encodeKeywords(p.Keywords)
	if err != nil {
		return err
	}
	alternates := ""
	if len(p.Alternates) > 0 {
		b, err := json.Marshal(p.Alternates)
		if err != nil {
			return fmt.Errorf("encode alternates: %w", err)
		}
		alternates = string(b)
	}
	_, err = s.db.Exec(`INSERT OR REPLACE INTO pages (`+pageColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Path, p.Title, p.Description, p.Image, p.ImageAlt, keywords,
		p.Author, p.Locale, p.Type, p.Section, boolInt(p.NoIndex), alternates, p.Body,
		p.Date, p.Updated, boolInt(p.Published))
	return err
}

// DeletePage removes a page by path.
func (s *Store) DeletePage(path string) error {
	_, err := s.db.Exec(`DELETE FROM pages WHERE path = ?`, path)
	return err
}

// SaveImage records an uploaded card image.
func (s *Store) SaveImage(img ogimage.Image) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO images (filename, original_name, width, height, size, uploaded_at) VALUES (?, ?, ?, ?, ?, ?)`,
		img.Filename, img.OriginalName, img.Width, img.Height, img.Size, img.UploadedAt)
	return err
}

// ListImages returns uploaded images, newest first.
func (s *Store) ListImages() ([]ogimage.Image, error) {
	rows, err := s.db.Query(`SELECT filename, original_name, width, height, size, uploaded_at FROM images ORDER BY uploaded_at DESC, filename`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []ogimage.Image
	for rows.Next() {
		var img ogimage.Image
		if err := rows.Scan(&img.Filename, &img.OriginalName, &img.Width, &img.Height, &img.Size, &img.UploadedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// HasImage reports whether filename is already recorded.
func (s *Store) HasImage(filename string) (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM images WHERE filename = ?`, filename).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteImage removes an image record.
func (s *Store) DeleteImage(filename string) error {
	_, err := s.db.Exec(`DELETE FROM images WHERE filename = ?`, filename)
	return err
}

// encodeKeywords stores keywords as a JSON array so a keyword may itself
// contain commas. No keywords encode as "".
func encodeKeywords(keywords []string) (string, error) {
	kept := FilterEmpty(keywords)
	if len(kept) == 0 {
		return "", nil
	}
	b, err := json.Marshal(kept)
	if err != nil {
		return "", fmt.Errorf("encode keywords: %w", err)
	}
	return string(b), nil
}

func decodeKeywords(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var keywords []string
	if err := json.Unmarshal([]byte(s), &keywords); err != nil {
		return nil, err
	}
	return keywords, nil
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
