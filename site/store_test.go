package site

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/eringen/headmeta/ogimage"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore(t *testing.T) {
	s := setupTestStore(t)
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
}

func TestSaveAndGetPage(t *testing.T) {
	s := setupTestStore(t)

	page := PageRecord{
		Path:        "/blog/hello",
		Title:       "Hello",
		Description: "First post",
		Image:       "https://x.com/hello.png",
		ImageAlt:    "Hello card",
		Keywords:    []string{"go", "seo"},
		Author:      "Jane",
		Locale:      "en_US",
		Type:        "article",
		Section:     "Engineering",
		Alternates:  map[string]string{"de": "/de/blog/hello"},
		Body:        "# Hello\n\nWorld.",
		Date:        "2024-01-15",
		Updated:     "2024-02-01",
		Published:   true,
	}
	if err := s.SavePage(page); err != nil {
		t.Fatalf("SavePage failed: %v", err)
	}

	got, err := s.GetPage("/blog/hello")
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}
	if !reflect.DeepEqual(got, page) {
		t.Errorf("GetPage = %+v, want %+v", got, page)
	}
}

func TestSavePageUpdate(t *testing.T) {
	s := setupTestStore(t)

	page := PageRecord{Path: "/about", Title: "Original", Description: "d", Keywords: []string{"a"}, Published: true}
	if err := s.SavePage(page); err != nil {
		t.Fatalf("SavePage failed: %v", err)
	}
	page.Title = "Updated"
	page.Keywords = []string{"b", "c"}
	page.NoIndex = true
	if err := s.SavePage(page); err != nil {
		t.Fatalf("SavePage update failed: %v", err)
	}

	got, err := s.GetPage("/about")
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}
	if got.Title != "Updated" {
		t.Errorf("Title = %q, want %q", got.Title, "Updated")
	}
	if !reflect.DeepEqual(got.Keywords, []string{"b", "c"}) {
		t.Errorf("Keywords = %v, want [b c]", got.Keywords)
	}
	if !got.NoIndex {
		t.Error("NoIndex should be true")
	}
	if got.Alternates != nil {
		t.Errorf("Alternates = %v, want nil", got.Alternates)
	}
}

func TestGetPageNotFound(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.GetPage("/missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetPageUnpublished(t *testing.T) {
	s := setupTestStore(t)

	if err := s.SavePage(PageRecord{Path: "/draft", Title: "Draft", Description: "d"}); err != nil {
		t.Fatalf("SavePage failed: %v", err)
	}

	if _, err := s.GetPage("/draft"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetPage should return ErrNotFound for drafts, got %v", err)
	}
	got, err := s.GetPageAny("/draft")
	if err != nil {
		t.Fatalf("GetPageAny failed: %v", err)
	}
	if got.Published {
		t.Error("Published should be false")
	}
}

func TestListPages(t *testing.T) {
	s := setupTestStore(t)

	pages := []PageRecord{
		{Path: "/b", Title: "B", Description: "d", Published: true},
		{Path: "/", Title: "Home", Description: "d", Published: true},
		{Path: "/a", Title: "A", Description: "d", Published: true},
		{Path: "/draft", Title: "Draft", Description: "d"},
	}
	for _, p := range pages {
		if err := s.SavePage(p); err != nil {
			t.Fatalf("SavePage failed: %v", err)
		}
	}

	got, err := s.ListPages()
	if err != nil {
		t.Fatalf("ListPages failed: %v", err)
	}
	var paths []string
	for _, p := range got {
		paths = append(paths, p.Path)
	}
	if !reflect.DeepEqual(paths, []string{"/", "/a", "/b"}) {
		t.Errorf("ListPages paths = %v, want [/ /a /b]", paths)
	}

	all, err := s.ListAllPages()
	if err != nil {
		t.Fatalf("ListAllPages failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("ListAllPages count = %d, want 4 (including drafts)", len(all))
	}
}

func TestDeletePage(t *testing.T) {
	s := setupTestStore(t)

	if err := s.SavePage(PageRecord{Path: "/gone", Title: "Gone", Description: "d", Published: true}); err != nil {
		t.Fatalf("SavePage failed: %v", err)
	}
	if err := s.DeletePage("/gone"); err != nil {
		t.Fatalf("DeletePage failed: %v", err)
	}
	if _, err := s.GetPage("/gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("page should not exist after delete, got err: %v", err)
	}
	if err := s.DeletePage("/never"); err != nil {
		t.Errorf("DeletePage on nonexistent should not error, got: %v", err)
	}
}

func TestImages(t *testing.T) {
	s := setupTestStore(t)

	older := ogimage.Image{Filename: "a.jpg", OriginalName: "A.png", Width: 1200, Height: 630, Size: 10, UploadedAt: "2024-01-01T00:00:00Z"}
	newer := ogimage.Image{Filename: "b.jpg", OriginalName: "B.png", Width: 1200, Height: 630, Size: 20, UploadedAt: "2024-02-01T00:00:00Z"}
	for _, img := range []ogimage.Image{older, newer} {
		if err := s.SaveImage(img); err != nil {
			t.Fatalf("SaveImage failed: %v", err)
		}
	}

	got, err := s.ListImages()
	if err != nil {
		t.Fatalf("ListImages failed: %v", err)
	}
	if !reflect.DeepEqual(got, []ogimage.Image{newer, older}) {
		t.Errorf("ListImages = %+v, want newest first", got)
	}

	ok, err := s.HasImage("a.jpg")
	if err != nil || !ok {
		t.Errorf("HasImage(a.jpg) = %v, %v; want true", ok, err)
	}
	if err := s.DeleteImage("a.jpg"); err != nil {
		t.Fatalf("DeleteImage failed: %v", err)
	}
	ok, err = s.HasImage("a.jpg")
	if err != nil || ok {
		t.Errorf("HasImage(a.jpg) after delete = %v, %v; want false", ok, err)
	}
}

func TestKeywordsWithCommasRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	page := PageRecord{Path: "/nyc", Title: "NYC", Description: "d", Keywords: []string{"New York, NY", " travel ", ""}, Published: true}
	if err := s.SavePage(page); err != nil {
		t.Fatalf("SavePage failed: %v", err)
	}
	got, err := s.GetPage("/nyc")
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}
	want := []string{"New York, NY", "travel"}
	if !reflect.DeepEqual(got.Keywords, want) {
		t.Errorf("Keywords = %q, want %q", got.Keywords, want)
	}
}

func TestKeywordEncoding(t *testing.T) {
	tests := []struct {
		input []string
		want  string
	}{
		{nil, ""},
		{[]string{" ", ""}, ""},
		{[]string{" go ", "", "seo"}, `["go","seo"]`},
		{[]string{"a, b"}, `["a, b"]`},
	}
	for _, tt := range tests {
		got, err := encodeKeywords(tt.input)
		if err != nil {
			t.Fatalf("encodeKeywords(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("encodeKeywords(%q) = %q, want %q", tt.input, got, tt.want)
		}
		back, err := decodeKeywords(got)
		if err != nil {
			t.Fatalf("decodeKeywords(%q) failed: %v", got, err)
		}
		if want := FilterEmpty(tt.input); !reflect.DeepEqual(back, want) {
			t.Errorf("decodeKeywords(%q) = %q, want %q", got, back, want)
		}
	}

	if _, err := decodeKeywords(",go,"); err == nil {
		t.Error("decodeKeywords should reject non-JSON input")
	}
}
