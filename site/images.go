package site

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/headmeta/ogimage"
)

const (
	maxUploadSize = 10 << 20 // 10MB
	uploadsSubdir = "uploads"
)

// imageResponse is an uploaded card image with its public URL.
type imageResponse struct {
	ogimage.Image
	URL string `json:"url"`
}

func (a *App) imageURL(filename string) string {
	return strings.TrimSuffix(a.Config.SEO.BaseURL, "/") + "/public/" + uploadsSubdir + "/" + filename
}

// ensureUniqueFilename appends a counter if filename already exists in the
// uploads directory or the database.
func (a *App) ensureUniqueFilename(img *ogimage.Image) error {
	dir := filepath.Join(a.staticDir, uploadsSubdir)
	base := strings.TrimSuffix(img.Filename, ".jpg")
	candidate := img.Filename
	for counter := 1; ; counter++ {
		if counter > 1 {
			candidate = fmt.Sprintf("%s-%d.jpg", base, counter)
		}
		if _, err := os.Stat(filepath.Join(dir, candidate)); err == nil {
			continue
		}
		exists, err := a.Store.HasImage(candidate)
		if err != nil {
			return err
		}
		if !exists {
			break
		}
	}
	img.Filename = candidate
	return nil
}

func (a *App) handleImageUpload(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "no image file provided"})
	}
	if file.Size > maxUploadSize {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file too large (max 10MB)"})
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	img, data, err := ogimage.Process(src, file.Filename)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid image: " + err.Error()})
	}
	if err := a.ensureUniqueFilename(&img); err != nil {
		return err
	}

	dir := filepath.Join(a.staticDir, uploadsSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create uploads dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, img.Filename), data, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	if err := a.Store.SaveImage(img); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, imageResponse{Image: img, URL: a.imageURL(img.Filename)})
}

func (a *App) handleImageDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}

	filename := filepath.Base(c.Param("filename"))
	if filename == "" || filename == "." || filename == "/" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "filename required"})
	}

	// The file may already be gone; the record is removed either way.
	_ = os.Remove(filepath.Join(a.staticDir, uploadsSubdir, filename))

	if err := a.Store.DeleteImage(filename); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (a *App) handleImageList(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	images, err := a.Store.ListImages()
	if err != nil {
		return err
	}
	out := make([]imageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, imageResponse{Image: img, URL: a.imageURL(img.Filename)})
	}
	return c.JSON(http.StatusOK, out)
}
