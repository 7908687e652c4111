package site

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/yuin/goldmark"

	"github.com/eringen/headmeta"
	"github.com/eringen/headmeta/jsonld"
)

// ViewFuncs holds the templ components the app renders. Users may replace
// them with WithViews to preview pages inside their own layout.
type ViewFuncs struct {
	Page        func(rec PageRecord, meta headmeta.Metadata, data []jsonld.Record) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// DefaultViews returns minimal preview templates.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Page:        pageView,
		NotFound:    func() templ.Component { return messageView("Not Found", "No page is stored at this path.") },
		ServerError: func() templ.Component { return messageView("Server Error", "Something went wrong.") },
	}
}

func pageView(rec PageRecord, meta headmeta.Metadata, data []jsonld.Record) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := "en"
		if meta.OpenGraph.Locale != "" {
			lang = strings.SplitN(strings.ReplaceAll(meta.OpenGraph.Locale, "_", "-"), "-", 2)[0]
		}
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="`+templ.EscapeString(lang)+`"><head><meta charset="utf-8">`); err != nil {
			return err
		}
		if err := headmeta.Head(meta).Render(ctx, w); err != nil {
			return err
		}
		if len(data) > 0 {
			if err := jsonld.Script(data).Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</head><body><main><h1>`+templ.EscapeString(rec.Title)+`</h1><p>`+templ.EscapeString(rec.Description)+`</p>`); err != nil {
			return err
		}
		if rec.Body != "" {
			// goldmark omits raw HTML unless WithUnsafe is set.
			if err := goldmark.Convert([]byte(rec.Body), w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func messageView(title, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!DOCTYPE html><html><head><meta charset="utf-8"><title>`+
			templ.EscapeString(title)+`</title><meta name="robots" content="noindex"></head><body><h1>`+
			templ.EscapeString(title)+`</h1><p>`+templ.EscapeString(message)+`</p></body></html>`)
		return err
	})
}

// renderHTML writes cmp with the given status. robots, when non-empty, is
// also sent as X-Robots-Tag.
func renderHTML(c echo.Context, code int, robots string, cmp templ.Component) error {
	h := c.Response().Header()
	h.Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	if robots != "" {
		h.Set("X-Robots-Tag", robots)
	}
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}
