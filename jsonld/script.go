package jsonld

import (
	"context"
	"encoding/json"
	"io"

	"github.com/a-h/templ"
)

const (
	scriptOpen  = `<script type="application/ld+json">`
	scriptClose = `</script>`
)

// Marshal returns the JSON payload of v, a Record or a list of records.
// It returns "{}" if v cannot be encoded.
func Marshal(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ScriptTag wraps the JSON payload of v in an application/ld+json script
// element. encoding/json escapes <, > and & inside strings; no other
// HTML escaping is applied.
func ScriptTag(v any) string {
	return scriptOpen + Marshal(v) + scriptClose
}

// Script returns a templ.Component that renders ScriptTag(v).
func Script(v any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, ScriptTag(v))
		return err
	})
}
