package headmeta

import "strings"

// trimBase strips one trailing slash from a base URL.
func trimBase(base string) string {
	return strings.TrimSuffix(base, "/")
}

// trimPath strips one leading slash from a page path.
func trimPath(path string) string {
	return strings.TrimPrefix(path, "/")
}

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
