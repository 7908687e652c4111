// Package readtime estimates word counts and reading time of Markdown bodies.
package readtime

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// WordsPerMinute is the reading speed used by Analyze.
const WordsPerMinute = 200

// Stats describes a Markdown body.
type Stats struct {
	Words   int
	Minutes int
}

var md = goldmark.New()

// Analyze counts the words of the rendered text of src. Code blocks, HTML
// and link destinations are not counted. Minutes rounds up and is zero
// only for an empty body.
//
// Inline markup splits text into several nodes, so the text is collected
// first and separated only at line breaks and block boundaries.
func Analyze(src string) Stats {
	source := []byte(src)
	doc := md.Parser().Parse(text.NewReader(source))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if n.Type() == ast.TypeBlock {
			b.WriteByte(' ')
		}
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			b.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})

	words := len(strings.Fields(b.String()))
	return Stats{Words: words, Minutes: minutes(words)}
}

func minutes(words int) int {
	if words == 0 {
		return 0
	}
	return (words + WordsPerMinute - 1) / WordsPerMinute
}
