package sitegen

import (
	"bytes"
	"html/template"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdownInstance is initialized once and reused. The converter
// configuration never changes and goldmark is safe to share; per-call
// state lives in Convert.
var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func getMarkdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownInstance
}

// renderMarkdown converts a markdown body to HTML for embedding in a page.
func renderMarkdown(body []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := getMarkdown().Convert(body, &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
