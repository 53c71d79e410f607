package folio

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// blogMarkdown renders blog content. Raw HTML in the source is allowed;
// only the admin writes posts.
var blogMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// renderMarkdown converts Markdown blog content to HTML for single-post
// reads.
func renderMarkdown(md string) (string, error) {
	var buf bytes.Buffer
	if err := blogMarkdown.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
