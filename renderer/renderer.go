// Package renderer turns ecotrack state into view models and renders them as
// Markdown, for the terminal, or as sanitized HTML, for export.
//
// User provided text (item names, notes, intel) is always escaped: it can
// never produce markup of its own.
package renderer

import (
	"bytes"
	"fmt"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// HTML converts a Markdown document to a standalone HTML page.
//
// goldmark drops raw HTML by default, and the result is sanitized with a
// user-generated-content policy before being wrapped in the page.
func HTML(title, md string) (string, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(md), &body); err != nil {
		return "", fmt.Errorf("could not convert markdown: %w", err)
	}
	safe := bluemonday.UGCPolicy().SanitizeBytes(body.Bytes())

	var b bytes.Buffer
	fmt.Fprintf(&b, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", html.EscapeString(title))
	b.Write(safe)
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}
