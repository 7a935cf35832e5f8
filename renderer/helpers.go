package renderer

import (
	"bytes"
	"io"
	"strings"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// markdownEscaper backslash-escapes every character that could turn user
// text into markup: emphasis, links, code, tables, headings and raw HTML.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`(`, `\(`,
	`)`, `\)`,
	`<`, `\<`,
	`>`, `\>`,
	`|`, `\|`,
	`#`, `\#`,
	`~`, `\~`,
	`!`, `\!`,
	`&`, `\&`,
)

// Escape makes user provided text safe to embed in Markdown.
func Escape(s string) string {
	return markdownEscaper.Replace(s)
}

// Cell escapes s for a table cell, which must fit on a single line.
func Cell(s string) string {
	return Escape(strings.Join(strings.Fields(s), " "))
}

// Paragraphs escapes a multi-line text, keeping its line breaks.
func Paragraphs(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i, l := range lines {
		lines[i] = Escape(strings.TrimSpace(l))
	}
	return strings.Join(lines, "  \n")
}
