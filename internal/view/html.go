package view

import (
	"strings"

	"github.com/dshills/tscview/internal/highlight"
)

// htmlStyle is the embedded stylesheet for exported documents. The class
// names match the span categories emitted by the highlighter.
const htmlStyle = `body { background: #1e1e1e; color: #d4d4d4; font-family: monospace; margin: 0; }
header { padding: 8px 16px; background: #252526; color: #569cd6; font-weight: bold; }
pre { padding: 16px; margin: 0; white-space: pre-wrap; }
.error { padding: 16px; color: #f44747; white-space: pre-wrap; }
.json-key { color: #9cdcfe; }
.json-string { color: #ce9178; }
.json-number { color: #b5cea8; }
.json-boolean { color: #569cd6; }
.json-null { color: #569cd6; }
.json-punct { color: #d4d4d4; }`

// RenderHTML assembles a complete standalone markup document for doc.
// The page embeds no executable content; a host surface can display it with
// scripting disabled.
func RenderHTML(doc Document) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>")
	b.WriteString(highlight.Escape(doc.Path))
	b.WriteString("</title>\n<style>\n")
	b.WriteString(htmlStyle)
	b.WriteString("\n</style>\n</head>\n<body>\n<header>")
	b.WriteString(highlight.Escape(doc.Path))
	b.WriteString("</header>\n")

	if doc.IsError() {
		b.WriteString(`<div class="error">`)
		b.WriteString(highlight.Escape(doc.Diagnostic))
		b.WriteString("</div>\n")
	} else {
		b.WriteString("<pre>")
		b.WriteString(highlight.Markup(doc.Text))
		b.WriteString("</pre>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}
