package highlight

import "strings"

// markupEscaper escapes characters that are unsafe inside markup.
var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape escapes markup-unsafe characters in s.
func Escape(s string) string {
	return markupEscaper.Replace(s)
}

// Markup scans s and returns it as markup-annotated text safe for embedding
// in a display document. Classified tokens are wrapped in spans tagged with
// their category; whitespace passes through untouched and unrecognized text
// is escaped but left unwrapped.
func Markup(s string) string {
	tokens := Scan(s)
	if len(tokens) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	for _, tok := range tokens {
		switch tok.Type {
		case TokenWhitespace:
			b.WriteString(tok.Text)
		case TokenText:
			b.WriteString(Escape(tok.Text))
		default:
			b.WriteString(`<span class="`)
			b.WriteString(tok.Type.Class())
			b.WriteString(`">`)
			b.WriteString(Escape(tok.Text))
			b.WriteString(`</span>`)
		}
	}
	return b.String()
}
