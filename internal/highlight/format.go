package highlight

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// indentOptions re-serializes with two-space indentation and original
// key order.
var indentOptions = &pretty.Options{Indent: "  "}

// Format re-serializes valid JSON with stable two-space indentation.
// Input that does not parse is returned unchanged, so the viewer can always
// display whatever the compiler produced. Format is idempotent on its own
// output.
func Format(s string) string {
	if !gjson.Valid(s) {
		return s
	}
	return string(pretty.PrettyOptions([]byte(s), indentOptions))
}
