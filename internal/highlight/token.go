// Package highlight formats and syntax-highlights resolved configuration JSON.
//
// The scanner is a deliberate single-pass lexer, not a JSON validator:
// Format already establishes whether the text parses, so the scanner only has
// to classify well-formed output and pass anything else through verbatim.
package highlight

// TokenType represents the semantic type of a scanned token.
type TokenType uint8

// Token types produced by the JSON scanner.
const (
	// TokenText is unrecognized content passed through unhighlighted.
	TokenText TokenType = iota
	// TokenWhitespace is a run of whitespace, preserved as-is.
	TokenWhitespace
	// TokenKey is a string literal in object-key position.
	TokenKey
	// TokenString is a string literal in value position.
	TokenString
	// TokenNumber is a numeric literal.
	TokenNumber
	// TokenBool is a true or false literal.
	TokenBool
	// TokenNull is a null literal.
	TokenNull
	// TokenPunct is structural punctuation: { } [ ] : ,
	TokenPunct
)

// String returns the string representation of a token type.
func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "text"
	case TokenWhitespace:
		return "whitespace"
	case TokenKey:
		return "key"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenBool:
		return "boolean"
	case TokenNull:
		return "null"
	case TokenPunct:
		return "punct"
	default:
		return "unknown"
	}
}

// Class returns the markup class name for this token type, or the empty
// string for types that are not wrapped in spans.
func (t TokenType) Class() string {
	switch t {
	case TokenKey:
		return "json-key"
	case TokenString:
		return "json-string"
	case TokenNumber:
		return "json-number"
	case TokenBool:
		return "json-boolean"
	case TokenNull:
		return "json-null"
	case TokenPunct:
		return "json-punct"
	default:
		return ""
	}
}

// Token represents a classified span of the scanned text.
type Token struct {
	// Type is the semantic type of the token.
	Type TokenType

	// Start is the byte offset of the token's first character.
	Start int

	// End is the byte offset one past the token's last character.
	End int

	// Text is the token's raw text.
	Text string
}

// Len returns the length of the token in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}
