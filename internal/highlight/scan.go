package highlight

// scanState represents the scanner's state between input bytes.
type scanState int

const (
	// stateDefault is the scanner's resting state.
	stateDefault scanState = iota
	// stateString is active between a string's opening and closing quotes.
	stateString
	// stateNumber is active inside a numeric literal.
	stateNumber
)

// Scan performs a single left-to-right pass over s and returns the classified
// tokens. Malformed input is never rejected; unrecognized characters become
// TokenText runs. An unterminated string or number at end of input is emitted
// with whatever text it has.
func Scan(s string) []Token {
	if s == "" {
		return nil
	}

	var tokens []Token
	emit := func(start, end int, typ TokenType) {
		if end > len(s) {
			end = len(s)
		}
		if end > start {
			tokens = append(tokens, Token{Type: typ, Start: start, End: end, Text: s[start:end]})
		}
	}

	state := stateDefault
	start := 0
	i := 0

	for i < len(s) {
		c := s[i]

		switch state {
		case stateString:
			switch c {
			case '\\':
				// An escaped character never terminates the string.
				i += 2
			case '"':
				i++
				typ := TokenString
				if colonFollows(s, i) {
					typ = TokenKey
				}
				emit(start, i, typ)
				state = stateDefault
				start = i
			default:
				i++
			}

		case stateNumber:
			if isNumberByte(c) {
				i++
				continue
			}
			emit(start, i, TokenNumber)
			state = stateDefault
			start = i

		default:
			switch {
			case c == '"':
				state = stateString
				start = i
				i++
			case c == '-' || c == '+' || isDigit(c):
				state = stateNumber
				start = i
				i++
			case isPunctByte(c):
				emit(i, i+1, TokenPunct)
				i++
			case isSpaceByte(c):
				j := i + 1
				for j < len(s) && isSpaceByte(s[j]) {
					j++
				}
				emit(i, j, TokenWhitespace)
				i = j
			default:
				if typ, n := literalAt(s, i); n > 0 {
					emit(i, i+n, typ)
					i += n
					continue
				}
				j := i + 1
				for j < len(s) && !isBoundaryByte(s[j]) {
					j++
				}
				emit(i, j, TokenText)
				i = j
			}
		}
	}

	// Flush an unterminated string or number.
	switch state {
	case stateString:
		emit(start, len(s), TokenString)
	case stateNumber:
		emit(start, len(s), TokenNumber)
	}

	return tokens
}

// colonFollows reports whether the next non-whitespace character at or after
// offset i is a colon, which marks the preceding string as an object key.
func colonFollows(s string, i int) bool {
	for ; i < len(s); i++ {
		if isSpaceByte(s[i]) {
			continue
		}
		return s[i] == ':'
	}
	return false
}

// literalAt reports a boolean or null literal starting at offset i.
// Returns the token type and literal length, or length 0 when none matches.
func literalAt(s string, i int) (TokenType, int) {
	for _, lit := range [...]struct {
		word string
		typ  TokenType
	}{
		{"true", TokenBool},
		{"false", TokenBool},
		{"null", TokenNull},
	} {
		end := i + len(lit.word)
		if end > len(s) || s[i:end] != lit.word {
			continue
		}
		// Must be a whole word: "nullable" is not a null literal.
		if end < len(s) && isWordByte(s[end]) {
			continue
		}
		return lit.typ, len(lit.word)
	}
	return TokenText, 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isNumberByte reports bytes that may continue a numeric literal.
func isNumberByte(c byte) bool {
	return isDigit(c) || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E'
}

func isPunctByte(c byte) bool {
	switch c {
	case '{', '}', '[', ']', ':', ',':
		return true
	}
	return false
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func isWordByte(c byte) bool {
	return c == '_' || isDigit(c) ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isBoundaryByte reports bytes that end a TokenText run.
func isBoundaryByte(c byte) bool {
	return c == '"' || isDigit(c) || c == '-' || c == '+' ||
		isPunctByte(c) || isSpaceByte(c)
}
