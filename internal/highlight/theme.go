package highlight

import (
	"sort"

	"github.com/gdamore/tcell/v2"
)

// Theme defines terminal colors for highlighted tokens.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Background is the panel background color.
	Background tcell.Color

	// Foreground is the default text color.
	Foreground tcell.Color

	// Header is the style for the document header line.
	Header tcell.Style

	// Status is the style for the status line.
	Status tcell.Style

	// ErrorText is the style for error panel content.
	ErrorText tcell.Style

	// TokenStyles maps token types to their styles.
	TokenStyles map[TokenType]tcell.Style
}

// StyleForToken returns the style for a given token type.
func (t *Theme) StyleForToken(tokenType TokenType) tcell.Style {
	if style, ok := t.TokenStyles[tokenType]; ok {
		return style
	}
	return tcell.StyleDefault.
		Foreground(t.Foreground).
		Background(t.Background)
}

// DefaultTheme returns a sensible default dark theme.
func DefaultTheme() *Theme {
	bg := tcell.NewRGBColor(30, 30, 30)
	fg := tcell.NewRGBColor(212, 212, 212)
	base := tcell.StyleDefault.Background(bg)

	return &Theme{
		Name:       "default",
		Background: bg,
		Foreground: fg,
		Header:     base.Foreground(tcell.NewRGBColor(86, 156, 214)).Bold(true),
		Status:     base.Foreground(tcell.NewRGBColor(128, 128, 128)),
		ErrorText:  base.Foreground(tcell.NewRGBColor(244, 71, 71)),
		TokenStyles: map[TokenType]tcell.Style{
			TokenKey:    base.Foreground(tcell.NewRGBColor(156, 220, 254)),
			TokenString: base.Foreground(tcell.NewRGBColor(206, 145, 120)),
			TokenNumber: base.Foreground(tcell.NewRGBColor(181, 206, 168)),
			TokenBool:   base.Foreground(tcell.NewRGBColor(86, 156, 214)),
			TokenNull:   base.Foreground(tcell.NewRGBColor(86, 156, 214)),
			TokenPunct:  base.Foreground(fg),
		},
	}
}

// MonokaiTheme returns a Monokai-inspired theme.
func MonokaiTheme() *Theme {
	bg := tcell.NewRGBColor(39, 40, 34)
	fg := tcell.NewRGBColor(248, 248, 242)
	base := tcell.StyleDefault.Background(bg)

	return &Theme{
		Name:       "monokai",
		Background: bg,
		Foreground: fg,
		Header:     base.Foreground(tcell.NewRGBColor(166, 226, 46)).Bold(true),
		Status:     base.Foreground(tcell.NewRGBColor(117, 113, 94)),
		ErrorText:  base.Foreground(tcell.NewRGBColor(249, 38, 114)),
		TokenStyles: map[TokenType]tcell.Style{
			TokenKey:    base.Foreground(tcell.NewRGBColor(102, 217, 239)),
			TokenString: base.Foreground(tcell.NewRGBColor(230, 219, 116)),
			TokenNumber: base.Foreground(tcell.NewRGBColor(174, 129, 255)),
			TokenBool:   base.Foreground(tcell.NewRGBColor(174, 129, 255)),
			TokenNull:   base.Foreground(tcell.NewRGBColor(174, 129, 255)),
			TokenPunct:  base.Foreground(fg),
		},
	}
}

// builtinThemes holds the compiled-in themes by name.
var builtinThemes = map[string]func() *Theme{
	"default": DefaultTheme,
	"monokai": MonokaiTheme,
}

// ThemeByName returns the named built-in theme, or nil if unknown.
func ThemeByName(name string) *Theme {
	if ctor, ok := builtinThemes[name]; ok {
		return ctor()
	}
	return nil
}

// ThemeNames returns the built-in theme names in stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
