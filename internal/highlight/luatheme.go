package highlight

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	lua "github.com/yuin/gopher-lua"
)

// LoadLuaTheme evaluates a Lua theme script and returns the theme it defines.
//
// The script must return a table. Entries are W3C color names or "#rrggbb"
// strings, or tables of the form {fg="...", bold=true}:
//
//	return {
//	    name       = "mytheme",
//	    background = "#1e1e1e",
//	    foreground = "#d4d4d4",
//	    key        = "#9cdcfe",
//	    string     = "#ce9178",
//	    number     = { fg = "#b5cea8" },
//	    boolean    = "#569cd6",
//	    null       = "#569cd6",
//	    punct      = "#d4d4d4",
//	    header     = { fg = "#569cd6", bold = true },
//	    status     = "#808080",
//	    error      = "#f44747",
//	}
//
// Missing entries inherit from the default theme.
func LoadLuaTheme(path string) (*Theme, error) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("theme script: %w", err)
	}

	tbl, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("theme script %s must return a table", path)
	}

	theme := DefaultTheme()
	theme.Name = "lua"
	if name, ok := tbl.RawGetString("name").(lua.LString); ok {
		theme.Name = string(name)
	}

	if c, ok := colorEntry(tbl, "background"); ok {
		theme.Background = c
	}
	if c, ok := colorEntry(tbl, "foreground"); ok {
		theme.Foreground = c
	}

	base := tcell.StyleDefault.Background(theme.Background)

	if style, ok := styleEntry(tbl, "header", base); ok {
		theme.Header = style
	}
	if style, ok := styleEntry(tbl, "status", base); ok {
		theme.Status = style
	}
	if style, ok := styleEntry(tbl, "error", base); ok {
		theme.ErrorText = style
	}

	for key, typ := range map[string]TokenType{
		"key":     TokenKey,
		"string":  TokenString,
		"number":  TokenNumber,
		"boolean": TokenBool,
		"null":    TokenNull,
		"punct":   TokenPunct,
	} {
		if style, ok := styleEntry(tbl, key, base); ok {
			theme.TokenStyles[typ] = style
		}
	}

	// Rebase inherited styles onto the script's background so a partial
	// theme does not mix backgrounds.
	for typ, style := range theme.TokenStyles {
		fg, _, _ := style.Decompose()
		theme.TokenStyles[typ] = style.Foreground(fg).Background(theme.Background)
	}

	return theme, nil
}

// colorEntry reads a plain color entry from the theme table.
func colorEntry(tbl *lua.LTable, key string) (tcell.Color, bool) {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return tcell.GetColor(string(s)), true
	}
	return tcell.ColorDefault, false
}

// styleEntry reads a style entry, which may be a color string or a table
// with fg and bold fields.
func styleEntry(tbl *lua.LTable, key string, base tcell.Style) (tcell.Style, bool) {
	switch v := tbl.RawGetString(key).(type) {
	case lua.LString:
		return base.Foreground(tcell.GetColor(string(v))), true
	case *lua.LTable:
		style := base
		if fg, ok := v.RawGetString("fg").(lua.LString); ok {
			style = style.Foreground(tcell.GetColor(string(fg)))
		}
		if bold, ok := v.RawGetString("bold").(lua.LBool); ok && bool(bold) {
			style = style.Bold(true)
		}
		return style, true
	default:
		return base, false
	}
}
