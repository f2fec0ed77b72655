package view

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/tidwall/gjson"

	"github.com/dshills/tscview/internal/highlight"
)

// styledSpan is a run of text drawn with one style.
type styledSpan struct {
	text  string
	style tcell.Style
}

// Panel is the terminal display surface. It shows one Document at a time:
// a header with the file path, the scrollable body, and a status line.
// Rendering always replaces the whole document.
type Panel struct {
	mu sync.Mutex

	screen tcell.Screen
	theme  *highlight.Theme

	doc    Document
	lines  [][]styledSpan
	status string
	scroll int

	disposed  bool
	onDispose []func()
}

// NewPanel creates a panel drawing on the given screen.
func NewPanel(screen tcell.Screen, theme *highlight.Theme) *Panel {
	if theme == nil {
		theme = highlight.DefaultTheme()
	}
	return &Panel{screen: screen, theme: theme}
}

// Render replaces the displayed document and redraws.
func (p *Panel) Render(doc Document) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.disposed {
		return
	}

	p.doc = doc
	p.lines = buildLines(doc, p.theme)
	p.status = summarize(doc)
	p.scroll = 0
	p.draw()
}

// Document returns the currently displayed document.
func (p *Panel) Document() Document {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.doc
}

// SetTheme switches the color theme and redraws the current document.
func (p *Panel) SetTheme(theme *highlight.Theme) {
	if theme == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.theme = theme
	p.lines = buildLines(p.doc, p.theme)
	p.draw()
}

// Theme returns the active theme.
func (p *Panel) Theme() *highlight.Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.theme
}

// ScrollBy moves the body viewport by delta lines and redraws.
func (p *Panel) ScrollBy(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.scroll += delta
	p.draw()
}

// Resize redraws after a terminal size change.
func (p *Panel) Resize() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.screen.Sync()
	p.draw()
}

// Reveal brings the panel to the foreground without re-creating it.
func (p *Panel) Reveal() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disposed {
		return
	}
	p.draw()
}

// OnDispose registers a callback invoked when the panel is disposed.
func (p *Panel) OnDispose(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onDispose = append(p.onDispose, fn)
}

// Dispose marks the panel unusable and notifies observers. Idempotent.
func (p *Panel) Dispose() {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return
	}
	p.disposed = true
	callbacks := p.onDispose
	p.onDispose = nil
	p.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// Disposed reports whether the panel has been disposed.
func (p *Panel) Disposed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.disposed
}

// draw repaints the whole panel. Caller holds p.mu.
func (p *Panel) draw() {
	width, height := p.screen.Size()
	if width == 0 || height == 0 {
		return
	}

	fill := tcell.StyleDefault.
		Foreground(p.theme.Foreground).
		Background(p.theme.Background)
	p.screen.Fill(' ', fill)

	// Header row.
	header := " " + p.doc.Path
	drawText(p.screen, 0, 0, width, header, p.theme.Header)

	// Body rows between header and status.
	bodyHeight := height - 2
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	maxScroll := len(p.lines) - bodyHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if p.scroll > maxScroll {
		p.scroll = maxScroll
	}
	if p.scroll < 0 {
		p.scroll = 0
	}

	for row := 0; row < bodyHeight; row++ {
		idx := p.scroll + row
		if idx >= len(p.lines) {
			break
		}
		col := 0
		for _, span := range p.lines[idx] {
			col = drawText(p.screen, col, row+1, width, span.text, span.style)
			if col >= width {
				break
			}
		}
	}

	// Status row.
	if height >= 2 {
		drawText(p.screen, 0, height-1, width, " "+p.status, p.theme.Status)
	}

	p.screen.Show()
}

// drawText draws s starting at (x, y), clipped to maxWidth columns.
// Returns the column after the last drawn cell.
func drawText(screen tcell.Screen, x, y, maxWidth int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= maxWidth {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// buildLines converts a document into styled display lines.
func buildLines(doc Document, theme *highlight.Theme) [][]styledSpan {
	if doc.IsError() {
		var lines [][]styledSpan
		for _, line := range strings.Split(doc.Diagnostic, "\n") {
			lines = append(lines, []styledSpan{{text: line, style: theme.ErrorText}})
		}
		return lines
	}

	lines := [][]styledSpan{nil}
	for _, tok := range doc.Tokens {
		if tok.Len() == 0 {
			continue
		}
		style := theme.StyleForToken(tok.Type)
		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			last := len(lines) - 1
			lines[last] = append(lines[last], styledSpan{text: part, style: style})
		}
	}
	return lines
}

// summarize builds the status line for a document. For successful
// resolutions the compiler target and module kind are pulled from the
// resolved JSON.
func summarize(doc Document) string {
	if doc.IsError() {
		return "resolution failed"
	}

	var parts []string
	if target := gjson.Get(doc.Text, "compilerOptions.target"); target.Exists() {
		parts = append(parts, "target="+target.String())
	}
	if module := gjson.Get(doc.Text, "compilerOptions.module"); module.Exists() {
		parts = append(parts, "module="+module.String())
	}
	if files := gjson.Get(doc.Text, "files"); files.IsArray() {
		parts = append(parts, fmt.Sprintf("files=%d", len(files.Array())))
	}

	if len(parts) == 0 {
		return "resolved"
	}
	return "resolved  " + strings.Join(parts, "  ")
}
