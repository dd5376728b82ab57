package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
	Bold bool
}

// RenderBuffer is a compositor over a cell grid, flushed to a tcell.Screen once per frame
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
	clear  Cell
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int, bg RGB) *RenderBuffer {
	b := &RenderBuffer{clear: Cell{Rune: ' ', Fg: bg, Bg: bg}}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to the background using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = b.clear
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) Size() (int, int) { return b.width, b.height }

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y; out of bounds yields the clear cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return b.clear
	}
	return b.cells[y*b.width+x]
}

// ===== COMPOSITOR API =====

// Set composites a cell. A zero rune keeps the existing glyph
func (b *RenderBuffer) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	if r != 0 {
		dst.Rune = r
	}
	if mode.bg() {
		dst.Bg = apply(mode.op(), dst.Bg, bg, alpha)
	}
	if mode.fg() {
		dst.Fg = apply(mode.op(), dst.Fg, fg, alpha)
	}
}

// SetBold marks a cell bold
func (b *RenderBuffer) SetBold(x, y int, bold bool) {
	if b.inBounds(x, y) {
		b.cells[y*b.width+x].Bold = bold
	}
}

// Text writes s starting at x, y with opaque colors and returns columns consumed.
// Wide runes take two columns; the trailing column is blanked
func (b *RenderBuffer) Text(x, y int, s string, fg, bg RGB) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.Set(col, y, r, fg, bg, BlendReplace, 1)
		for i := 1; i < w; i++ {
			b.Set(col+i, y, ' ', fg, bg, BlendReplace, 1)
		}
		col += w
	}
	return col - x
}

// TextFg writes s keeping the existing background
func (b *RenderBuffer) TextFg(x, y int, s string, fg RGB, alpha float64) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.Set(col, y, r, fg, RGB{}, BlendAlphaFg, alpha)
		col += w
	}
	return col - x
}

// Fill paints a rectangle with rune r
func (b *RenderBuffer) Fill(x, y, w, h int, r rune, fg, bg RGB) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, r, fg, bg, BlendReplace, 1)
		}
	}
}

// Flush copies the buffer to the screen back buffer; the caller calls Show
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := 0; x < b.width; x++ {
			c := row[x]
			style := tcell.StyleDefault.Foreground(Tcell(c.Fg)).Background(Tcell(c.Bg)).Bold(c.Bold)
			screen.SetContent(x, y, c.Rune, nil, style)
			if w := runewidth.RuneWidth(c.Rune); w > 1 {
				x += w - 1
			}
		}
	}
}
