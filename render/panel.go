package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/ai-entity/parameter"
)

// Panel is the bordered terminal-style output box of the showcase
type Panel struct {
	title   string
	lines   []string
	cursor  bool
	visible bool
}

func (p *Panel) SetTitle(title string) { p.title = title }

// SetLines replaces the content, keeping only the last PanelMaxLines
func (p *Panel) SetLines(lines []string) {
	if n := len(lines); n > parameter.PanelMaxLines {
		lines = lines[n-parameter.PanelMaxLines:]
	}
	p.lines = append(p.lines[:0], lines...)
}

// SetCursor toggles the typing cursor after the last line
func (p *Panel) SetCursor(on bool) { p.cursor = on }

func (p *Panel) Show() { p.visible = true }

func (p *Panel) Hide() { p.visible = false }

func (p *Panel) Visible() bool { return p.visible }

func (p *Panel) Lines() []string { return p.lines }

// draw places the panel in the bottom-left corner above the status bar
func (p *Panel) draw(buf *RenderBuffer, pal Palette) {
	if !p.visible {
		return
	}
	w, h := buf.Size()
	boxW := min(parameter.PanelWidth, w-2)
	boxH := max(len(p.lines), 1) + 2
	if boxW < 4 || boxH > h-parameter.BottomMargin {
		return
	}
	x := 1
	y := h - parameter.BottomMargin - boxH
	inner := boxW - 2

	buf.Fill(x, y, boxW, boxH, ' ', pal.Text, pal.TooltipBg)
	for col := x + 1; col < x+boxW-1; col++ {
		buf.Set(col, y, '─', pal.Dim, pal.TooltipBg, BlendReplace, 1)
		buf.Set(col, y+boxH-1, '─', pal.Dim, pal.TooltipBg, BlendReplace, 1)
	}
	for row := y + 1; row < y+boxH-1; row++ {
		buf.Set(x, row, '│', pal.Dim, pal.TooltipBg, BlendReplace, 1)
		buf.Set(x+boxW-1, row, '│', pal.Dim, pal.TooltipBg, BlendReplace, 1)
	}
	buf.Set(x, y, '┌', pal.Dim, pal.TooltipBg, BlendReplace, 1)
	buf.Set(x+boxW-1, y, '┐', pal.Dim, pal.TooltipBg, BlendReplace, 1)
	buf.Set(x, y+boxH-1, '└', pal.Dim, pal.TooltipBg, BlendReplace, 1)
	buf.Set(x+boxW-1, y+boxH-1, '┘', pal.Dim, pal.TooltipBg, BlendReplace, 1)

	if p.title != "" {
		buf.Text(x+2, y, runewidth.Truncate(p.title, inner-2, "…"), pal.CoreInner, pal.TooltipBg)
	}

	end := x + 1
	for i, l := range p.lines {
		l = runewidth.Truncate(l, inner, "…")
		end = x + 1 + buf.Text(x+1, y+1+i, l, pal.Text, pal.TooltipBg)
	}
	if p.cursor {
		row := y + max(len(p.lines), 1)
		buf.Set(min(end, x+boxW-2), row, parameter.GlyphCursor, pal.CoreInner, pal.TooltipBg, BlendReplace, 1)
	}
}
