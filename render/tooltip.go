package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/ai-entity/parameter"
	"github.com/lixenwraith/ai-entity/vmath"
)

// TooltipOverlay is the hover text box, composited last each frame.
// Once released it ignores Show
type TooltipOverlay struct {
	text     string
	pos      vmath.Vec2
	visible  bool
	released bool
}

func NewTooltipOverlay() *TooltipOverlay {
	return &TooltipOverlay{}
}

// Show displays text next to world position x, y
func (t *TooltipOverlay) Show(text string, x, y float64) {
	if t.released || text == "" {
		return
	}
	t.text = text
	t.pos = vmath.V2(x, y)
	t.visible = true
}

func (t *TooltipOverlay) Hide() {
	t.visible = false
}

// Release hides the overlay permanently
func (t *TooltipOverlay) Release() {
	t.released = true
	t.visible = false
	t.text = ""
}

func (t *TooltipOverlay) Visible() bool { return t.visible }

func (t *TooltipOverlay) Text() string { return t.text }

func (t *TooltipOverlay) draw(buf *RenderBuffer, pal Palette) {
	if !t.visible {
		return
	}
	w, h := buf.Size()
	lines := wrap(t.text, min(parameter.TooltipMaxWidth, w)-2)
	if len(lines) == 0 {
		return
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, runewidth.StringWidth(l))
	}
	boxW += 2
	boxH := len(lines)

	px, py := WorldToCell(t.pos)
	x := px + parameter.TooltipOffsetX
	y := py + parameter.TooltipOffsetY

	// Flip to the pointer's left/top when it would run off screen
	if x+boxW > w {
		x = px - parameter.TooltipOffsetX - boxW
	}
	if y+boxH > h-parameter.BottomMargin {
		y = py - parameter.TooltipOffsetY - boxH
	}
	x, y = max(x, 0), max(y, 0)

	buf.Fill(x, y, boxW, boxH, ' ', pal.TooltipFg, pal.TooltipBg)
	for i, l := range lines {
		buf.Text(x+1, y+i, l, pal.TooltipFg, pal.TooltipBg)
	}
}

// wrap breaks s on spaces into lines of at most width columns.
// Words longer than width are truncated
func wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	curW := 0
	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)
		if ww > width {
			word = runewidth.Truncate(word, width, "…")
			ww = runewidth.StringWidth(word)
		}
		if curW > 0 && curW+1+ww > width {
			lines = append(lines, cur.String())
			cur.Reset()
			curW = 0
		}
		if curW > 0 {
			cur.WriteByte(' ')
			curW++
		}
		cur.WriteString(word)
		curW += ww
	}
	if curW > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
