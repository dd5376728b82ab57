package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ai-entity/parameter"
	"github.com/lixenwraith/ai-entity/vmath"
)

// ScreenCanvas exposes a screen as an entity canvas in world units.
// The status bar rows are excluded from the viewport
type ScreenCanvas struct {
	screen tcell.Screen
}

func NewScreenCanvas(screen tcell.Screen) *ScreenCanvas {
	return &ScreenCanvas{screen: screen}
}

func (c *ScreenCanvas) Size() (float64, float64) {
	if c == nil || c.screen == nil {
		return 0, 0
	}
	w, h := c.screen.Size()
	h -= parameter.BottomMargin
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return float64(w) * parameter.CellWidth, float64(h) * parameter.CellHeight
}

// Contains reports whether cell x, y lies inside the viewport
func (c *ScreenCanvas) Contains(x, y int) bool {
	if c == nil || c.screen == nil {
		return false
	}
	w, h := c.screen.Size()
	return x >= 0 && y >= 0 && x < w && y < h-parameter.BottomMargin
}

// CellToWorld returns the world position of the center of cell x, y
func CellToWorld(x, y int) vmath.Vec2 {
	return vmath.V2((float64(x)+0.5)*parameter.CellWidth, (float64(y)+0.5)*parameter.CellHeight)
}

// WorldToCell returns the cell containing world position p
func WorldToCell(p vmath.Vec2) (int, int) {
	return int(math.Floor(p.X / parameter.CellWidth)), int(math.Floor(p.Y / parameter.CellHeight))
}
