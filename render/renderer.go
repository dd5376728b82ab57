// Package render draws entity frames onto a terminal through tcell.
// World coordinates map to cells by parameter.CellWidth and parameter.CellHeight;
// opacity is emulated by blending toward the background with go-colorful
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/ai-entity/entity"
	"github.com/lixenwraith/ai-entity/parameter"
	"github.com/lixenwraith/ai-entity/vmath"
)

// CellRenderer implements entity.Drawer on a tcell.Screen
type CellRenderer struct {
	screen  tcell.Screen
	buf     *RenderBuffer
	pal     Palette
	colors  map[string]RGB
	tooltip *TooltipOverlay
	panel   Panel

	status   string
	tagline  string
	released bool
}

// NewCellRenderer creates a renderer owning a tooltip overlay for screen
func NewCellRenderer(screen tcell.Screen, pal Palette) *CellRenderer {
	w, h := screen.Size()
	return &CellRenderer{
		screen:  screen,
		buf:     NewRenderBuffer(w, h, pal.Background),
		pal:     pal,
		colors:  make(map[string]RGB),
		tooltip: NewTooltipOverlay(),
	}
}

// Tooltip returns the overlay to hand to the entity
func (r *CellRenderer) Tooltip() *TooltipOverlay { return r.tooltip }

// Panel returns the showcase output panel
func (r *CellRenderer) Panel() *Panel { return &r.panel }

func (r *CellRenderer) SetStatus(s string) { r.status = s }

func (r *CellRenderer) SetTagline(s string) { r.tagline = s }

// Buffer exposes the composited frame, used by tests
func (r *CellRenderer) Buffer() *RenderBuffer { return r.buf }

// Draw composites one frame: connections, core, nodes, particles, labels,
// then overlays, and shows it
func (r *CellRenderer) Draw(f *entity.Frame) {
	if r.released || f == nil {
		return
	}
	w, h := r.screen.Size()
	if bw, bh := r.buf.Size(); bw != w || bh != h {
		r.buf.Resize(w, h)
	} else {
		r.buf.Clear()
	}

	r.drawConnections(f)
	r.drawCore(f)
	r.drawNodes(f)
	r.drawParticles(f)
	r.drawLabels(f)

	r.drawTagline()
	r.panel.draw(r.buf, r.pal)
	r.drawStatus()
	r.tooltip.draw(r.buf, r.pal)

	r.buf.Flush(r.screen)
	r.screen.Show()
}

// Release stops drawing and hides the overlays
func (r *CellRenderer) Release() {
	if r.released {
		return
	}
	r.released = true
	r.tooltip.Release()
	r.panel.Hide()
	r.buf.Clear()
}

func (r *CellRenderer) color(hex string) RGB {
	if c, ok := r.colors[hex]; ok {
		return c
	}
	c := Hex(hex, r.pal.CoreInner)
	r.colors[hex] = c
	return c
}

// cellsWithin visits every cell whose center lies within radius of center
func (r *CellRenderer) cellsWithin(center vmath.Vec2, radius float64, fn func(x, y int, d float64)) {
	if radius <= 0 {
		return
	}
	x0, y0 := WorldToCell(center.Sub(vmath.V2(radius, radius)))
	x1, y1 := WorldToCell(center.Add(vmath.V2(radius, radius)))
	w, h := r.buf.Size()
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, w-1), min(y1, h-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := vmath.Distance(CellToWorld(x, y), center)
			if d < radius {
				fn(x, y, d)
			}
		}
	}
}

func (r *CellRenderer) drawConnections(f *entity.Frame) {
	step := parameter.CellWidth / 2
	for i, c := range f.Connections {
		if c.From < 0 || c.To < 0 || c.From >= len(f.Nodes) || c.To >= len(f.Nodes) {
			continue
		}
		from, to := f.Nodes[c.From].Pos, f.Nodes[c.To].Pos
		d := vmath.Distance(from, to)
		if d >= parameter.ConnectionFadeDistance {
			continue
		}
		alpha := (1 - d/parameter.ConnectionFadeDistance) * c.Strength * parameter.ConnectionAlpha
		if f.Hover == (entity.HoverTarget{Kind: entity.HoverConnection, Index: i}) {
			alpha = parameter.ConnectionHoverAlpha
		}

		steps := int(math.Ceil(d/step)) + 1
		lastX, lastY := math.MinInt, math.MinInt
		for s := 0; s <= steps; s++ {
			x, y := WorldToCell(vmath.LerpVec(from, to, float64(s)/float64(steps)))
			if x == lastX && y == lastY {
				continue
			}
			lastX, lastY = x, y
			r.buf.Set(x, y, parameter.GlyphConnection, r.pal.Connection, RGB{}, BlendAlphaFg, alpha)
		}
	}
}

func (r *CellRenderer) drawCore(f *entity.Frame) {
	glow := f.CoreRadius * parameter.CoreGlowScale
	r.cellsWithin(f.Center, glow, func(x, y int, d float64) {
		t := d / glow
		var c RGB
		var a float64
		if t < 0.5 {
			c = Blend(r.pal.CoreInner, r.pal.CoreOuter, t*2)
			a = parameter.CoreAlphaInner + (parameter.CoreAlphaMid-parameter.CoreAlphaInner)*t*2
		} else {
			c = Blend(r.pal.CoreOuter, r.pal.CoreInner, (t-0.5)*2)
			a = parameter.CoreAlphaMid * (1 - (t-0.5)*2)
		}
		r.buf.Set(x, y, 0, RGB{}, c, BlendMaxBg, a)
	})

	cx, cy := WorldToCell(f.Center)
	r.buf.Set(cx, cy, parameter.GlyphCore, r.pal.Text, RGB{}, BlendFgOnly, 1)
	r.buf.SetBold(cx, cy, f.Hover.Kind == entity.HoverCore)

	if !f.Active {
		return
	}
	ring := f.CoreRadius + parameter.ActiveRingOffset
	band := parameter.CellWidth * 0.75
	r.cellsWithin(f.Center, ring+band, func(x, y int, d float64) {
		if math.Abs(d-ring) < band {
			r.buf.Set(x, y, parameter.GlyphRing, r.pal.CoreInner, RGB{}, BlendAlphaFg, parameter.ActiveRingAlpha)
		}
	})
}

func (r *CellRenderer) drawNodes(f *entity.Frame) {
	if !f.NodesVisible() {
		return
	}
	for i, n := range f.Nodes {
		col := r.color(n.Color)
		glow := f.NodeRadius(n) * parameter.NodeGlowScale
		r.cellsWithin(n.Pos, glow, func(x, y int, d float64) {
			r.buf.Set(x, y, 0, RGB{}, col, BlendMaxBg, parameter.NodeGlowAlpha*(1-d/glow)*f.Visibility)
		})

		glyph := parameter.GlyphNode
		hovered := f.Hover == (entity.HoverTarget{Kind: entity.HoverNode, Index: i})
		if hovered {
			glyph = parameter.GlyphNodeHovered
		}
		x, y := WorldToCell(n.Pos)
		r.buf.Set(x, y, glyph, col, RGB{}, BlendAlphaFg, f.Visibility)
		r.buf.SetBold(x, y, hovered)
	}
}

func (r *CellRenderer) drawParticles(f *entity.Frame) {
	for _, p := range f.Particles {
		glyph := parameter.GlyphParticle
		if p.Size >= parameter.ParticleBigSize {
			glyph = parameter.GlyphParticleBig
		}
		x, y := WorldToCell(p.Pos)
		r.buf.Set(x, y, glyph, r.pal.Particle, RGB{}, BlendAlphaFg, p.Life)
	}
}

func (r *CellRenderer) drawLabels(f *entity.Frame) {
	if !f.LabelsVisible() {
		return
	}
	fade := 1.0
	if f.LabelThreshold < 1 {
		fade = vmath.Clamp((f.Visibility-f.LabelThreshold)/(1-f.LabelThreshold), 0, 1)
	}
	for _, n := range f.Nodes {
		x, y := WorldToCell(n.Pos)
		width := runewidth.StringWidth(n.Label)
		start := x + parameter.LabelGap
		// Left half labels grow leftward unless that runs off screen
		if left := x - parameter.LabelGap - width + 1; n.Pos.X < f.Center.X && left >= 0 {
			start = left
		}
		r.buf.TextFg(start, y, n.Label, r.color(n.Color), fade)
	}
}

func (r *CellRenderer) drawTagline() {
	if r.tagline == "" {
		return
	}
	w, _ := r.buf.Size()
	x := (w - runewidth.StringWidth(r.tagline)) / 2
	r.buf.TextFg(max(x, 0), parameter.TaglineRow, r.tagline, r.pal.Text, 1)
}

func (r *CellRenderer) drawStatus() {
	w, h := r.buf.Size()
	if h == 0 {
		return
	}
	y := h - 1
	r.buf.Fill(0, y, w, 1, ' ', r.pal.Text, r.pal.TooltipBg)
	if r.status != "" {
		r.buf.Text(0, y, runewidth.Truncate(r.status, w, "…"), r.pal.Text, r.pal.TooltipBg)
	}
}
