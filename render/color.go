package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ai-entity/parameter"
)

// RGB is an sRGB color, components in [0, 1]
type RGB = colorful.Color

// Hex parses a #rrggbb color, returning fallback on malformed input
func Hex(s string, fallback RGB) RGB {
	c, err := colorful.Hex(s)
	if err != nil {
		return fallback
	}
	return c
}

// Blend mixes src over dst by alpha, alpha clamped to [0, 1]
func Blend(dst, src RGB, alpha float64) RGB {
	switch {
	case alpha <= 0:
		return dst
	case alpha >= 1:
		return src
	}
	return dst.BlendRgb(src, alpha)
}

// Max takes the per-channel maximum
func Max(a, b RGB) RGB {
	return RGB{R: max(a.R, b.R), G: max(a.G, b.G), B: max(a.B, b.B)}
}

// Screen lightens a by b: 1-(1-a)(1-b)
func Screen(a, b RGB) RGB {
	return RGB{
		R: 1 - (1-a.R)*(1-b.R),
		G: 1 - (1-a.G)*(1-b.G),
		B: 1 - (1-a.B)*(1-b.B),
	}
}

// Tcell converts to a 24-bit terminal color
func Tcell(c RGB) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Palette holds the resolved colors of a frame
type Palette struct {
	Background RGB
	CoreInner  RGB
	CoreOuter  RGB
	Connection RGB
	Particle   RGB
	TooltipFg  RGB
	TooltipBg  RGB
	Text       RGB
	Dim        RGB
}

// DefaultPalette resolves the configured hex colors
func DefaultPalette() Palette {
	bg := Hex(parameter.BackgroundColor, RGB{})
	text := Hex(parameter.TooltipForegroundHex, RGB{R: 0.9, G: 0.9, B: 0.9})
	return Palette{
		Background: bg,
		CoreInner:  Hex(parameter.CoreInnerColor, RGB{G: 1, B: 0.53}),
		CoreOuter:  Hex(parameter.CoreOuterColor, RGB{G: 0.8, B: 1}),
		Connection: Hex(parameter.ConnectionColor, RGB{G: 1, B: 0.53}),
		Particle:   Hex(parameter.ParticleColor, RGB{G: 1, B: 0.53}),
		TooltipFg:  text,
		TooltipBg:  Hex(parameter.TooltipBackgroundHex, bg),
		Text:       text,
		Dim:        Blend(bg, text, 0.45),
	}
}
