package render

// BlendMode defines compositing operations using a bitmask (Flags | Op)
type BlendMode uint8

// Blend Operations (0-15)
const (
	opReplace uint8 = 0x00
	opAlpha   uint8 = 0x01
	opMax     uint8 = 0x02
	opScreen  uint8 = 0x03
)

// Blend Flags
const (
	flagBg uint8 = 0x10 // Apply operation to Background
	flagFg uint8 = 0x20 // Apply operation to Foreground
)

// Pre-defined Blend Modes
const (
	BlendReplace = BlendMode(opReplace | flagBg | flagFg)
	BlendAlpha   = BlendMode(opAlpha | flagBg | flagFg)

	// Targeted Modes
	BlendFgOnly   = BlendMode(opReplace | flagFg) // Replace Fg, Keep Bg
	BlendAlphaFg  = BlendMode(opAlpha | flagFg)
	BlendAlphaBg  = BlendMode(opAlpha | flagBg)
	BlendMaxBg    = BlendMode(opMax | flagBg) // Glows overlap without darkening each other
	BlendScreenBg = BlendMode(opScreen | flagBg)
)

func (m BlendMode) op() uint8 { return uint8(m) & 0x0F }

func (m BlendMode) fg() bool { return uint8(m)&flagFg != 0 }

func (m BlendMode) bg() bool { return uint8(m)&flagBg != 0 }

func apply(op uint8, dst, src RGB, alpha float64) RGB {
	switch op {
	case opAlpha:
		return Blend(dst, src, alpha)
	case opMax:
		return Max(dst, Blend(dst, src, alpha))
	case opScreen:
		return Screen(dst, Blend(RGB{}, src, alpha))
	default:
		return src
	}
}
