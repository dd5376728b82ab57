package parameter

// Layout & Margins
const (
	// BottomMargin reserves the status bar row
	BottomMargin = 1

	// TaglineRow is the screen row of the centered tagline
	TaglineRow = 1

	// TooltipMaxWidth wraps tooltip text, in columns
	TooltipMaxWidth = 40

	// TooltipOffsetX/Y place the tooltip relative to the pointer cell
	TooltipOffsetX = 2
	TooltipOffsetY = 1

	// LabelGap is columns between a node glyph and its label
	LabelGap = 2

	// PanelMaxLines is the scrollback kept by the showcase panel
	PanelMaxLines = 10

	// PanelWidth of the showcase panel including borders
	PanelWidth = 56
)

// Glyphs
const (
	GlyphNode        = '●'
	GlyphNodeHovered = '◉'
	GlyphCore        = '◎'
	GlyphConnection  = '·'
	GlyphRing        = '∙'
	GlyphParticle    = '∙'
	GlyphParticleBig = '•'
	GlyphCursor      = '▌'
)

// Render Intensity
const (
	// CoreAlphaInner is the core gradient opacity at the center
	CoreAlphaInner = 0.8

	// CoreAlphaMid is the core gradient opacity at half the glow radius
	CoreAlphaMid = 0.4

	// CoreGlowScale multiplies the core radius for the glow extent
	CoreGlowScale = 2.0

	// ActiveRingOffset is added to the core radius for the engaged ring
	ActiveRingOffset = 10.0

	// ActiveRingAlpha is the engaged ring opacity
	ActiveRingAlpha = 0.6

	// NodeGlowScale multiplies the node radius for the glow extent
	NodeGlowScale = 3.0

	// NodeGlowAlpha is the glow opacity next to the node
	NodeGlowAlpha = 0.5

	// ConnectionAlpha scales connection opacity; terminals need more than a canvas stroke
	ConnectionAlpha = 0.9

	// ConnectionHoverAlpha is used for the hovered connection
	ConnectionHoverAlpha = 1.0

	// ParticleBigSize switches particles to the larger glyph
	ParticleBigSize = 2.5
)
