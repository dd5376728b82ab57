package parameter

import "time"

// Pointer
const (
	// PointerEasing is the per-frame exponential smoothing factor of current pointer toward target
	PointerEasing = 0.05
)

// Node physics, all per frame
const (
	// InfluenceRadius is the pointer distance (world units) inside which nodes are repelled
	InfluenceRadius = 150.0

	// MaxInfluence is the repulsion strength at zero distance before InfluenceScale
	MaxInfluence = 50.0

	// InfluenceScale converts influence into a velocity delta
	InfluenceScale = 0.01

	// SpringFactor pulls position toward anchor proportionally to displacement
	SpringFactor = 0.05

	// Damping multiplies velocity every frame after repulsion and spring
	Damping = 0.9

	// BreathRate is radians of breathing phase advanced per frame tick
	BreathRate = 0.001

	// BreathAmplitude is the peak breathing magnitude before BreathScale
	BreathAmplitude = 5.0

	// BreathScale converts breathing magnitude into an undamped position offset
	BreathScale = 0.1
)

// Pulse & particles
const (
	// PulseImpulse is the span of the uniform per-axis velocity kick, centered on zero
	PulseImpulse = 10.0

	// ParticleBurst is the number of particles spawned per burst
	ParticleBurst = 20

	// ParticleSpeedSpan is the span of the uniform per-axis particle velocity, centered on zero
	ParticleSpeedSpan = 2.0

	// ParticleSizeMin/Max bound particle size
	ParticleSizeMin = 1.0
	ParticleSizeMax = 4.0

	// ParticleLifeDecay is life lost per frame, particles start at 1
	ParticleLifeDecay = 0.01

	// ParticleDrag multiplies particle velocity every frame
	ParticleDrag = 0.99
)

// Reveal
const (
	// RevealStep is nodeVisibility gained per frame while revealing
	RevealStep = 0.03

	// LabelThreshold is the visibility above which labels are drawn and node tooltips are reported
	LabelThreshold = 0.5

	// RevealDelay separates the tagline action from the reveal trigger
	RevealDelay = 400 * time.Millisecond
)

// Hit testing
const (
	// CoreRadius is the resting core radius
	CoreRadius = 40.0

	// CoreBreath is the amplitude of core radius oscillation
	CoreBreath = 5.0

	// CoreHoverScale multiplies the core radius for hover tests (glow included)
	CoreHoverScale = 2.0

	// NodeRadius is the resting visual node radius
	NodeRadius = 4.0

	// NodePulse is the amplitude of node radius oscillation
	NodePulse = 2.0

	// NodePulseRate is radians of node pulse advanced per frame tick
	NodePulseRate = 0.002

	// NodeHoverScale multiplies the pulsing node radius for hover tests (glow included)
	NodeHoverScale = 3.0

	// ConnectionHoverThreshold is the max point-to-segment distance for connection hover
	ConnectionHoverThreshold = 15.0

	// ClickRadius is the fixed node click radius, wider than the glyph to include the label
	ClickRadius = 30.0
)

// Layout
const (
	// NodeCount is the number of labeled nodes of the revealed entity
	NodeCount = 4

	// LayoutRadiusFactor scales min(centerX, centerY) into the node circle radius
	LayoutRadiusFactor = 0.6

	// ConnectionProbability is the Bernoulli probability of each node pair being connected
	ConnectionProbability = 0.7

	// ConnectionStrengthMin/Max bound the sampled connection strength
	ConnectionStrengthMin = 0.5
	ConnectionStrengthMax = 1.0

	// ConnectionFadeDistance is the length beyond which a connection is not drawn
	ConnectionFadeDistance = 200.0
)

// Morph
const (
	// MorphStep is morph progress gained per frame, a full morph takes 1/MorphStep frames
	MorphStep = 0.02

	// MorphSwell is the peak relative radius growth mid-morph
	MorphSwell = 0.3
)

// Interaction
const (
	// ResizeThrottle is the minimum spacing of layout rebuilds on resize
	ResizeThrottle = 250 * time.Millisecond

	// MorphChance is the probability an empty-space click also morphs
	MorphChance = 0.5
)
