package parameter

// Tuning groups the runtime-adjustable constants of the entity.
// Defaults come from the const blocks; config files override any field
type Tuning struct {
	Physics PhysicsTuning `mapstructure:"physics" toml:"physics"`
	Reveal  RevealTuning  `mapstructure:"reveal" toml:"reveal"`
	Hit     HitTuning     `mapstructure:"hit" toml:"hit"`
	Layout  LayoutTuning  `mapstructure:"layout" toml:"layout"`
}

type PhysicsTuning struct {
	PointerEasing   float64 `mapstructure:"pointer_easing" toml:"pointer_easing"`
	InfluenceRadius float64 `mapstructure:"influence_radius" toml:"influence_radius"`
	MaxInfluence    float64 `mapstructure:"max_influence" toml:"max_influence"`
	InfluenceScale  float64 `mapstructure:"influence_scale" toml:"influence_scale"`
	SpringFactor    float64 `mapstructure:"spring_factor" toml:"spring_factor"`
	Damping         float64 `mapstructure:"damping" toml:"damping"`
	BreathRate      float64 `mapstructure:"breath_rate" toml:"breath_rate"`
	BreathAmplitude float64 `mapstructure:"breath_amplitude" toml:"breath_amplitude"`
	BreathScale     float64 `mapstructure:"breath_scale" toml:"breath_scale"`
	PulseImpulse    float64 `mapstructure:"pulse_impulse" toml:"pulse_impulse"`
	ParticleBurst   int     `mapstructure:"particle_burst" toml:"particle_burst"`
	MorphStep       float64 `mapstructure:"morph_step" toml:"morph_step"`
}

type RevealTuning struct {
	Step           float64 `mapstructure:"step" toml:"step"`
	LabelThreshold float64 `mapstructure:"label_threshold" toml:"label_threshold"`
}

type HitTuning struct {
	CoreRadius          float64 `mapstructure:"core_radius" toml:"core_radius"`
	CoreHoverScale      float64 `mapstructure:"core_hover_scale" toml:"core_hover_scale"`
	NodeRadius          float64 `mapstructure:"node_radius" toml:"node_radius"`
	NodeHoverScale      float64 `mapstructure:"node_hover_scale" toml:"node_hover_scale"`
	ConnectionThreshold float64 `mapstructure:"connection_threshold" toml:"connection_threshold"`
	ClickRadius         float64 `mapstructure:"click_radius" toml:"click_radius"`
}

type LayoutTuning struct {
	NodeCount             int      `mapstructure:"node_count" toml:"node_count"`
	RadiusFactor          float64  `mapstructure:"radius_factor" toml:"radius_factor"`
	ConnectionProbability float64  `mapstructure:"connection_probability" toml:"connection_probability"`
	Labels                []string `mapstructure:"labels" toml:"labels"`
	Colors                []string `mapstructure:"colors" toml:"colors"`
}

// Default returns the tuning that reproduces the reference animation
func Default() Tuning {
	return Tuning{
		Physics: PhysicsTuning{
			PointerEasing:   PointerEasing,
			InfluenceRadius: InfluenceRadius,
			MaxInfluence:    MaxInfluence,
			InfluenceScale:  InfluenceScale,
			SpringFactor:    SpringFactor,
			Damping:         Damping,
			BreathRate:      BreathRate,
			BreathAmplitude: BreathAmplitude,
			BreathScale:     BreathScale,
			PulseImpulse:    PulseImpulse,
			ParticleBurst:   ParticleBurst,
			MorphStep:       MorphStep,
		},
		Reveal: RevealTuning{
			Step:           RevealStep,
			LabelThreshold: LabelThreshold,
		},
		Hit: HitTuning{
			CoreRadius:          CoreRadius,
			CoreHoverScale:      CoreHoverScale,
			NodeRadius:          NodeRadius,
			NodeHoverScale:      NodeHoverScale,
			ConnectionThreshold: ConnectionHoverThreshold,
			ClickRadius:         ClickRadius,
		},
		Layout: LayoutTuning{
			NodeCount:             NodeCount,
			RadiusFactor:          LayoutRadiusFactor,
			ConnectionProbability: ConnectionProbability,
			Labels:                append([]string(nil), NodeLabels[:]...),
			Colors:                append([]string(nil), NodeColors[:]...),
		},
	}
}

// Sanitize replaces non-positive or out-of-range fields with defaults so a bad
// config file degrades the animation instead of breaking it
func (t Tuning) Sanitize() Tuning {
	d := Default()

	pos := func(v *float64, def float64) {
		if !(*v > 0) {
			*v = def
		}
	}
	unit := func(v *float64, def float64) {
		if !(*v > 0 && *v <= 1) {
			*v = def
		}
	}

	unit(&t.Physics.PointerEasing, d.Physics.PointerEasing)
	pos(&t.Physics.InfluenceRadius, d.Physics.InfluenceRadius)
	if t.Physics.MaxInfluence < 0 {
		t.Physics.MaxInfluence = d.Physics.MaxInfluence
	}
	if t.Physics.InfluenceScale < 0 {
		t.Physics.InfluenceScale = d.Physics.InfluenceScale
	}
	unit(&t.Physics.SpringFactor, d.Physics.SpringFactor)
	// Damping of exactly 1 would never dissipate
	if !(t.Physics.Damping > 0 && t.Physics.Damping < 1) {
		t.Physics.Damping = d.Physics.Damping
	}
	if t.Physics.BreathRate < 0 {
		t.Physics.BreathRate = d.Physics.BreathRate
	}
	if t.Physics.BreathAmplitude < 0 {
		t.Physics.BreathAmplitude = d.Physics.BreathAmplitude
	}
	if t.Physics.BreathScale < 0 {
		t.Physics.BreathScale = d.Physics.BreathScale
	}
	if t.Physics.PulseImpulse < 0 {
		t.Physics.PulseImpulse = d.Physics.PulseImpulse
	}
	if t.Physics.ParticleBurst < 0 {
		t.Physics.ParticleBurst = d.Physics.ParticleBurst
	}
	unit(&t.Physics.MorphStep, d.Physics.MorphStep)

	unit(&t.Reveal.Step, d.Reveal.Step)
	if t.Reveal.LabelThreshold < 0 || t.Reveal.LabelThreshold > 1 {
		t.Reveal.LabelThreshold = d.Reveal.LabelThreshold
	}

	pos(&t.Hit.CoreRadius, d.Hit.CoreRadius)
	pos(&t.Hit.CoreHoverScale, d.Hit.CoreHoverScale)
	pos(&t.Hit.NodeRadius, d.Hit.NodeRadius)
	pos(&t.Hit.NodeHoverScale, d.Hit.NodeHoverScale)
	pos(&t.Hit.ConnectionThreshold, d.Hit.ConnectionThreshold)
	pos(&t.Hit.ClickRadius, d.Hit.ClickRadius)

	if t.Layout.NodeCount <= 0 {
		t.Layout.NodeCount = d.Layout.NodeCount
	}
	unit(&t.Layout.RadiusFactor, d.Layout.RadiusFactor)
	if t.Layout.ConnectionProbability < 0 || t.Layout.ConnectionProbability > 1 {
		t.Layout.ConnectionProbability = d.Layout.ConnectionProbability
	}
	if len(t.Layout.Labels) == 0 {
		t.Layout.Labels = d.Layout.Labels
	}
	if len(t.Layout.Colors) == 0 {
		t.Layout.Colors = d.Layout.Colors
	}
	return t
}
