package physics

import (
	"github.com/lixenwraith/ai-entity/parameter"
	"github.com/lixenwraith/ai-entity/vmath"
)

// Particle is an ephemeral spark; it exists while Life > 0
type Particle struct {
	Pos  vmath.Vec2
	Vel  vmath.Vec2
	Life float64 // 1 at spawn, decays linearly
	Size float64
}

// Burst appends n particles at origin with random velocity and size
func Burst(dst []Particle, origin vmath.Vec2, n int, rng vmath.Source) []Particle {
	for i := 0; i < n; i++ {
		dst = append(dst, Particle{
			Pos: origin,
			Vel: vmath.V2(
				vmath.Centered(rng, parameter.ParticleSpeedSpan),
				vmath.Centered(rng, parameter.ParticleSpeedSpan),
			),
			Life: 1,
			Size: vmath.Range(rng, parameter.ParticleSizeMin, parameter.ParticleSizeMax),
		})
	}
	return dst
}

// UpdateParticles advances every particle one frame and compacts out the dead ones in place
func UpdateParticles(ps []Particle) []Particle {
	alive := ps[:0]
	for _, p := range ps {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life -= parameter.ParticleLifeDecay
		p.Vel = p.Vel.Scale(parameter.ParticleDrag)
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	// Drop references held past the new length
	clear(ps[len(alive):])
	return alive
}
