package game

import "image/color"

// ParticleKind selects the particle behavior.
type ParticleKind uint8

const (
	// ParticleBurst is a scoring explosion affected by gravity.
	ParticleBurst ParticleKind = iota
	// ParticleTrail is a short-lived marker left at a wrap edge.
	ParticleTrail
)

// Particle is a purely visual effect in panel pixel coordinates.
// Particles never influence gameplay.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int // remaining ticks
	MaxLife int
	Color   color.RGBA
	Kind    ParticleKind
}

// Effect tuning constants.
const (
	burstCount   = 12
	burstLife    = 40
	burstSpeed   = 4.0
	burstGravity = 0.2

	trailCount = 8
	trailLife  = 3
	trailSpeed = 1.0
)

var (
	colorFruitBurst   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorPowerUpBurst = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colorTrail        = color.RGBA{R: 0, G: 200, B: 255, A: 255}
)

// addBurst spawns a particle explosion at the center of a grid cell.
func (g *Game) addBurst(cell Point, col color.RGBA) {
	cx := float64(cell.X*CellSize + CellSize/2)
	cy := float64(cell.Y*CellSize + CellSize/2)

	for i := 0; i < burstCount; i++ {
		g.particles = append(g.particles, Particle{
			X:       cx,
			Y:       cy,
			VX:      g.rng.Float64()*2*burstSpeed - burstSpeed,
			VY:      g.rng.Float64()*2*burstSpeed - burstSpeed,
			Life:    burstLife,
			MaxLife: burstLife,
			Color:   col,
			Kind:    ParticleBurst,
		})
	}
}

// addWrapTrail leaves a fading trail at the edge cell the snake
// wrapped through.
func (g *Game) addWrapTrail(cell Point) {
	cx := float64(cell.X*CellSize + CellSize/2)
	cy := float64(cell.Y*CellSize + CellSize/2)

	for i := 0; i < trailCount; i++ {
		g.particles = append(g.particles, Particle{
			X:       cx,
			Y:       cy,
			VX:      g.rng.Float64()*2*trailSpeed - trailSpeed,
			VY:      g.rng.Float64()*2*trailSpeed - trailSpeed,
			Life:    trailLife,
			MaxLife: trailLife,
			Color:   colorTrail,
			Kind:    ParticleTrail,
		})
	}
}

// updateEffects ages particles and power-ups by one tick and removes
// the expired ones.
func (g *Game) updateEffects() {
	alive := g.particles[:0]
	for _, p := range g.particles {
		p.X += p.VX
		p.Y += p.VY
		if p.Kind == ParticleBurst {
			p.VY += burstGravity
		}
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	g.particles = alive

	kept := g.powerUps[:0]
	for _, pu := range g.powerUps {
		pu.Lifespan--
		if pu.Lifespan > 0 {
			kept = append(kept, pu)
		}
	}
	g.powerUps = kept
}

// Particles returns the live particles. The slice is shared; the
// caller must not mutate it.
func (g *Game) Particles() []Particle { return g.particles }
