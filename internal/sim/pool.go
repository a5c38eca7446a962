package sim

import (
	"math"
	"math/rand"
)

// Particle is one slot of the fixed-capacity pool. The slot index is the
// particle's only identity; activity is derived from position depth and
// remaining lifetime rather than stored as a separate flag.
type Particle struct {
	Position Vec3
	Velocity Vec3
	Color    RGB
	Size     float64
	Life     float64
}

// Pool is a fixed-capacity collection of particle slots. Inactive slots are
// parked at sentinelDepth and recycled by the spawner.
type Pool struct {
	slots []Particle
	count int
}

// NewPool creates a pool with the given capacity, all slots inactive.
func NewPool(capacity int) *Pool {
	p := &Pool{slots: make([]Particle, capacity)}
	for i := range p.slots {
		p.slots[i].Position.Z = sentinelDepth
	}
	return p
}

// Capacity returns the number of slots.
func (p *Pool) Capacity() int {
	return len(p.slots)
}

// Count returns the number of active particles.
func (p *Pool) Count() int {
	return p.count
}

// IsActive reports whether slot i holds a live particle.
func (p *Pool) IsActive(i int) bool {
	return p.slots[i].Position.Z > inactiveDepth && p.slots[i].Life > 0
}

// Activate places a particle in slot i. The slot must be inactive.
func (p *Pool) Activate(i int, pt Particle) {
	if p.IsActive(i) {
		return
	}
	p.slots[i] = pt
	p.count++
}

// deactivate parks slot i at the sentinel depth. Safe to call on a slot
// whose lifetime already reached zero mid-sweep; the depth check prevents
// double-counting.
func (p *Pool) deactivate(i int) {
	if p.slots[i].Position.Z <= inactiveDepth {
		return
	}
	p.slots[i].Position.Z = sentinelDepth
	p.slots[i].Velocity = Vec3{}
	p.slots[i].Size = 0
	p.slots[i].Life = 0
	p.count--
}

// FirstInactive returns the lowest-index inactive slot, or -1 if the pool
// is full.
func (p *Pool) FirstInactive() int {
	for i := range p.slots {
		if !p.IsActive(i) {
			return i
		}
	}
	return -1
}

// Seed activates n particles uniformly distributed in a ball of the given
// radius, colored from the scheme. Used for the startup batch.
func (p *Pool) Seed(n int, radius float64, scheme Scheme, baseSize float64, rng *rand.Rand) {
	for created := 0; created < n; created++ {
		idx := p.FirstInactive()
		if idx < 0 {
			return
		}

		// Uniform direction, cube-root radius for uniform ball density.
		theta := rng.Float64() * 2 * math.Pi
		cosPhi := rng.Float64()*2 - 1
		sinPhi := math.Sqrt(1 - cosPhi*cosPhi)
		r := radius * math.Cbrt(rng.Float64())

		p.Activate(idx, Particle{
			Position: Vec3{
				X: r * sinPhi * math.Cos(theta),
				Y: r * sinPhi * math.Sin(theta),
				Z: r * cosPhi,
			},
			Color: scheme.Random(rng),
			Size:  baseSize + rng.Float64()*spawnSizeSpread,
			Life:  1.0,
		})
	}
}

// Retint recolors roughly the given fraction of active particles from the
// scheme. Called when the active color scheme changes.
func (p *Pool) Retint(fraction float64, scheme Scheme, rng *rand.Rand) {
	for i := range p.slots {
		if !p.IsActive(i) {
			continue
		}
		if rng.Float64() < fraction {
			p.slots[i].Color = scheme.Random(rng)
		}
	}
}

// Snapshot is a read-only copy of the pool's renderable state. Arrays cover
// every slot; inactive slots sit at the sentinel depth with zero size.
type Snapshot struct {
	Positions []float32 // x, y, z per slot
	Colors    []float32 // r, g, b per slot
	Sizes     []float32 // one per slot
	Count     int
}

// CopySnapshot fills dst from the pool, reusing its buffers when possible.
func (p *Pool) CopySnapshot(dst *Snapshot) {
	n := len(p.slots)
	if cap(dst.Positions) < n*3 {
		dst.Positions = make([]float32, n*3)
		dst.Colors = make([]float32, n*3)
		dst.Sizes = make([]float32, n)
	}
	dst.Positions = dst.Positions[:n*3]
	dst.Colors = dst.Colors[:n*3]
	dst.Sizes = dst.Sizes[:n]
	dst.Count = p.count

	for i := range p.slots {
		pt := &p.slots[i]
		dst.Positions[i*3] = float32(pt.Position.X)
		dst.Positions[i*3+1] = float32(pt.Position.Y)
		dst.Positions[i*3+2] = float32(pt.Position.Z)
		dst.Colors[i*3] = float32(pt.Color.R)
		dst.Colors[i*3+1] = float32(pt.Color.G)
		dst.Colors[i*3+2] = float32(pt.Color.B)
		dst.Sizes[i] = float32(pt.Size)
	}
}
