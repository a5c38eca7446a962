package sim

import (
	"github.com/ayusman/tandava/internal/gesture"
)

// spawn injects new particles for each hand holding an open palm. The
// per-hand budget is time-based; when both hands create at once each runs
// at a reduced rate so the pool does not fill twice as fast.
func (s *Simulation) spawn(delta float64) {
	bothCreating := s.hands[0].Active && s.hands[1].Active &&
		s.hands[0].Gesture == gesture.OpenPalm && s.hands[1].Gesture == gesture.OpenPalm

	for i := range s.hands {
		h := &s.hands[i]
		if !h.Active || h.Gesture != gesture.OpenPalm {
			continue
		}

		rate := 1.0
		if bothCreating {
			rate = dualCreateFactor
		}
		toCreate := int(s.cfg.CreateRate * delta * rate)

		for n := 0; n < toCreate; n++ {
			if s.pool.Count() >= s.pool.Capacity() {
				break
			}
			idx := s.pool.FirstInactive()
			if idx < 0 {
				break
			}

			s.pool.Activate(idx, Particle{
				Position: Vec3{
					X: h.Position.X + (s.rng.Float64()*2-1)*spawnJitter,
					Y: h.Position.Y + (s.rng.Float64()*2-1)*spawnJitter,
					Z: h.Position.Z + (s.rng.Float64()*2-1)*spawnJitter,
				},
				Velocity: h.Velocity.Scale(spawnVelocityInherit).Add(Vec3{
					X: (s.rng.Float64()*2 - 1) * spawnVelocityJitter,
					Y: (s.rng.Float64()*2 - 1) * spawnVelocityJitter,
					Z: (s.rng.Float64()*2 - 1) * spawnVelocityJitter,
				}),
				Color: s.scheme.Random(s.rng),
				Size:  s.cfg.BaseSize + s.rng.Float64()*spawnSizeSpread,
				Life:  1.0,
			})
		}
	}
}
