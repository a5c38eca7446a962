package sim

import (
	"github.com/ayusman/tandava/internal/gesture"
)

// integrate runs one force-accumulation and integration sweep over every
// active particle. Force magnitudes are applied per frame, not per second:
// delta scales only the destruction pace, matching the field's original
// frame-locked tuning.
func (s *Simulation) integrate(delta float64) {
	h0, h1 := &s.hands[0], &s.hands[1]

	bothActive := h0.Active && h1.Active
	sameGesture := bothActive && h0.Gesture == h1.Gesture && h0.Gesture != gesture.None
	bothPinch := bothActive && h0.Gesture == gesture.Pinch && h1.Gesture == gesture.Pinch

	var pinchMid Vec3
	if bothPinch {
		pinchMid = h0.Position.Add(h1.Position).Scale(0.5)
	}

	for i := range s.pool.slots {
		if !s.pool.IsActive(i) {
			continue
		}
		pt := &s.pool.slots[i]

		destroyed := false
		for _, h := range [2]*HandState{h0, h1} {
			if !h.Active || h.Gesture == gesture.None || h.Gesture == gesture.Neutral {
				continue
			}

			toHand := h.Position.Sub(pt.Position)
			dist := toHand.Len()
			if dist >= HandRadius {
				continue
			}

			falloff := 1.0 - dist/HandRadius
			dir := toHand.Scale(1.0 / (dist + distanceEpsilon))

			amp := 1.0
			if sameGesture {
				// Pinch amplification is handled by dualSpinFactor.
				switch h.Gesture {
				case gesture.Point, gesture.Peace, gesture.Fist:
					amp = dualAmplifier
				}
			}

			switch h.Gesture {
			case gesture.Point:
				pt.Velocity = pt.Velocity.Add(dir.Scale(s.cfg.AttractForce * falloff * amp))

			case gesture.Peace:
				pt.Velocity = pt.Velocity.Sub(dir.Scale(s.cfg.RepelForce * falloff * amp))

			case gesture.Pinch:
				spin := 1.0
				if bothPinch {
					spin = dualSpinFactor
				}
				// Tangent perpendicular to the radius in the XY plane.
				tangent := Vec3{X: -dir.Y, Y: dir.X}
				pt.Velocity = pt.Velocity.Add(tangent.Scale(s.cfg.SpinForce * falloff * spinScale * spin))
				// A spin always also pulls slightly inward.
				pt.Velocity = pt.Velocity.Add(dir.Scale(s.cfg.AttractForce * falloff * pinchInwardFactor))

			case gesture.Fist:
				if dist < DestroyRadius {
					pt.Life -= delta * destroyPace * amp
					if pt.Life <= 0 {
						s.pool.deactivate(i)
						destroyed = true
					} else {
						pt.Size *= shrinkFactor
					}
				}
			}

			if destroyed {
				break
			}
		}
		if destroyed {
			continue
		}

		if bothPinch {
			toMid := pinchMid.Sub(pt.Position)
			dist := toMid.Len()
			if dist < SupernovaRadius {
				falloff := 1.0 - dist/SupernovaRadius
				dir := toMid.Scale(1.0 / (dist + distanceEpsilon))
				pt.Velocity = pt.Velocity.Add(dir.Scale(s.cfg.AttractForce * falloff * supernovaFactor))
			}
		}

		pt.Velocity = pt.Velocity.Scale(s.cfg.Friction)
		if speed := pt.Velocity.Len(); speed > s.cfg.MaxSpeed {
			pt.Velocity = pt.Velocity.Scale(s.cfg.MaxSpeed / speed)
		}

		pt.Position = pt.Position.Add(pt.Velocity)

		// Reflective bounce, per axis independently.
		if pt.Position.X > BoundaryRadius || pt.Position.X < -BoundaryRadius {
			pt.Position.X *= -0.9
		}
		if pt.Position.Y > BoundaryRadius || pt.Position.Y < -BoundaryRadius {
			pt.Position.Y *= -0.9
		}
		if pt.Position.Z > BoundaryRadius || pt.Position.Z < -BoundaryRadius {
			pt.Position.Z *= -0.9
		}
	}
}
