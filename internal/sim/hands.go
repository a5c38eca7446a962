package sim

import (
	"github.com/ayusman/tandava/internal/detector"
	"github.com/ayusman/tandava/internal/gesture"
)

// HandState is the per-frame state of one tracked hand slot.
type HandState struct {
	Active       bool
	Gesture      gesture.Gesture
	Power        string
	Handedness   string
	Position     Vec3
	PrevPosition Vec3
	// Velocity is the raw frame-to-frame palm displacement, unsmoothed.
	Velocity Vec3
	Features gesture.Features
}

// projectToField maps a normalized camera-space point into field units.
// X and Y are mirrored around the frame center so the field tracks the
// user like a mirror; Z keeps its sign as relative depth.
func projectToField(p detector.Point3D) Vec3 {
	return Vec3{
		X: (0.5 - p.X) * fieldScale,
		Y: (0.5 - p.Y) * fieldScale,
		Z: p.Z * depthScale,
	}
}

// SetHands classifies up to two detected hands into the simulation's hand
// slots and resolves the display gesture. Slots without a detection this
// frame become inactive. Call once per tick, before Step.
func (s *Simulation) SetHands(hands []detector.HandLandmarks) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < HandSlots; i++ {
		h := &s.hands[i]

		if i >= len(hands) {
			h.Active = false
			h.Gesture = gesture.None
			h.Power = gesture.None.Power()
			h.Velocity = Vec3{}
			continue
		}

		lm := &hands[i]
		g, features := gesture.Classify(lm)
		pos := projectToField(lm.PalmCenter())

		if h.Active {
			h.PrevPosition = h.Position
			h.Velocity = pos.Sub(h.PrevPosition)
		} else {
			// First frame of a detection: no displacement yet.
			h.PrevPosition = pos
			h.Velocity = Vec3{}
		}

		h.Active = true
		h.Gesture = g
		h.Power = g.Power()
		h.Handedness = lm.Handedness
		h.Position = pos
		h.Features = features
	}

	s.display = gesture.Resolve(
		gesture.Hand{Active: s.hands[0].Active, Gesture: s.hands[0].Gesture},
		gesture.Hand{Active: s.hands[1].Active, Gesture: s.hands[1].Gesture},
	)
}

// Hands returns a copy of both hand slots.
func (s *Simulation) Hands() [HandSlots]HandState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hands
}

// Display returns the resolved display gesture and power label.
func (s *Simulation) Display() gesture.Display {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.display
}
