package gesture

// Hand is the classification state of one tracked hand slot, as consumed by
// the resolver.
type Hand struct {
	Active  bool
	Gesture Gesture
}

// Display is the resolved gesture/power pair shown to the user. It is
// presentation state only; the force engine re-derives its two-hand flags
// from the hand states directly.
type Display struct {
	Gesture Gesture
	Power   string
}

// Composite display gestures that only arise from the joint state of two
// hands.
const (
	// Chaos is one fist plus one open palm: creation and destruction at once.
	Chaos Gesture = "CHAOS"
	// Supernova is both hands pinching.
	Supernova Gesture = "SUPERNOVA"
)

// Resolve computes the display gesture for zero, one or two classified
// hands. Among active hands the highest-priority gesture wins, with ties
// keeping the first hand. Composite overrides are applied afterwards in
// order, each unconditionally replacing the result when its condition
// holds, so a later rule beats an earlier one.
func Resolve(a, b Hand) Display {
	d := Display{Gesture: None, Power: None.Power()}

	for _, h := range []Hand{a, b} {
		if !h.Active {
			continue
		}
		if d.Gesture == None || rank(h.Gesture) < rank(d.Gesture) {
			d.Gesture = h.Gesture
			d.Power = h.Gesture.Power()
		}
	}

	if !a.Active || !b.Active {
		return d
	}

	if a.Gesture == b.Gesture && a.Gesture != None {
		d.Power = "DUAL " + a.Gesture.Power()
	}

	if (a.Gesture == Fist && b.Gesture == OpenPalm) || (a.Gesture == OpenPalm && b.Gesture == Fist) {
		d.Gesture = Chaos
		d.Power = "CREATION & DESTRUCTION"
	}

	if a.Gesture == Pinch && b.Gesture == Pinch {
		d.Gesture = Supernova
		d.Power = "DUAL GALAXY SPIN"
	}

	return d
}
