// Package gesture converts raw hand landmarks into discrete gesture labels
// and resolves the joint state of two hands into a single display gesture.
package gesture

// Gesture is the discrete classification of one hand's pose for one frame.
type Gesture string

const (
	// None means the hand slot received no detection this frame.
	None Gesture = "NONE"
	// Neutral is the fall-through label when no named gesture matches.
	Neutral Gesture = "NEUTRAL"
	// Pinch is thumb and index tips touching.
	Pinch Gesture = "PINCH"
	// OpenPalm is four or more fingers extended and spread.
	OpenPalm Gesture = "OPEN_PALM"
	// Fist is at most one finger extended.
	Fist Gesture = "FIST"
	// Point is index finger extended alone.
	Point Gesture = "POINT"
	// Peace is index and middle fingers extended in a V.
	Peace Gesture = "PEACE"
)

// powers binds each gesture to its power-level label, one to one.
var powers = map[Gesture]string{
	None:     "NONE",
	Neutral:  "IDLE",
	Pinch:    "GALAXY SPIN",
	OpenPalm: "CREATING",
	Fist:     "DESTROYING",
	Point:    "ATTRACT",
	Peace:    "REPEL",
}

// Power returns the power-level label paired with the gesture.
func (g Gesture) Power() string {
	if p, ok := powers[g]; ok {
		return p
	}
	return powers[Neutral]
}

// priority orders gestures for multi-hand resolution; lower index wins.
var priority = []Gesture{Pinch, OpenPalm, Fist, Point, Peace, Neutral, None}

// rank returns the priority index of g. Unknown gestures rank last.
func rank(g Gesture) int {
	for i, p := range priority {
		if p == g {
			return i
		}
	}
	return len(priority)
}
