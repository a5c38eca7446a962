package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// MirrorHand returns a copy of h reflected across the vertical center of the
// frame, with the handedness label swapped. Useful for building the second
// hand of a two-hand scene from a right-hand fixture.
func MirrorHand(h HandLandmarks) HandLandmarks {
	out := h
	for i := range out.Points {
		out.Points[i].X = 1.0 - out.Points[i].X
	}
	switch h.Handedness {
	case "Right":
		out.Handedness = "Left"
	case "Left":
		out.Handedness = "Right"
	}
	return out
}

// fixtureHand builds a right-hand landmark set from per-finger joint chains.
// Each chain runs base-joint to tip; intermediate joints that gesture
// classification never reads are interpolated.
func fixtureHand(wrist Point3D, thumb, index, middle, ring, pinky [2]Point3D) HandLandmarks {
	h := HandLandmarks{Handedness: "Right", Score: 0.95}
	h.Points[Wrist] = wrist

	set := func(baseIdx int, chain [2]Point3D) {
		base, tip := chain[0], chain[1]
		h.Points[baseIdx] = base
		h.Points[baseIdx+1] = Point3D{
			X: base.X + (tip.X-base.X)*0.5,
			Y: base.Y + (tip.Y-base.Y)*0.5,
			Z: base.Z + (tip.Z-base.Z)*0.5,
		}
		h.Points[baseIdx+2] = tip
	}

	// Thumb: CMC interpolated from wrist, then IP and Tip from the chain.
	h.Points[ThumbCMC] = Point3D{
		X: wrist.X + (thumb[0].X-wrist.X)*0.4,
		Y: wrist.Y + (thumb[0].Y-wrist.Y)*0.4,
	}
	h.Points[ThumbMCP] = thumb[0]
	h.Points[ThumbIP] = Point3D{
		X: thumb[0].X + (thumb[1].X-thumb[0].X)*0.55,
		Y: thumb[0].Y + (thumb[1].Y-thumb[0].Y)*0.55,
	}
	h.Points[ThumbTip] = thumb[1]

	// Four fingers: MCP, then PIP..Tip with DIP interpolated.
	h.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68}
	set(IndexPIP, index)
	h.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66}
	set(MiddlePIP, middle)
	h.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68}
	set(RingPIP, ring)
	h.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70}
	set(PinkyPIP, pinky)

	return h
}

// OpenPalmLandmarks returns a right hand with all five fingers extended and
// spread. Classifies as an open palm.
func OpenPalmLandmarks() HandLandmarks {
	return fixtureHand(
		Point3D{X: 0.5, Y: 0.8},
		[2]Point3D{{X: 0.42, Y: 0.68}, {X: 0.35, Y: 0.60}},
		[2]Point3D{{X: 0.56, Y: 0.55}, {X: 0.58, Y: 0.35}},
		[2]Point3D{{X: 0.50, Y: 0.52}, {X: 0.50, Y: 0.28}},
		[2]Point3D{{X: 0.43, Y: 0.55}, {X: 0.42, Y: 0.35}},
		[2]Point3D{{X: 0.37, Y: 0.60}, {X: 0.34, Y: 0.42}},
	)
}

// FistLandmarks returns a right hand with every finger curled and the thumb
// tucked across the knuckles. Classifies as a fist.
func FistLandmarks() HandLandmarks {
	return fixtureHand(
		Point3D{X: 0.5, Y: 0.8},
		[2]Point3D{{X: 0.52, Y: 0.72}, {X: 0.60, Y: 0.66}},
		[2]Point3D{{X: 0.55, Y: 0.64}, {X: 0.54, Y: 0.70}},
		[2]Point3D{{X: 0.50, Y: 0.63}, {X: 0.49, Y: 0.69}},
		[2]Point3D{{X: 0.45, Y: 0.64}, {X: 0.44, Y: 0.70}},
		[2]Point3D{{X: 0.41, Y: 0.66}, {X: 0.40, Y: 0.71}},
	)
}

// PointLandmarks returns a right hand with the index finger and thumb
// extended and the rest curled. Classifies as a point.
func PointLandmarks() HandLandmarks {
	return fixtureHand(
		Point3D{X: 0.5, Y: 0.8},
		[2]Point3D{{X: 0.44, Y: 0.70}, {X: 0.36, Y: 0.64}},
		[2]Point3D{{X: 0.56, Y: 0.55}, {X: 0.57, Y: 0.35}},
		[2]Point3D{{X: 0.50, Y: 0.62}, {X: 0.49, Y: 0.68}},
		[2]Point3D{{X: 0.45, Y: 0.63}, {X: 0.44, Y: 0.69}},
		[2]Point3D{{X: 0.41, Y: 0.65}, {X: 0.40, Y: 0.70}},
	)
}

// PeaceLandmarks returns a right hand with index and middle fingers extended
// in a V. Classifies as a peace sign.
func PeaceLandmarks() HandLandmarks {
	return fixtureHand(
		Point3D{X: 0.5, Y: 0.8},
		[2]Point3D{{X: 0.53, Y: 0.72}, {X: 0.58, Y: 0.68}},
		[2]Point3D{{X: 0.56, Y: 0.55}, {X: 0.58, Y: 0.38}},
		[2]Point3D{{X: 0.49, Y: 0.54}, {X: 0.47, Y: 0.35}},
		[2]Point3D{{X: 0.45, Y: 0.63}, {X: 0.44, Y: 0.69}},
		[2]Point3D{{X: 0.41, Y: 0.65}, {X: 0.40, Y: 0.70}},
	)
}

// PinchLandmarks returns a right hand with the thumb and index tips nearly
// touching. Classifies as a pinch.
func PinchLandmarks() HandLandmarks {
	return fixtureHand(
		Point3D{X: 0.5, Y: 0.8},
		[2]Point3D{{X: 0.50, Y: 0.65}, {X: 0.55, Y: 0.50}},
		[2]Point3D{{X: 0.56, Y: 0.58}, {X: 0.57, Y: 0.51}},
		[2]Point3D{{X: 0.50, Y: 0.52}, {X: 0.50, Y: 0.30}},
		[2]Point3D{{X: 0.43, Y: 0.55}, {X: 0.42, Y: 0.36}},
		[2]Point3D{{X: 0.37, Y: 0.60}, {X: 0.34, Y: 0.44}},
	)
}

// NeutralLandmarks returns a right hand with three fingers half raised, a
// pose matching none of the named gestures. Classifies as neutral.
func NeutralLandmarks() HandLandmarks {
	return fixtureHand(
		Point3D{X: 0.5, Y: 0.8},
		[2]Point3D{{X: 0.53, Y: 0.72}, {X: 0.58, Y: 0.68}},
		[2]Point3D{{X: 0.56, Y: 0.55}, {X: 0.57, Y: 0.38}},
		[2]Point3D{{X: 0.50, Y: 0.54}, {X: 0.49, Y: 0.35}},
		[2]Point3D{{X: 0.44, Y: 0.56}, {X: 0.43, Y: 0.38}},
		[2]Point3D{{X: 0.41, Y: 0.65}, {X: 0.40, Y: 0.70}},
	)
}
