// Package detector provides hand detection interfaces and types for the
// gesture-driven particle field.
package detector

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Fingertips lists the tip landmark of each finger, thumb first.
var Fingertips = [5]int{ThumbTip, IndexTip, MiddleTip, RingTip, PinkyTip}

// PalmPoints lists the landmarks whose centroid approximates the palm center.
var PalmPoints = [5]int{Wrist, IndexMCP, MiddleMCP, RingMCP, PinkyMCP}

// Point3D represents a 3D point in normalized camera space.
// X and Y are in [0,1] with the origin at the top-left of the frame;
// Z is depth relative to the wrist, roughly on the same scale as X.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks represents the 21 hand landmarks detected by MediaPipe.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left", "Right" or "unknown"
	Score      float64               `json:"score"`
}

// PlanarDistance returns the distance between two landmarks ignoring depth.
// Gesture geometry is measured in the camera plane; MediaPipe Z is far
// noisier than X/Y and would dominate small distances like a pinch.
func PlanarDistance(a, b Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PalmCenter returns the centroid of the wrist and the four finger MCP
// joints, in normalized camera space.
func (h *HandLandmarks) PalmCenter() Point3D {
	var c Point3D
	for _, idx := range PalmPoints {
		c.X += h.Points[idx].X
		c.Y += h.Points[idx].Y
		c.Z += h.Points[idx].Z
	}
	n := float64(len(PalmPoints))
	c.X /= n
	c.Y /= n
	c.Z /= n
	return c
}
