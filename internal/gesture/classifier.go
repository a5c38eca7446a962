package gesture

import (
	"github.com/ayusman/tandava/internal/detector"
)

// Classification thresholds, in normalized camera units.
const (
	// pinchThreshold is the max planar thumb-index tip distance for a pinch.
	pinchThreshold = 0.05
	// spreadThreshold is the min mean wrist-to-fingertip distance for an
	// open palm. A hand with extended but closed fingers stays neutral.
	spreadThreshold = 0.18
	// palmFingerCount is the min number of extended fingers for an open palm.
	palmFingerCount = 4
	// fistFingerCount is the max number of extended fingers for a fist.
	fistFingerCount = 1
)

// Features holds the per-frame geometric measurements a classification is
// derived from. They are recomputed every frame and never persisted.
type Features struct {
	// PinchDistance is the planar distance between thumb and index tips.
	PinchDistance float64
	// FingerSpread is the mean planar distance from wrist to the five tips.
	FingerSpread float64
	// Extended reports per finger whether it is extended, thumb first.
	Extended [5]bool
	// ExtendedCount is the number of true values in Extended.
	ExtendedCount int
}

// ExtractFeatures measures the landmark geometry used for classification.
func ExtractFeatures(h *detector.HandLandmarks) Features {
	var f Features

	f.PinchDistance = detector.PlanarDistance(h.Points[detector.ThumbTip], h.Points[detector.IndexTip])

	wrist := h.Points[detector.Wrist]
	for _, tip := range detector.Fingertips {
		f.FingerSpread += detector.PlanarDistance(wrist, h.Points[tip])
	}
	f.FingerSpread /= float64(len(detector.Fingertips))

	// Thumb extension is a horizontal test against the IP joint, mirrored
	// by handedness because the camera image is not.
	thumbTip := h.Points[detector.ThumbTip]
	thumbIP := h.Points[detector.ThumbIP]
	if h.Handedness == "Right" {
		f.Extended[0] = thumbTip.X < thumbIP.X
	} else {
		f.Extended[0] = thumbTip.X > thumbIP.X
	}

	// The other four fingers are extended when the tip sits above the PIP
	// joint in screen space (smaller Y is higher).
	pips := [4]int{detector.IndexPIP, detector.MiddlePIP, detector.RingPIP, detector.PinkyPIP}
	tips := [4]int{detector.IndexTip, detector.MiddleTip, detector.RingTip, detector.PinkyTip}
	for i := 0; i < 4; i++ {
		f.Extended[i+1] = h.Points[tips[i]].Y < h.Points[pips[i]].Y
	}

	for _, ext := range f.Extended {
		if ext {
			f.ExtendedCount++
		}
	}

	return f
}

// Classify converts one frame's landmarks into a gesture label.
// Rules are evaluated in a fixed order and the first match wins, so any
// well-formed landmark set yields exactly one gesture.
func Classify(h *detector.HandLandmarks) (Gesture, Features) {
	f := ExtractFeatures(h)

	index, middle, ring, pinky := f.Extended[1], f.Extended[2], f.Extended[3], f.Extended[4]

	switch {
	case f.PinchDistance < pinchThreshold:
		return Pinch, f
	case f.ExtendedCount >= palmFingerCount && f.FingerSpread > spreadThreshold:
		return OpenPalm, f
	case f.ExtendedCount <= fistFingerCount:
		return Fist, f
	case index && !middle && !ring && !pinky:
		return Point, f
	case index && middle && !ring && !pinky:
		return Peace, f
	default:
		return Neutral, f
	}
}
