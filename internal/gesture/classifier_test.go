package gesture

import (
	"math/rand"
	"testing"

	"github.com/ayusman/tandava/internal/detector"
)

func TestClassify_Fixtures(t *testing.T) {
	tests := []struct {
		name  string
		hand  detector.HandLandmarks
		want  Gesture
		power string
	}{
		{"open palm", detector.OpenPalmLandmarks(), OpenPalm, "CREATING"},
		{"fist", detector.FistLandmarks(), Fist, "DESTROYING"},
		{"point", detector.PointLandmarks(), Point, "ATTRACT"},
		{"peace", detector.PeaceLandmarks(), Peace, "REPEL"},
		{"pinch", detector.PinchLandmarks(), Pinch, "GALAXY SPIN"},
		{"neutral", detector.NeutralLandmarks(), Neutral, "IDLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Classify(&tt.hand)
			if got != tt.want {
				t.Errorf("Classify = %s, want %s", got, tt.want)
			}
			if got.Power() != tt.power {
				t.Errorf("Power = %q, want %q", got.Power(), tt.power)
			}
		})
	}
}

func TestClassify_MirroredHands(t *testing.T) {
	// The thumb-extension test is handedness-mirrored, so a mirrored
	// fixture must classify identically.
	tests := []struct {
		name string
		hand detector.HandLandmarks
		want Gesture
	}{
		{"left open palm", detector.MirrorHand(detector.OpenPalmLandmarks()), OpenPalm},
		{"left fist", detector.MirrorHand(detector.FistLandmarks()), Fist},
		{"left point", detector.MirrorHand(detector.PointLandmarks()), Point},
		{"left peace", detector.MirrorHand(detector.PeaceLandmarks()), Peace},
		{"left pinch", detector.MirrorHand(detector.PinchLandmarks()), Pinch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := Classify(&tt.hand); got != tt.want {
				t.Errorf("Classify = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassify_Total(t *testing.T) {
	// Any 21-point landmark set must yield exactly one defined gesture.
	defined := map[Gesture]bool{
		Neutral: true, Pinch: true, OpenPalm: true,
		Fist: true, Point: true, Peace: true,
	}

	rng := rand.New(rand.NewSource(42))
	handedness := []string{"Left", "Right", "unknown"}

	for i := 0; i < 1000; i++ {
		h := detector.HandLandmarks{Handedness: handedness[i%3]}
		for j := range h.Points {
			h.Points[j] = detector.Point3D{
				X: rng.Float64(),
				Y: rng.Float64(),
				Z: rng.Float64()*0.2 - 0.1,
			}
		}

		got, _ := Classify(&h)
		if !defined[got] {
			t.Fatalf("iteration %d: undefined gesture %q", i, got)
		}
	}
}

func TestClassify_DegenerateGeometry(t *testing.T) {
	// All landmarks at the same point: zero pinch distance, zero spread.
	var h detector.HandLandmarks
	h.Handedness = "Right"

	got, f := Classify(&h)
	if got != Pinch {
		t.Errorf("coincident landmarks: Classify = %s, want %s", got, Pinch)
	}
	if f.PinchDistance != 0 || f.FingerSpread != 0 {
		t.Errorf("expected zero features, got %+v", f)
	}
}

func TestExtractFeatures(t *testing.T) {
	palm := detector.OpenPalmLandmarks()
	f := ExtractFeatures(&palm)

	if f.ExtendedCount < 4 {
		t.Errorf("open palm ExtendedCount = %d, want >= 4", f.ExtendedCount)
	}
	if f.FingerSpread <= spreadThreshold {
		t.Errorf("open palm FingerSpread = %f, want > %f", f.FingerSpread, spreadThreshold)
	}

	fist := detector.FistLandmarks()
	f = ExtractFeatures(&fist)
	if f.ExtendedCount > 1 {
		t.Errorf("fist ExtendedCount = %d, want <= 1", f.ExtendedCount)
	}

	pinch := detector.PinchLandmarks()
	f = ExtractFeatures(&pinch)
	if f.PinchDistance >= pinchThreshold {
		t.Errorf("pinch PinchDistance = %f, want < %f", f.PinchDistance, pinchThreshold)
	}
}

func TestExtractFeatures_ThumbMirroring(t *testing.T) {
	// Build a hand whose thumb tip is left of the IP joint: extended for a
	// right hand, curled for a left hand.
	var h detector.HandLandmarks
	h.Points[detector.ThumbIP] = detector.Point3D{X: 0.5, Y: 0.7}
	h.Points[detector.ThumbTip] = detector.Point3D{X: 0.4, Y: 0.65}

	h.Handedness = "Right"
	if f := ExtractFeatures(&h); !f.Extended[0] {
		t.Error("right hand: thumb left of IP should be extended")
	}

	h.Handedness = "Left"
	if f := ExtractFeatures(&h); f.Extended[0] {
		t.Error("left hand: thumb left of IP should not be extended")
	}

	// Unknown handedness follows the left-hand rule.
	h.Handedness = "unknown"
	if f := ExtractFeatures(&h); f.Extended[0] {
		t.Error("unknown handedness should use the left-hand thumb rule")
	}
}
