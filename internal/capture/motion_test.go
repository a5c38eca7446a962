package capture

import (
	"testing"

	"gocv.io/x/gocv"
)

func solidFrame(t *testing.T, value float64) *gocv.Mat {
	t.Helper()
	mat := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(value, value, value, 0),
		DefaultHeight, DefaultWidth, gocv.MatTypeCV8UC3,
	)
	t.Cleanup(func() { mat.Close() })
	return &mat
}

func TestMotionDetector_FirstFrameIsBaseline(t *testing.T) {
	md := NewMotionDetector(1.0)
	defer md.Close()

	detected, pct := md.Detect(solidFrame(t, 0))
	if detected || pct != 0 {
		t.Errorf("first frame: detected=%v pct=%f, want false/0", detected, pct)
	}
}

func TestMotionDetector_StillSceneNoMotion(t *testing.T) {
	md := NewMotionDetector(1.0)
	defer md.Close()

	md.Detect(solidFrame(t, 128))
	detected, pct := md.Detect(solidFrame(t, 128))
	if detected {
		t.Errorf("identical frames: detected motion (%.2f%% changed)", pct)
	}
}

func TestMotionDetector_LargeChangeDetected(t *testing.T) {
	md := NewMotionDetector(1.0)
	defer md.Close()

	md.Detect(solidFrame(t, 0))
	detected, pct := md.Detect(solidFrame(t, 255))
	if !detected {
		t.Errorf("black to white: no motion detected (%.2f%% changed)", pct)
	}
	if pct < 90 {
		t.Errorf("black to white changed only %.2f%%, want ~100%%", pct)
	}
}

func TestMotionDetector_Reset(t *testing.T) {
	md := NewMotionDetector(1.0)
	defer md.Close()

	md.Detect(solidFrame(t, 0))
	md.Reset()

	// After a reset the next frame is a baseline again.
	detected, _ := md.Detect(solidFrame(t, 255))
	if detected {
		t.Error("frame after Reset should establish a new baseline")
	}
}

func TestMotionDetector_NilAndEmptyFrames(t *testing.T) {
	md := NewMotionDetector(1.0)
	defer md.Close()

	if detected, _ := md.Detect(nil); detected {
		t.Error("nil frame reported motion")
	}

	empty := gocv.NewMat()
	defer empty.Close()
	if detected, _ := md.Detect(&empty); detected {
		t.Error("empty frame reported motion")
	}
}

func TestMotionDetector_SetThreshold(t *testing.T) {
	md := NewMotionDetector(1.0)
	defer md.Close()

	md.SetThreshold(50.0)
	md.Detect(solidFrame(t, 0))

	// A full-frame change always beats any threshold; a still frame never
	// does. The interesting case is that non-positive values are ignored.
	md.SetThreshold(0)
	md.SetThreshold(-1)

	if detected, _ := md.Detect(solidFrame(t, 0)); detected {
		t.Error("still frame detected as motion")
	}
}
