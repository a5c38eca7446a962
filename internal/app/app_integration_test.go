package app

import (
	"testing"
	"time"

	"github.com/ayusman/tandava/internal/capture"
	"github.com/ayusman/tandava/internal/detector"
	"github.com/ayusman/tandava/internal/gesture"
	"github.com/ayusman/tandava/internal/sim"
	"gocv.io/x/gocv"
)

// testSimConfig keeps the pool small so the tests stay fast.
func testSimConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.MaxCount = 500
	cfg.InitialCount = 10
	cfg.Seed = 1
	return cfg
}

// motionFrames returns alternating black and white frames, which trip the
// motion detector on every read after the baseline.
func motionFrames(t *testing.T) []*gocv.Mat {
	t.Helper()

	black := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(0, 0, 0, 0),
		capture.DefaultHeight, capture.DefaultWidth, gocv.MatTypeCV8UC3,
	)
	white := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(255, 255, 255, 0),
		capture.DefaultHeight, capture.DefaultWidth, gocv.MatTypeCV8UC3,
	)
	t.Cleanup(func() {
		black.Close()
		white.Close()
	})
	return []*gocv.Mat{&black, &white}
}

func TestApp_Mailbox_LatestWins(t *testing.T) {
	a := New(Config{Sim: testSimConfig()})
	defer a.detect.Close()

	a.deliver([]detector.HandLandmarks{detector.OpenPalmLandmarks()})
	a.deliver([]detector.HandLandmarks{detector.FistLandmarks()})

	hands, ok := a.collect()
	if !ok {
		t.Fatal("collect() found no mail after two deliveries")
	}
	if len(hands) != 1 {
		t.Fatalf("collect() returned %d hands, want 1", len(hands))
	}
	if g, _ := gesture.Classify(&hands[0]); g != gesture.Fist {
		t.Errorf("collect() returned the older delivery, classified as %s", g)
	}

	if _, ok := a.collect(); ok {
		t.Error("second collect() should find the mailbox empty")
	}
}

func TestApp_EnabledToggle(t *testing.T) {
	a := New(Config{Sim: testSimConfig()})
	defer a.detect.Close()

	if !a.IsEnabled() {
		t.Error("detection should start enabled")
	}
	a.SetEnabled(false)
	if a.IsEnabled() {
		t.Error("SetEnabled(false) did not stick")
	}
}

func TestApp_LoadSchemes_NilStore(t *testing.T) {
	a := New(Config{Sim: testSimConfig()})
	defer a.detect.Close()

	if err := a.LoadSchemes(); err != nil {
		t.Errorf("LoadSchemes() with no store: %v", err)
	}
}

func TestApp_PipelineDrivesSimulation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	a := New(Config{CameraID: -1, MotionThresh: 0.05, Sim: testSimConfig()})

	a.camera = capture.NewMockCamera(motionFrames(t), true)

	mock := detector.NewMockDetector()
	mock.SetHands([]detector.HandLandmarks{detector.OpenPalmLandmarks()})
	a.SetDetector(mock)

	initial := a.Simulation().Count()

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// Give the camera loop time to see motion, go active and deliver
	// hands, and the simulation loop time to spawn from the open palm.
	time.Sleep(600 * time.Millisecond)
	a.Stop()

	if got := a.camera.FPS(); got != capture.ActiveFPS {
		t.Errorf("camera FPS = %d after constant motion, want %d", got, capture.ActiveFPS)
	}

	display := a.Simulation().Display()
	if display.Gesture != gesture.OpenPalm {
		t.Errorf("display gesture = %s, want %s", display.Gesture, gesture.OpenPalm)
	}

	if got := a.Simulation().Count(); got <= initial {
		t.Errorf("particle count = %d after open palm, want more than %d", got, initial)
	}
}

func TestApp_DisabledPipelineLeavesFieldAlone(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	a := New(Config{CameraID: -1, MotionThresh: 0.05, Sim: testSimConfig()})

	a.camera = capture.NewMockCamera(motionFrames(t), true)

	mock := detector.NewMockDetector()
	mock.SetHands([]detector.HandLandmarks{detector.OpenPalmLandmarks()})
	a.SetDetector(mock)

	a.SetEnabled(false)

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	time.Sleep(300 * time.Millisecond)
	a.Stop()

	// Detection never ran, so the camera stayed at the idle rate and no
	// hands reached the simulation.
	if got := a.camera.FPS(); got != capture.IdleFPS {
		t.Errorf("camera FPS = %d with detection disabled, want %d", got, capture.IdleFPS)
	}
	if display := a.Simulation().Display(); display.Gesture != gesture.None {
		t.Errorf("display gesture = %s with detection disabled, want %s", display.Gesture, gesture.None)
	}
}

func TestApp_StopIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	a := New(Config{CameraID: -1, Sim: testSimConfig()})
	a.camera = capture.NewMockCamera(motionFrames(t), true)
	a.SetDetector(detector.NewMockDetector())

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	a.Stop()
	a.Stop()
}
