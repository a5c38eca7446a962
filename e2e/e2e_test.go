package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ayusman/tandava/internal/app"
	"github.com/ayusman/tandava/internal/capture"
	"github.com/ayusman/tandava/internal/detector"
	"github.com/ayusman/tandava/internal/gesture"
	"github.com/ayusman/tandava/internal/server"
	"github.com/ayusman/tandava/internal/sim"
	"github.com/ayusman/tandava/internal/store"
	"gocv.io/x/gocv"
)

func e2eSimConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.MaxCount = 1000
	cfg.InitialCount = 50
	cfg.Seed = 1
	return cfg
}

// motionFrames returns alternating frames that always register motion.
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

func TestE2E_CompleteWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "data.db")

	s, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	application := app.New(app.Config{
		Store:        s,
		CameraID:     -1,
		MotionThresh: 0.05,
		Sim:          e2eSimConfig(),
	})

	mockDetector := detector.NewMockDetector()
	application.SetDetector(mockDetector)

	srv := server.New(server.Config{
		Store: s,
		Sim:   application.Simulation(),
	})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := ts.Client()

	t.Run("CreateScheme", func(t *testing.T) {
		resp, err := client.Post(
			ts.URL+"/api/schemes",
			"application/json",
			strings.NewReader(`{"name": "aurora", "colors": [{"r": 0.1, "g": 0.9, "b": 0.5}, {"r": 0.2, "g": 0.4, "b": 0.9}]}`),
		)
		if err != nil {
			t.Fatalf("create scheme error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
		}
	})

	t.Run("LoadSchemes", func(t *testing.T) {
		if err := application.LoadSchemes(); err != nil {
			t.Fatalf("LoadSchemes() error = %v", err)
		}

		found := false
		for _, name := range application.Simulation().SchemeNames() {
			if name == "aurora" {
				found = true
			}
		}
		if !found {
			t.Errorf("custom scheme not loaded: %v", application.Simulation().SchemeNames())
		}
	})

	t.Run("SwitchScheme", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPut, ts.URL+"/api/scheme", strings.NewReader(`{"name": "aurora"}`))
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("switch scheme error = %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusNoContent)
		}
		if got := application.Simulation().ColorScheme(); got != "aurora" {
			t.Errorf("active scheme = %q, want %q", got, "aurora")
		}
	})

	// Run the full pipeline with a mock camera and an open palm in view.
	application.SetCamera(capture.NewMockCamera(motionFrames(t), true))

	mockDetector.SetHands([]detector.HandLandmarks{detector.OpenPalmLandmarks()})

	before := application.Simulation().Count()

	if err := application.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	time.Sleep(600 * time.Millisecond)

	t.Run("GestureReachesField", func(t *testing.T) {
		display := application.Simulation().Display()
		if display.Gesture != gesture.OpenPalm {
			t.Errorf("display gesture = %s, want %s", display.Gesture, gesture.OpenPalm)
		}
		if display.Power != "CREATING" {
			t.Errorf("display power = %q, want %q", display.Power, "CREATING")
		}
		if got := application.Simulation().Count(); got <= before {
			t.Errorf("particle count = %d, want growth beyond %d", got, before)
		}
	})

	t.Run("StateEndpointReflectsField", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/state")
		if err != nil {
			t.Fatalf("get state error = %v", err)
		}
		defer resp.Body.Close()

		var state struct {
			Gesture       string `json:"gesture"`
			Power         string `json:"power"`
			ParticleCount int    `json:"particle_count"`
			ColorScheme   string `json:"color_scheme"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
			t.Fatalf("decode state: %v", err)
		}

		if state.Gesture != "OPEN_PALM" {
			t.Errorf("state gesture = %q, want %q", state.Gesture, "OPEN_PALM")
		}
		if state.ParticleCount <= before {
			t.Errorf("state particle_count = %d, want growth beyond %d", state.ParticleCount, before)
		}
		if state.ColorScheme != "aurora" {
			t.Errorf("state color_scheme = %q, want %q", state.ColorScheme, "aurora")
		}
	})

	t.Run("DualHandComposite", func(t *testing.T) {
		fist := detector.FistLandmarks()
		palm := detector.MirrorHand(detector.OpenPalmLandmarks())
		mockDetector.SetHands([]detector.HandLandmarks{fist, palm})

		time.Sleep(300 * time.Millisecond)

		display := application.Simulation().Display()
		if display.Gesture != gesture.Chaos {
			t.Errorf("display gesture = %s, want %s", display.Gesture, gesture.Chaos)
		}
		if display.Power != "CREATION & DESTRUCTION" {
			t.Errorf("display power = %q, want %q", display.Power, "CREATION & DESTRUCTION")
		}
	})

	application.Stop()
}
