// Package app wires the camera, hand detector and particle simulation
// into a running pipeline.
package app

import (
	"log"
	"sync"

	"github.com/ayusman/tandava/internal/capture"
	"github.com/ayusman/tandava/internal/detector"
	"github.com/ayusman/tandava/internal/sim"
	"github.com/ayusman/tandava/internal/store"
)

// Pipeline timing constants.
const (
	// IdleTimeoutMs is the time in milliseconds without motion before the
	// camera drops back to the idle frame rate.
	IdleTimeoutMs = 2000
	// SimulationHz is the fixed tick rate of the particle simulation. It
	// runs independently of the camera so the field keeps moving between
	// detections.
	SimulationHz = 60
)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	CameraID     int
	MotionThresh float64
	Sim          sim.Config
}

// App owns the detection pipeline and the particle simulation. The two run
// on separate loops: a camera loop that classifies hands at a motion-gated
// frame rate, and a fixed-rate simulation loop that always ticks.
type App struct {
	config  Config
	camera  capture.Camera
	motion  *capture.MotionDetector
	detect  detector.Detector
	sim     *sim.Simulation
	enabled bool
	mu      sync.RWMutex
	stopCh  chan struct{}
	wg      sync.WaitGroup

	// mailbox holds the most recent detection result. The camera loop
	// overwrites it and the simulation loop drains it, so a slow detector
	// never backs up the simulation.
	mailbox   []detector.HandLandmarks
	mailboxMu sync.Mutex
	hasMail   bool
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	a := &App{
		config:  config,
		camera:  capture.NewCamera(config.CameraID),
		motion:  capture.NewMotionDetector(motionThreshold),
		sim:     sim.New(config.Sim),
		enabled: true,
		stopCh:  nil,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detect = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detect = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables hand detection. The simulation keeps
// ticking either way; with detection off the field just drifts.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether hand detection is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detect = d
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detect
}

// Simulation returns the particle simulation.
func (a *App) Simulation() *sim.Simulation {
	return a.sim
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// SetCamera replaces the camera. Only valid before Start.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// LoadSchemes loads custom color schemes from the database into the
// simulation, alongside the built-in ones.
func (a *App) LoadSchemes() error {
	if a.config.Store == nil {
		return nil
	}

	schemes, err := a.config.Store.Schemes().List()
	if err != nil {
		return err
	}

	for _, s := range schemes {
		palette := make(sim.Scheme, len(s.Colors))
		for i, c := range s.Colors {
			palette[i] = sim.RGB{R: c.R, G: c.G, B: c.B}
		}
		a.sim.AddScheme(s.Name, palette)
	}

	if len(schemes) > 0 {
		log.Printf("Loaded %d color schemes from database", len(schemes))
	}
	return nil
}

// Start opens the camera and launches the detection and simulation loops.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	// Open the camera
	if err := a.camera.Open(); err != nil {
		return err
	}

	// Set initial FPS to idle mode
	a.camera.SetFPS(capture.IdleFPS)

	a.stopCh = make(chan struct{})
	a.wg.Add(2)
	go a.runDetection(a.stopCh)
	go a.runSimulation(a.stopCh)

	log.Println("Pipeline started")
	return nil
}

// Stop halts both loops and releases resources.
func (a *App) Stop() {
	a.mu.Lock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}
	a.mu.Unlock()

	a.wg.Wait()

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.detect != nil {
		if err := a.detect.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Pipeline stopped")
}

// deliver stages a detection result for the simulation loop.
func (a *App) deliver(hands []detector.HandLandmarks) {
	a.mailboxMu.Lock()
	a.mailbox = hands
	a.hasMail = true
	a.mailboxMu.Unlock()
}

// collect returns the staged detection result, or false when nothing new
// arrived since the last call.
func (a *App) collect() ([]detector.HandLandmarks, bool) {
	a.mailboxMu.Lock()
	defer a.mailboxMu.Unlock()

	if !a.hasMail {
		return nil, false
	}
	hands := a.mailbox
	a.mailbox = nil
	a.hasMail = false
	return hands, true
}
