package app

import (
	"log"
	"time"

	"github.com/ayusman/tandava/internal/capture"
)

// runDetection is the camera loop. It manages the transitions between idle
// and active modes based on motion detection and stages hand landmarks for
// the simulation loop.
//
// Pipeline logic:
// 1. Start in idle mode (capture.IdleFPS)
// 2. On motion detected, switch to active mode (capture.ActiveFPS)
// 3. Run hand detection and deliver the result to the mailbox
// 4. After 2s without motion, switch back to idle and clear the hands
func (a *App) runDetection(stop chan struct{}) {
	defer a.wg.Done()

	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(capture.IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				if !activeMode {
					activeMode = true
					a.camera.SetFPS(capture.ActiveFPS)
					frameInterval = time.Second / time.Duration(capture.ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					a.camera.SetFPS(capture.IdleFPS)
					frameInterval = time.Second / time.Duration(capture.IdleFPS)
					ticker.Reset(frameInterval)
					// Let go of the hands so the field stops reacting to
					// a stale detection.
					a.deliver(nil)
					log.Println("Switched to idle mode")
				}
			}

			d := a.Detector()
			if !activeMode || d == nil {
				frame.Close()
				continue
			}

			hands, err := d.Detect(frame)
			frame.Close()

			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			a.deliver(hands)
		}
	}
}

// runSimulation ticks the particle field at a fixed rate, applying the
// latest hand detection whenever one is waiting. The step delta is
// measured, not assumed, so a stalled tick does not slow the field down.
func (a *App) runSimulation(stop chan struct{}) {
	defer a.wg.Done()

	ticker := time.NewTicker(time.Second / SimulationHz)
	defer ticker.Stop()

	last := time.Now()

	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			delta := now.Sub(last).Seconds()
			last = now

			if hands, ok := a.collect(); ok {
				a.sim.SetHands(hands)
			}

			a.sim.Step(delta)
		}
	}
}
