// Package viewer provides a native window that renders the particle field,
// built on Ebitengine. It is a debug surface: the field lives in 3D but the
// viewer projects straight down the Z axis.
package viewer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ayusman/tandava/internal/sim"
)

const (
	windowWidth  = 900
	windowHeight = 900

	// fieldExtent is the world-space half width shown in the window,
	// slightly beyond the bounce boundary so wall hits stay visible.
	fieldExtent = 750.0

	minDotRadius = 0.8
)

// Viewer renders a simulation into an Ebitengine window.
type Viewer struct {
	sim  *sim.Simulation
	snap sim.Snapshot
}

// New creates a Viewer for the given simulation.
func New(s *sim.Simulation) *Viewer {
	return &Viewer{sim: s}
}

// Update handles input. The simulation itself is ticked elsewhere; the
// viewer only reads snapshots.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.cycleScheme()
	}
	return nil
}

// cycleScheme switches the simulation to the next color scheme in name order.
func (v *Viewer) cycleScheme() {
	names := v.sim.SchemeNames()
	if len(names) == 0 {
		return
	}

	current := v.sim.ColorScheme()
	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
			break
		}
	}
	v.sim.SetColorScheme(next)
}

// Draw renders the current particle snapshot.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 8, G: 8, B: 14, A: 255})

	v.sim.Snapshot(&v.snap)

	scale := float64(windowWidth) / (2 * fieldExtent)

	for i := range v.snap.Sizes {
		// Inactive slots are parked at the sentinel depth with zero size.
		if v.snap.Sizes[i] <= 0 {
			continue
		}

		x := float64(v.snap.Positions[i*3])
		y := float64(v.snap.Positions[i*3+1])

		sx := float32(windowWidth/2 + x*scale)
		sy := float32(windowHeight/2 - y*scale)

		radius := v.snap.Sizes[i] * float32(scale)
		if radius < minDotRadius {
			radius = minDotRadius
		}

		c := color.RGBA{
			R: uint8(v.snap.Colors[i*3] * 255),
			G: uint8(v.snap.Colors[i*3+1] * 255),
			B: uint8(v.snap.Colors[i*3+2] * 255),
			A: 255,
		}

		vector.DrawFilledCircle(screen, sx, sy, radius, c, false)
	}

	display := v.sim.Display()
	hud := fmt.Sprintf("%s  |  %s  |  %d particles  |  %s  (Tab: next scheme)",
		display.Gesture, display.Power, v.snap.Count, v.sim.ColorScheme())
	ebitenutil.DebugPrintAt(screen, hud, 12, 12)
}

// Layout implements ebiten.Game.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}

// Run opens the window and blocks until it is closed.
func (v *Viewer) Run() error {
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Tandava")
	return ebiten.RunGame(v)
}
