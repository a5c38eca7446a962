package capture

import (
	"errors"
	"testing"
)

func TestNewCamera_Defaults(t *testing.T) {
	cam := NewCamera(0)

	if cam.IsOpen() {
		t.Error("camera should not be open initially")
	}
	if got := cam.FPS(); got != IdleFPS {
		t.Errorf("default FPS = %d, want %d", got, IdleFPS)
	}
}

func TestCamera_SetFPS(t *testing.T) {
	cam := NewCamera(0)

	cam.SetFPS(ActiveFPS)
	if got := cam.FPS(); got != ActiveFPS {
		t.Errorf("FPS = %d, want %d", got, ActiveFPS)
	}

	// Non-positive values are ignored.
	cam.SetFPS(0)
	if got := cam.FPS(); got != ActiveFPS {
		t.Errorf("FPS after SetFPS(0) = %d, want %d", got, ActiveFPS)
	}
	cam.SetFPS(-5)
	if got := cam.FPS(); got != ActiveFPS {
		t.Errorf("FPS after SetFPS(-5) = %d, want %d", got, ActiveFPS)
	}
}

func TestCamera_ReadFrameNotOpen(t *testing.T) {
	cam := NewCamera(0)

	if _, err := cam.ReadFrame(); !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("ReadFrame on closed camera: err = %v, want ErrCameraNotOpen", err)
	}
}

func TestCamera_CloseWithoutOpen(t *testing.T) {
	cam := NewCamera(0)

	if err := cam.Close(); err != nil {
		t.Errorf("Close on never-opened camera: %v", err)
	}
	if cam.IsOpen() {
		t.Error("camera reports open after Close")
	}
}
