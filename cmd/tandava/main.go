package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/ayusman/tandava/internal/app"
	"github.com/ayusman/tandava/internal/server"
	"github.com/ayusman/tandava/internal/sim"
	"github.com/ayusman/tandava/internal/store"
	"github.com/ayusman/tandava/internal/tray"
	"github.com/ayusman/tandava/internal/viewer"
)

func main() {
	var (
		addr     = flag.String("addr", ":8080", "HTTP listen address")
		cameraID = flag.Int("camera", 0, "camera device ID")
		dbPath   = flag.String("db", "", "database path (default ~/.tandava/tandava.db)")
		scheme   = flag.String("scheme", "", "color scheme to start with")
		preset   = flag.String("preset", "", "simulation preset to load by name")
		view     = flag.Bool("view", false, "open a native window instead of the tray")
		headless = flag.Bool("headless", false, "run without tray or window")
	)
	flag.Parse()

	fmt.Println("Tandava - Gesture-Driven Particle Field")

	st, err := openStore(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	cfg := sim.DefaultConfig()
	if *preset != "" {
		p, err := st.Presets().GetByName(*preset)
		if err != nil {
			log.Fatalf("Failed to load preset %q: %v", *preset, err)
		}
		cfg = presetConfig(p)
		fmt.Printf("Loaded preset: %s\n", p.Name)
	}

	a := app.New(app.Config{
		Store:    st,
		CameraID: *cameraID,
		Sim:      cfg,
	})

	if err := a.LoadSchemes(); err != nil {
		log.Printf("Failed to load color schemes: %v", err)
	}
	applyScheme(a.Simulation(), st, *scheme)

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start pipeline: %v", err)
	}
	defer a.Stop()

	// Find web directory
	webDir := findWebDir()
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	srv := server.New(server.Config{
		StaticDir: webDir,
		Store:     st,
		Camera:    a.Camera(),
		Sim:       a.Simulation(),
	})

	go func() {
		fmt.Printf("Starting server on %s\n", *addr)
		if err := srv.ListenAndServe(*addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	switch {
	case *headless:
		select {}
	case *view:
		// Ebitengine needs the main thread.
		if err := viewer.New(a.Simulation()).Run(); err != nil {
			log.Fatalf("Viewer failed: %v", err)
		}
	default:
		runTray(a, st, *addr)
	}
}

// openStore opens the database at the given path, defaulting to
// ~/.tandava/tandava.db.
func openStore(path string) (*store.Store, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		dbDir := filepath.Join(homeDir, ".tandava")
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, err
		}
		path = filepath.Join(dbDir, "tandava.db")
	}

	return store.New(path)
}

// presetConfig builds a simulation config from a stored preset.
func presetConfig(p *store.Preset) sim.Config {
	return sim.Config{
		MaxCount:     p.MaxCount,
		InitialCount: p.InitialCount,
		BaseSize:     p.BaseSize,
		CreateRate:   p.CreateRate,
		DestroyRate:  p.DestroyRate,
		AttractForce: p.AttractForce,
		RepelForce:   p.RepelForce,
		SpinForce:    p.SpinForce,
		Friction:     p.Friction,
		MaxSpeed:     p.MaxSpeed,
		ColorScheme:  p.ColorScheme,
	}
}

// applyScheme picks the starting color scheme: the -scheme flag wins,
// otherwise the last persisted choice is restored.
func applyScheme(s *sim.Simulation, st *store.Store, flagScheme string) {
	name := flagScheme
	if name == "" {
		saved, err := st.GetSetting(store.SettingActiveScheme)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				log.Printf("Failed to read saved scheme: %v", err)
			}
			return
		}
		name = saved
	}

	if err := s.SetColorScheme(name); err != nil {
		log.Printf("Ignoring unknown color scheme %q", name)
	}
}

// runTray blocks in the system tray loop.
func runTray(a *app.App, st *store.Store, addr string) {
	t := tray.New(a.Simulation().SchemeNames())

	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
	})
	t.OnScheme(func(name string) {
		if err := a.Simulation().SetColorScheme(name); err != nil {
			log.Printf("Failed to switch scheme: %v", err)
			return
		}
		st.SetSetting(store.SettingActiveScheme, name)
	})
	t.OnOpen(func() {
		openBrowser("http://localhost" + addr)
	})
	t.OnQuit(func() {
		a.Stop()
	})

	t.Run()
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.tandava/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".tandava", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
