// Package server provides the HTTP server for the Tandava particle field.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/tandava/internal/capture"
	"github.com/ayusman/tandava/internal/server/api"
	"github.com/ayusman/tandava/internal/sim"
	"github.com/ayusman/tandava/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	Camera    capture.Camera
	Sim       *sim.Simulation
}

// Server represents the HTTP server for the Tandava application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Sim != nil {
		s.mux.HandleFunc("/api/state", s.handleState)
		s.mux.HandleFunc("/api/scheme", s.handleScheme)

		// Binary particle snapshots over WebSocket
		fieldHandler := NewFieldHandler(s.config.Sim)
		s.mux.Handle("/api/field", fieldHandler)
	}

	// Register preset and scheme APIs if Store is configured
	if s.config.Store != nil {
		presetHandler := api.NewPresetHandler(s.config.Store)
		s.mux.Handle("/api/presets", presetHandler)
		s.mux.Handle("/api/presets/", presetHandler)

		schemeHandler := api.NewSchemeHandler(s.config.Store)
		s.mux.Handle("/api/schemes", schemeHandler)
		s.mux.Handle("/api/schemes/", schemeHandler)
	}

	// Register camera stream endpoint if Camera is configured
	if s.config.Camera != nil {
		streamHandler := NewStreamHandler(s.config.Camera)
		s.mux.Handle("/api/stream", streamHandler)
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

type stateResponse struct {
	Gesture       string `json:"gesture"`
	Power         string `json:"power"`
	ParticleCount int    `json:"particle_count"`
	ColorScheme   string `json:"color_scheme"`
}

// handleState handles GET requests to /api/state and reports the resolved
// gesture, its display power and the particle count.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	display := s.config.Sim.Display()
	response := stateResponse{
		Gesture:       string(display.Gesture),
		Power:         display.Power,
		ParticleCount: s.config.Sim.Count(),
		ColorScheme:   s.config.Sim.ColorScheme(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

type schemeRequest struct {
	Name string `json:"name"`
}

// handleScheme handles GET and PUT requests to /api/scheme. GET lists the
// available schemes and the active one; PUT switches the active scheme.
func (s *Server) handleScheme(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		response := map[string]interface{}{
			"active":    s.config.Sim.ColorScheme(),
			"available": s.config.Sim.SchemeNames(),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)

	case http.MethodPut:
		var req schemeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if err := s.config.Sim.SetColorScheme(req.Name); err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		if s.config.Store != nil {
			s.config.Store.SetSetting(store.SettingActiveScheme, req.Name)
		}

		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
