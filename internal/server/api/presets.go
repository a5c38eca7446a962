// Package api provides HTTP API handlers for the Tandava particle field.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ayusman/tandava/internal/sim"
	"github.com/ayusman/tandava/internal/store"
)

// PresetHandler handles HTTP requests for simulation preset resources.
type PresetHandler struct {
	store *store.Store
}

// NewPresetHandler creates a new PresetHandler with the given store.
func NewPresetHandler(s *store.Store) *PresetHandler {
	return &PresetHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *PresetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/presets or /api/presets/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/presets")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		// Collection endpoint: /api/presets
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// Item endpoint: /api/presets/{id}
	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type presetRequest struct {
	Name         string  `json:"name"`
	MaxCount     int     `json:"max_count"`
	InitialCount int     `json:"initial_count"`
	BaseSize     float64 `json:"base_size"`
	CreateRate   float64 `json:"create_rate"`
	DestroyRate  float64 `json:"destroy_rate"`
	AttractForce float64 `json:"attract_force"`
	RepelForce   float64 `json:"repel_force"`
	SpinForce    float64 `json:"spin_force"`
	Friction     float64 `json:"friction"`
	MaxSpeed     float64 `json:"max_speed"`
	ColorScheme  string  `json:"color_scheme"`
}

type presetResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	MaxCount     int     `json:"max_count"`
	InitialCount int     `json:"initial_count"`
	BaseSize     float64 `json:"base_size"`
	CreateRate   float64 `json:"create_rate"`
	DestroyRate  float64 `json:"destroy_rate"`
	AttractForce float64 `json:"attract_force"`
	RepelForce   float64 `json:"repel_force"`
	SpinForce    float64 `json:"spin_force"`
	Friction     float64 `json:"friction"`
	MaxSpeed     float64 `json:"max_speed"`
	ColorScheme  string  `json:"color_scheme"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type listPresetsResponse struct {
	Presets []presetResponse `json:"presets"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// toPresetResponse converts a store.Preset to a presetResponse.
func toPresetResponse(p *store.Preset) presetResponse {
	return presetResponse{
		ID:           p.ID,
		Name:         p.Name,
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
		CreatedAt:    p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// applyRequest copies the non-zero request fields onto a preset.
func applyRequest(p *store.Preset, req *presetRequest) {
	if req.Name != "" {
		p.Name = req.Name
	}
	if req.MaxCount > 0 {
		p.MaxCount = req.MaxCount
	}
	if req.InitialCount > 0 {
		p.InitialCount = req.InitialCount
	}
	if req.BaseSize > 0 {
		p.BaseSize = req.BaseSize
	}
	if req.CreateRate > 0 {
		p.CreateRate = req.CreateRate
	}
	if req.DestroyRate > 0 {
		p.DestroyRate = req.DestroyRate
	}
	if req.AttractForce > 0 {
		p.AttractForce = req.AttractForce
	}
	if req.RepelForce > 0 {
		p.RepelForce = req.RepelForce
	}
	if req.SpinForce > 0 {
		p.SpinForce = req.SpinForce
	}
	if req.Friction > 0 {
		p.Friction = req.Friction
	}
	if req.MaxSpeed > 0 {
		p.MaxSpeed = req.MaxSpeed
	}
	if req.ColorScheme != "" {
		p.ColorScheme = req.ColorScheme
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/presets and returns all presets.
func (h *PresetHandler) list(w http.ResponseWriter, r *http.Request) {
	presets, err := h.store.Presets().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list presets")
		return
	}

	response := listPresetsResponse{
		Presets: make([]presetResponse, 0, len(presets)),
	}

	for _, p := range presets {
		response.Presets = append(response.Presets, toPresetResponse(p))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/presets/{id} and returns a single preset.
func (h *PresetHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	preset, err := h.store.Presets().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Preset not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get preset")
		return
	}

	writeJSON(w, http.StatusOK, toPresetResponse(preset))
}

// create handles POST /api/presets and creates a new preset.
// Omitted numeric fields fall back to the simulation defaults.
func (h *PresetHandler) create(w http.ResponseWriter, r *http.Request) {
	var req presetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	defaults := sim.DefaultConfig()
	preset := &store.Preset{
		ID:           uuid.New().String(),
		MaxCount:     defaults.MaxCount,
		InitialCount: defaults.InitialCount,
		BaseSize:     defaults.BaseSize,
		CreateRate:   defaults.CreateRate,
		DestroyRate:  defaults.DestroyRate,
		AttractForce: defaults.AttractForce,
		RepelForce:   defaults.RepelForce,
		SpinForce:    defaults.SpinForce,
		Friction:     defaults.Friction,
		MaxSpeed:     defaults.MaxSpeed,
		ColorScheme:  defaults.ColorScheme,
	}
	applyRequest(preset, &req)

	if err := h.store.Presets().Create(preset); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create preset")
		return
	}

	writeJSON(w, http.StatusCreated, toPresetResponse(preset))
}

// update handles PUT /api/presets/{id} and updates an existing preset.
func (h *PresetHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	preset, err := h.store.Presets().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Preset not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get preset")
		return
	}

	var req presetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	applyRequest(preset, &req)

	if err := h.store.Presets().Update(preset); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update preset")
		return
	}

	writeJSON(w, http.StatusOK, toPresetResponse(preset))
}

// delete handles DELETE /api/presets/{id} and removes a preset.
func (h *PresetHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Presets().Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Preset not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete preset")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
