package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ayusman/tandava/internal/store"
)

// SchemeHandler handles HTTP requests for color scheme resources.
type SchemeHandler struct {
	store *store.Store
}

// NewSchemeHandler creates a new SchemeHandler with the given store.
func NewSchemeHandler(s *store.Store) *SchemeHandler {
	return &SchemeHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *SchemeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/schemes or /api/schemes/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/schemes")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
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

type schemeRequest struct {
	Name   string        `json:"name"`
	Colors []store.Color `json:"colors"`
}

type schemeResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Colors    []store.Color `json:"colors"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}

type listSchemesResponse struct {
	Schemes []schemeResponse `json:"schemes"`
}

// toSchemeResponse converts a store.Scheme to a schemeResponse.
func toSchemeResponse(sc *store.Scheme) schemeResponse {
	return schemeResponse{
		ID:        sc.ID,
		Name:      sc.Name,
		Colors:    sc.Colors,
		CreatedAt: sc.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: sc.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// validColors checks that every channel is within [0,1].
func validColors(colors []store.Color) bool {
	for _, c := range colors {
		if c.R < 0 || c.R > 1 || c.G < 0 || c.G > 1 || c.B < 0 || c.B > 1 {
			return false
		}
	}
	return true
}

// list handles GET /api/schemes and returns all custom color schemes.
func (h *SchemeHandler) list(w http.ResponseWriter, r *http.Request) {
	schemes, err := h.store.Schemes().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list schemes")
		return
	}

	response := listSchemesResponse{
		Schemes: make([]schemeResponse, 0, len(schemes)),
	}

	for _, sc := range schemes {
		response.Schemes = append(response.Schemes, toSchemeResponse(sc))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/schemes/{id} and returns a single scheme.
func (h *SchemeHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	scheme, err := h.store.Schemes().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Scheme not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get scheme")
		return
	}

	writeJSON(w, http.StatusOK, toSchemeResponse(scheme))
}

// create handles POST /api/schemes and creates a new color scheme.
func (h *SchemeHandler) create(w http.ResponseWriter, r *http.Request) {
	var req schemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if len(req.Colors) == 0 {
		writeError(w, http.StatusBadRequest, "At least one color is required")
		return
	}
	if !validColors(req.Colors) {
		writeError(w, http.StatusBadRequest, "Color channels must be within [0,1]")
		return
	}

	scheme := &store.Scheme{
		ID:     uuid.New().String(),
		Name:   req.Name,
		Colors: req.Colors,
	}

	if err := h.store.Schemes().Create(scheme); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create scheme")
		return
	}

	writeJSON(w, http.StatusCreated, toSchemeResponse(scheme))
}

// update handles PUT /api/schemes/{id} and updates an existing scheme.
func (h *SchemeHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	scheme, err := h.store.Schemes().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Scheme not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get scheme")
		return
	}

	var req schemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name != "" {
		scheme.Name = req.Name
	}
	if len(req.Colors) > 0 {
		if !validColors(req.Colors) {
			writeError(w, http.StatusBadRequest, "Color channels must be within [0,1]")
			return
		}
		scheme.Colors = req.Colors
	}

	if err := h.store.Schemes().Update(scheme); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update scheme")
		return
	}

	writeJSON(w, http.StatusOK, toSchemeResponse(scheme))
}

// delete handles DELETE /api/schemes/{id} and removes a scheme.
func (h *SchemeHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Schemes().Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Scheme not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete scheme")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
