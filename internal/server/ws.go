package server

import (
	"bytes"
	"encoding/binary"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/ayusman/tandava/internal/sim"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// fieldInterval is the broadcast period for particle snapshots, ~30 FPS.
const fieldInterval = 33 * time.Millisecond

// FieldHandler broadcasts binary particle field snapshots via WebSocket.
//
// Each frame is little-endian: a uint32 slot count, then count*3 float32
// positions, count*3 float32 colors, and count float32 sizes. Every pool
// slot is transmitted; inactive slots sit far behind the camera with zero
// size, so renderers can skip or discard them.
type FieldHandler struct {
	sim     *sim.Simulation
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewFieldHandler creates a new FieldHandler backed by the given simulation.
func NewFieldHandler(s *sim.Simulation) *FieldHandler {
	h := &FieldHandler{
		sim:     s,
		clients: make(map[*websocket.Conn]bool),
	}
	go h.broadcast()
	return h
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *FieldHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// encodeSnapshot packs a snapshot into the binary wire format.
func encodeSnapshot(snap *sim.Snapshot) []byte {
	n := len(snap.Sizes)
	buf := bytes.NewBuffer(make([]byte, 0, 4+n*7*4))

	binary.Write(buf, binary.LittleEndian, uint32(n))
	binary.Write(buf, binary.LittleEndian, snap.Positions)
	binary.Write(buf, binary.LittleEndian, snap.Colors)
	binary.Write(buf, binary.LittleEndian, snap.Sizes)

	return buf.Bytes()
}

// broadcast sends particle snapshots to all connected clients.
func (h *FieldHandler) broadcast() {
	ticker := time.NewTicker(fieldInterval)
	defer ticker.Stop()

	var snap sim.Snapshot

	for range ticker.C {
		h.mu.RLock()
		idle := len(h.clients) == 0
		h.mu.RUnlock()
		if idle {
			continue
		}

		h.sim.Snapshot(&snap)
		msg := encodeSnapshot(&snap)

		h.mu.RLock()
		for conn := range h.clients {
			conn.WriteMessage(websocket.BinaryMessage, msg)
		}
		h.mu.RUnlock()
	}
}
