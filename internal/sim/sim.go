// Package sim implements the particle field: a fixed-capacity particle
// pool driven by per-hand gesture forces, a time-budgeted spawner and a
// per-frame integration engine.
package sim

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/ayusman/tandava/internal/gesture"
)

// Simulation owns the particle pool and the two hand slots. It is the only
// writer of both; readers take copies through Snapshot, Display and Hands.
// All methods are safe for concurrent use.
type Simulation struct {
	mu         sync.Mutex
	cfg        Config
	pool       *Pool
	hands      [HandSlots]HandState
	display    gesture.Display
	scheme     Scheme
	schemeName string
	rng        *rand.Rand
	schemes    map[string]Scheme
}

// New creates a simulation, seeds the startup particle batch and resolves
// the configured color scheme. Unknown scheme names fall back to the
// default configuration's scheme.
func New(cfg Config) *Simulation {
	def := DefaultConfig()
	if cfg.MaxCount <= 0 {
		cfg.MaxCount = def.MaxCount
	}
	if cfg.InitialCount < 0 || cfg.InitialCount > cfg.MaxCount {
		cfg.InitialCount = cfg.MaxCount / 4
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Simulation{
		cfg:     cfg,
		pool:    NewPool(cfg.MaxCount),
		rng:     rand.New(rand.NewSource(seed)),
		schemes: make(map[string]Scheme),
	}

	for name, scheme := range builtinSchemes {
		s.schemes[name] = scheme
	}

	s.schemeName = cfg.ColorScheme
	scheme, ok := s.schemes[s.schemeName]
	if !ok {
		s.schemeName = def.ColorScheme
		scheme = s.schemes[s.schemeName]
	}
	s.scheme = scheme

	s.display = gesture.Resolve(gesture.Hand{}, gesture.Hand{})
	s.pool.Seed(cfg.InitialCount, BoundaryRadius*0.5, s.scheme, cfg.BaseSize, s.rng)

	return s
}

// Step advances the simulation by delta seconds: one force/integration
// sweep followed by the spawn pass. The whole step completes synchronously;
// the pool is never observed mid-sweep.
func (s *Simulation) Step(delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.integrate(delta)
	s.spawn(delta)
}

// Count returns the number of active particles.
func (s *Simulation) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.Count()
}

// Config returns the simulation's configuration.
func (s *Simulation) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Snapshot copies the renderable pool state into dst at a frame boundary.
func (s *Simulation) Snapshot(dst *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool.CopySnapshot(dst)
}

// retintFraction is the share of live particles recolored on a scheme
// switch; the rest keep their colors until destroyed and respawned.
const retintFraction = 0.3

// AddScheme registers a custom color scheme, overriding any built-in of
// the same name.
func (s *Simulation) AddScheme(name string, scheme Scheme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schemes[name] = scheme
}

// ColorScheme returns the active color scheme name.
func (s *Simulation) ColorScheme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.schemeName
}

// SetColorScheme switches the active color scheme and re-tints a share of
// the live particles. This is the only configuration that changes while
// the simulation runs.
func (s *Simulation) SetColorScheme(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	scheme, ok := s.schemes[name]
	if !ok {
		return fmt.Errorf("unknown color scheme %q", name)
	}
	if name == s.schemeName {
		return nil
	}

	s.schemeName = name
	s.scheme = scheme
	s.pool.Retint(retintFraction, scheme, s.rng)
	return nil
}

// SchemeNames returns all registered scheme names.
func (s *Simulation) SchemeNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.schemes))
	for name := range s.schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
