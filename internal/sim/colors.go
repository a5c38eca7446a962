package sim

import (
	"math/rand"
	"sort"
)

// Scheme is a palette particles draw their colors from.
type Scheme []RGB

// Built-in color schemes. Custom schemes from the store are merged in by
// the application at startup.
var builtinSchemes = map[string]Scheme{
	"cosmic": {
		{R: 0.55, G: 0.30, B: 0.95},
		{R: 0.25, G: 0.45, B: 1.00},
		{R: 0.90, G: 0.40, B: 0.90},
		{R: 0.95, G: 0.95, B: 1.00},
	},
	"fire": {
		{R: 1.00, G: 0.85, B: 0.30},
		{R: 1.00, G: 0.50, B: 0.10},
		{R: 0.90, G: 0.20, B: 0.05},
		{R: 0.60, G: 0.05, B: 0.05},
	},
	"nature": {
		{R: 0.20, G: 0.80, B: 0.30},
		{R: 0.55, G: 0.90, B: 0.25},
		{R: 0.10, G: 0.55, B: 0.35},
		{R: 0.90, G: 0.95, B: 0.60},
	},
	"ocean": {
		{R: 0.05, G: 0.35, B: 0.70},
		{R: 0.10, G: 0.65, B: 0.85},
		{R: 0.40, G: 0.90, B: 0.95},
		{R: 0.00, G: 0.20, B: 0.45},
	},
	"neon": {
		{R: 1.00, G: 0.10, B: 0.60},
		{R: 0.10, G: 1.00, B: 0.80},
		{R: 0.95, G: 1.00, B: 0.10},
		{R: 0.45, G: 0.10, B: 1.00},
	},
}

// colorJitter is the per-channel random variation applied around a palette
// entry so particles of one scheme do not look flat.
const colorJitter = 0.08

// Random draws a color near a random palette entry.
func (s Scheme) Random(rng *rand.Rand) RGB {
	if len(s) == 0 {
		return RGB{R: 1, G: 1, B: 1}
	}
	base := s[rng.Intn(len(s))]
	return RGB{
		R: clamp01(base.R + (rng.Float64()*2-1)*colorJitter),
		G: clamp01(base.G + (rng.Float64()*2-1)*colorJitter),
		B: clamp01(base.B + (rng.Float64()*2-1)*colorJitter),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SchemeNames returns the built-in scheme names in stable order.
func SchemeNames() []string {
	names := make([]string, 0, len(builtinSchemes))
	for name := range builtinSchemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupScheme returns the named built-in scheme.
func LookupScheme(name string) (Scheme, bool) {
	s, ok := builtinSchemes[name]
	return s, ok
}
