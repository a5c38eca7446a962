package sim

// Field geometry and force tuning shared by the engine and the spawner.
// These are fixed characteristics of the field, not user configuration.
const (
	// HandSlots is the number of tracked hand slots.
	HandSlots = 2

	// BoundaryRadius is the per-axis extent of the field; particles
	// crossing it are reflected.
	BoundaryRadius = 700.0
	// HandRadius is the influence radius of a hand; beyond it a hand
	// contributes no force.
	HandRadius = 400.0
	// DestroyRadius is the tighter radius within which a fist drains
	// particle lifetime.
	DestroyRadius = 100.0
	// SupernovaRadius is the pull radius of the dual-pinch midpoint.
	SupernovaRadius = 500.0

	// sentinelDepth parks the Z coordinate of an inactive slot far behind
	// the field; any depth at or below inactiveDepth reads as inactive.
	sentinelDepth = -10000.0
	inactiveDepth = -5000.0

	// fieldScale maps normalized camera coordinates onto field units,
	// mirroring X and Y so the field moves like a mirror image.
	fieldScale = 800.0
	// depthScale maps MediaPipe relative depth onto field units.
	depthScale = 200.0

	// dualAmplifier boosts point/peace/fist forces when both hands hold
	// the same gesture.
	dualAmplifier = 1.5
	// dualSpinFactor boosts the tangential pinch force when both hands
	// pinch.
	dualSpinFactor = 2.0
	// supernovaFactor scales the attract force for the dual-pinch
	// midpoint pull.
	supernovaFactor = 2.0
	// pinchInwardFactor is the weak inward pull that accompanies a spin.
	pinchInwardFactor = 0.3
	// spinScale keeps the tangential term on the same order as the
	// linear forces.
	spinScale = 0.01
	// destroyPace is the lifetime drain per second of fist contact. The
	// DestroyRate config field is retained for preset compatibility but
	// the engine paces destruction with this constant.
	destroyPace = 3.0
	// shrinkFactor shrinks a dying particle each frame before removal.
	shrinkFactor = 0.95
	// distanceEpsilon avoids division by zero when a particle sits
	// exactly on a hand.
	distanceEpsilon = 0.001

	// dualCreateFactor slows per-hand spawning when both palms create.
	dualCreateFactor = 0.75
	// spawnJitter is the half-extent of the random spawn offset per axis.
	spawnJitter = 25.0
	// spawnVelocityInherit is how much of the hand velocity a new
	// particle inherits.
	spawnVelocityInherit = 0.3
	// spawnVelocityJitter is the half-extent of random spawn velocity.
	spawnVelocityJitter = 2.0
	// spawnSizeSpread widens the random size range above BaseSize.
	spawnSizeSpread = 3.0
)

// Config holds the tunable parameters of a simulation. It is fixed for the
// lifetime of the run, except for the color scheme which may be switched
// live.
type Config struct {
	// MaxCount is the particle pool capacity.
	MaxCount int `json:"max_count"`
	// InitialCount is the number of particles seeded at startup.
	InitialCount int `json:"initial_count"`
	// BaseSize is the minimum size of a spawned particle.
	BaseSize float64 `json:"base_size"`
	// CreateRate is particles per second per creating hand.
	CreateRate float64 `json:"create_rate"`
	// DestroyRate is declared for presets but currently unused by the
	// engine; see destroyPace.
	DestroyRate float64 `json:"destroy_rate"`
	// AttractForce scales the point-gesture pull.
	AttractForce float64 `json:"attract_force"`
	// RepelForce scales the peace-gesture push.
	RepelForce float64 `json:"repel_force"`
	// SpinForce scales the pinch-gesture tangential force.
	SpinForce float64 `json:"spin_force"`
	// Friction is the per-frame velocity retention factor.
	Friction float64 `json:"friction"`
	// MaxSpeed caps particle speed after friction.
	MaxSpeed float64 `json:"max_speed"`
	// ColorScheme names the palette new particles draw colors from.
	ColorScheme string `json:"color_scheme"`
	// Seed fixes the random source; 0 picks a time-based seed.
	Seed int64 `json:"-"`
}

// DefaultConfig returns the tuning the field ships with.
func DefaultConfig() Config {
	return Config{
		MaxCount:     20000,
		InitialCount: 5000,
		BaseSize:     2.0,
		CreateRate:   150,
		DestroyRate:  3.0,
		AttractForce: 0.15,
		RepelForce:   0.2,
		SpinForce:    2.5,
		Friction:     0.97,
		MaxSpeed:     8.0,
		ColorScheme:  "cosmic",
	}
}
