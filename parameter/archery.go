package parameter

// Bow draw
const (
	// MaxDrawPower is full draw
	MaxDrawPower = 100.0

	// DrawRate is power gained per second of held draw (full draw in 1s)
	DrawRate = 100.0

	// MinFirePower must be strictly exceeded for a release to shoot
	MinFirePower = 50.0
)

// Arrows
const (
	// MaxProjectiles is the default in-flight cap
	MaxProjectiles = 5

	// ProjectileTTL is the initial time-to-live budget
	ProjectileTTL = 500.0

	// ProjectileDecayRate is TTL consumed per second of flight
	ProjectileDecayRate = 100.0

	// ProjectileSpeed is flight speed in units per second
	ProjectileSpeed = 100.0

	// ProjectileSpawnOffset pushes a new arrow forward so it clears the bow mesh
	ProjectileSpawnOffset = 3.0
)
