package parameter

// Player movement
const (
	// MoveSpeed is the acceleration applied per held direction, units/s²
	MoveSpeed = 200.0

	// SprintModifier multiplies MoveSpeed while sprint is held
	SprintModifier = 2.0

	// MoveReduction is the per-second damping factor on planar velocity
	MoveReduction = 10.0
)
