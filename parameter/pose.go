package parameter

// Bow rig pose mapping
const (
	// StringRestOffset is the string joint's lateral position at zero power
	StringRestOffset = -1.0

	// StringTravel is the additional lateral displacement at full draw
	StringTravel = -2.0

	// LimbBendMax is the limb joint Z rotation (radians) at full draw
	LimbBendMax = 0.15

	// NockBaseDepth is the resting arrow's depth offset behind the string
	NockBaseDepth = -5.0
)
