package parameter

// Terrain and props
const (
	// FloorSize is the edge length of the square floor plane
	FloorSize = 300.0

	// TreeCount trees are placed evenly on a ring
	TreeCount = 6

	// TreeRingRadius is the ring's distance from the origin
	TreeRingRadius = 100.0

	// OrbHeight is the light orb's height above its tree
	OrbHeight = 60.0

	// OrbMaxSpin bounds each orb's per-axis spin rate, radians per second
	OrbMaxSpin = 5.0

	// MarkerSize is the edge length of the box at the origin
	MarkerSize = 10.0

	// MarkerHeight is the box center's height
	MarkerHeight = 10.0

	// MarkerSpin is the box's yaw rate, radians per second
	MarkerSpin = 10.0
)
