package parameter

import "math"

// First-person camera rig
const (
	// CameraEyeHeight is the rig's height above the floor plane
	CameraEyeHeight = 0.0

	// CameraTurnRate is yaw speed in radians per second while a turn intent is held
	CameraTurnRate = 2.0

	// CameraPitchRate is pitch speed in radians per second while a look intent is held
	CameraPitchRate = 1.2

	// CameraPitchLimit keeps the view just short of straight up/down
	CameraPitchLimit = math.Pi/2 - 0.05
)

// Weapon socket, in camera-local space (right, up, forward)
const (
	BowSocketRight   = 1.0
	BowSocketUp      = 0.0
	BowSocketForward = 4.0

	// BowSocketYaw is the bow mesh's tilt relative to the camera
	BowSocketYaw = 0.2
)

// CameraStartDistance places the rig this far behind the marker, facing it
const CameraStartDistance = 40.0
