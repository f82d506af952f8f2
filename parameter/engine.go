package parameter

import "time"

// Frame loop timing
const (
	// FrameUpdateInterval is the render/tick cadence (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single tick's dt in seconds
	// Longer stalls are simulated as this much time
	MaxFrameDelta = 0.1

	// EventChannelSize is the buffered capacity between the poller and the frame loop
	EventChannelSize = 256
)

// Terminal input
const (
	// KeyHoldTimeout keeps a key latched between autorepeat events
	// Terminals report presses only; a key counts as released once repeats stop for this long
	KeyHoldTimeout = 150 * time.Millisecond

	// KeyInitialHoldTimeout latches a fresh press until the first autorepeat
	// Terminal repeat delays run 250-660ms
	KeyInitialHoldTimeout = 700 * time.Millisecond
)
