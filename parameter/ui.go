package parameter

// Top-down view
const (
	// ViewScale is world units per terminal column
	ViewScale = 2.0

	// ViewRowAspect is how many columns' worth of world one row covers
	// Terminal cells are roughly twice as tall as wide
	ViewRowAspect = 2.0

	// HUDRows are reserved at the bottom for the status bar
	HUDRows = 2

	// PowerBarWidth is the draw meter's cell count
	PowerBarWidth = 20
)

// Shadow cast by elevated props; X offset per unit of height
const (
	ShadowSlant = 0.3

	// ShadowHardAlpha darkens the floor under a hard shadow
	ShadowHardAlpha = 0.8

	// ShadowSoftAlpha is the core of a soft shadow; the four neighbours get half
	ShadowSoftAlpha = 0.5
)

// Status bar symbols
const (
	PowerFullChar  = '█'
	PowerEmptyChar = '░'
	NockChar       = '➶'
	PausedText     = " PAUSED "
)
