package render

// Scene palette, fogged by distance before drawing
var (
	RgbFloor      = RGB{22, 38, 22}    // Dark grass
	RgbFloorEdge  = RGB{60, 70, 50}    // Floor border
	RgbVoid       = RGB{0, 0, 0}       // Beyond the floor
	RgbTree       = RGB{40, 160, 60}   // Tree crown
	RgbOrb        = RGB{255, 230, 140} // Warm light
	RgbMarker     = RGB{200, 80, 220}  // Spinning box
	RgbCamera     = RGB{255, 165, 0}   // Player, orange like the cursor
	RgbProjectile = RGB{230, 230, 230} // Arrow in flight
	RgbNewest     = RGB{255, 255, 255} // Most recent arrow
	RgbShadow     = RGB{0, 0, 0}       // Shadow tint
)

// HUD palette
var (
	RgbStatusBar     = RGB{255, 255, 255} // White
	RgbStatusBg      = RGB{26, 27, 38}    // Tokyo Night background
	RgbPowerEmpty    = RGB{40, 40, 40}
	RgbPowerLow      = RGB{200, 60, 60}   // Below fire threshold
	RgbPowerReady    = RGB{60, 200, 60}   // Will fire
	RgbPhaseDeferred = RGB{255, 200, 0}   // Waiting for aim
	RgbPaused        = RGB{255, 80, 80}   // Paused banner
	RgbDim           = RGB{120, 120, 120} // Secondary text
)
