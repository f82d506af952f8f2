package parameter

// Demo variants
const (
	VariantNight  = "night"
	VariantMeadow = "meadow"

	DefaultVariant = VariantNight
)

// Night variant: dark fog close in, soft shadows
const (
	NightMaxProjectiles = 5
	NightFogColor       = 0x010101
	NightFogNear        = 200.0
	NightFogFar         = 300.0
	NightShadows        = "soft"
)

// Meadow variant: white haze far out, no shadows
const (
	MeadowMaxProjectiles = 10
	MeadowFogColor       = 0xffffff
	MeadowFogNear        = 0.0
	MeadowFogFar         = 750.0
	MeadowShadows        = "none"
)
