package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/longbow/parameter"
)

// Preset is the set of knobs that differ between demo variants
type Preset struct {
	MaxProjectiles int
	Fog            FogConfig
	Shadows        string
}

var presets = map[string]Preset{
	parameter.VariantNight: {
		MaxProjectiles: parameter.NightMaxProjectiles,
		Fog:            FogConfig{Color: parameter.NightFogColor, Near: parameter.NightFogNear, Far: parameter.NightFogFar},
		Shadows:        parameter.NightShadows,
	},
	parameter.VariantMeadow: {
		MaxProjectiles: parameter.MeadowMaxProjectiles,
		Fog:            FogConfig{Color: parameter.MeadowFogColor, Near: parameter.MeadowFogNear, Far: parameter.MeadowFogFar},
		Shadows:        parameter.MeadowShadows,
	},
}

// Variants returns the known variant names, sorted
func Variants() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PresetFor returns the knobs of a named variant
func PresetFor(name string) (Preset, bool) {
	p, ok := presets[strings.ToLower(name)]
	return p, ok
}

// applyVariant installs preset values as defaults so file and env still win
func applyVariant(v *viper.Viper, name string) error {
	p, ok := PresetFor(name)
	if !ok {
		return fmt.Errorf("%w: %q (known: %s)", ErrUnknownVariant, name, strings.Join(Variants(), ", "))
	}

	v.SetDefault("archery.maxProjectiles", p.MaxProjectiles)
	v.SetDefault("fog.color", p.Fog.Color)
	v.SetDefault("fog.near", p.Fog.Near)
	v.SetDefault("fog.far", p.Fog.Far)
	v.SetDefault("scene.shadows", p.Shadows)
	return nil
}
