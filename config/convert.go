package config

import (
	"fmt"

	"github.com/lixenwraith/longbow/assets"
	"github.com/lixenwraith/longbow/audio"
	"github.com/lixenwraith/longbow/bow"
	"github.com/lixenwraith/longbow/engine"
	"github.com/lixenwraith/longbow/input"
	"github.com/lixenwraith/longbow/logging"
	"github.com/lixenwraith/longbow/parameter"
	"github.com/lixenwraith/longbow/physics"
	"github.com/lixenwraith/longbow/projectile"
	"github.com/lixenwraith/longbow/render"
	"github.com/lixenwraith/longbow/scene"
)

// Settings maps the archery and movement sections onto simulation tuning
func (c *Config) Settings() engine.Settings {
	a, m := c.Archery, c.Movement
	return engine.Settings{
		Move: physics.MoveTuning{
			Speed:     m.Speed,
			Sprint:    m.SprintModifier,
			Reduction: m.Reduction,
		},
		Draw: bow.DrawTuning{
			Rate:     a.DrawRate,
			MaxPower: parameter.MaxDrawPower,
			MinFire:  a.MinFirePower,
		},
		Launch: projectile.LaunchTuning{
			TTL:         a.ProjectileTTL,
			SpawnOffset: a.SpawnOffset,
		},
		Pool: projectile.PoolTuning{
			Capacity:  a.MaxProjectiles,
			Speed:     a.ProjectileSpeed,
			DecayRate: a.DecayRate,
		},
		TurnRate:  m.TurnRate,
		PitchRate: m.PitchRate,
	}
}

// AudioConfig returns the player settings
func (c *Config) AudioConfig() audio.Config {
	return audio.Config{
		Enabled:    c.Audio.Enabled,
		SampleRate: c.Audio.SampleRate,
		Volume:     c.Audio.Volume,
	}
}

// LogConfig returns the logger settings
func (c *Config) LogConfig() logging.Config {
	return logging.Config{
		Enabled: c.Log.Enabled,
		Path:    c.Log.Path,
		Level:   c.Log.Level,
	}
}

// RenderOptions returns the fog and shadow presentation
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Fog: render.Fog{
			Color: c.Fog.Color,
			Near:  c.Fog.Near,
			Far:   c.Fog.Far,
		},
		Shadows: c.Scene.Shadows,
		Scale:   parameter.ViewScale,
	}
}

// AssetSources returns what assets.Load resolves at startup
func (c *Config) AssetSources() assets.Sources {
	return assets.Sources{
		RigPath: c.Scene.Rig,
		Audio:   c.AudioConfig(),
		Layout:  scene.DefaultLayout(),
		Seed:    c.Scene.Seed,
	}
}

// KeyTable returns the default bindings with input.keys applied on top
func (c *Config) KeyTable() (*input.KeyTable, error) {
	if len(c.Input.Keys) == 0 {
		return input.DefaultKeyTable(), nil
	}
	override, err := input.LoadKeyConfig(c.Input.Keys)
	if err != nil {
		return nil, fmt.Errorf("input.keys: %w", err)
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}
