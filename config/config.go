// Package config loads the demo's variant configuration through viper
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/longbow/parameter"
)

// EnvPrefix namespaces environment overrides, e.g. LONGBOW_ARCHERY_MAXPROJECTILES
const EnvPrefix = "LONGBOW"

var (
	ErrUnknownVariant = errors.New("unknown variant")
	ErrInvalid        = errors.New("invalid configuration")
)

// ArcheryConfig holds the draw, launch and pool knobs
type ArcheryConfig struct {
	MaxProjectiles  int     `mapstructure:"maxProjectiles"`
	ProjectileTTL   float64 `mapstructure:"projectileTTL"`
	DecayRate       float64 `mapstructure:"decayRate"`
	ProjectileSpeed float64 `mapstructure:"projectileSpeed"`
	SpawnOffset     float64 `mapstructure:"spawnOffset"`
	DrawRate        float64 `mapstructure:"drawRate"`
	MinFirePower    float64 `mapstructure:"minFirePower"`
}

// MovementConfig holds the integrator knobs
type MovementConfig struct {
	Speed          float64 `mapstructure:"speed"`
	SprintModifier float64 `mapstructure:"sprintModifier"`
	Reduction      float64 `mapstructure:"reduction"`
	TurnRate       float64 `mapstructure:"turnRate"`
	PitchRate      float64 `mapstructure:"pitchRate"`
}

// FogConfig is distance fog; Color is 0xRRGGBB
type FogConfig struct {
	Color uint32  `mapstructure:"color"`
	Near  float64 `mapstructure:"near"`
	Far   float64 `mapstructure:"far"`
}

// SceneConfig holds procedural population knobs
// Rig is a YAML rig descriptor path; empty uses the built-in recurve
type SceneConfig struct {
	Seed    uint64 `mapstructure:"seed"`
	Shadows string `mapstructure:"shadows"`
	Rig     string `mapstructure:"rig"`
}

// AudioConfig controls the shot sound
type AudioConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	Volume     float64 `mapstructure:"volume"`
	SampleRate int     `mapstructure:"sampleRate"`
}

// LogConfig controls the file logger
type LogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	Level   string `mapstructure:"level"`
}

// JournalConfig controls the shot journal; an empty path keeps it in memory
type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// TelemetryConfig toggles metric instruments
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// InputConfig holds terminal input knobs; Keys maps key name to action name
type InputConfig struct {
	InitialHoldTimeout time.Duration     `mapstructure:"initialHoldTimeout"`
	HoldTimeout        time.Duration     `mapstructure:"holdTimeout"`
	Keys               map[string]string `mapstructure:"keys"`
}

// Config is the full demo configuration; one struct covers every variant
type Config struct {
	Variant   string          `mapstructure:"variant"`
	Archery   ArcheryConfig   `mapstructure:"archery"`
	Movement  MovementConfig  `mapstructure:"movement"`
	Fog       FogConfig       `mapstructure:"fog"`
	Scene     SceneConfig     `mapstructure:"scene"`
	Audio     AudioConfig     `mapstructure:"audio"`
	Log       LogConfig       `mapstructure:"log"`
	Journal   JournalConfig   `mapstructure:"journal"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Input     InputConfig     `mapstructure:"input"`
}

// Load reads an optional config file (yaml, toml or json by extension), applies
// LONGBOW_ environment overrides, and fills everything else from the selected variant
// variant overrides the file's variant when non-empty
func Load(path, variant string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if variant != "" {
		v.Set("variant", variant)
	}
	if err := applyVariant(v, v.GetString("variant")); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the stock configuration for variant
func Default(variant string) (*Config, error) {
	return Load("", variant)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("variant", parameter.DefaultVariant)

	v.SetDefault("archery.projectileTTL", parameter.ProjectileTTL)
	v.SetDefault("archery.decayRate", parameter.ProjectileDecayRate)
	v.SetDefault("archery.projectileSpeed", parameter.ProjectileSpeed)
	v.SetDefault("archery.spawnOffset", parameter.ProjectileSpawnOffset)
	v.SetDefault("archery.drawRate", parameter.DrawRate)
	v.SetDefault("archery.minFirePower", parameter.MinFirePower)

	v.SetDefault("movement.speed", parameter.MoveSpeed)
	v.SetDefault("movement.sprintModifier", parameter.SprintModifier)
	v.SetDefault("movement.reduction", parameter.MoveReduction)
	v.SetDefault("movement.turnRate", parameter.CameraTurnRate)
	v.SetDefault("movement.pitchRate", parameter.CameraPitchRate)

	v.SetDefault("scene.seed", 0)
	v.SetDefault("scene.rig", "")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", parameter.AudioVolume)
	v.SetDefault("audio.sampleRate", parameter.AudioSampleRate)

	v.SetDefault("log.enabled", false)
	v.SetDefault("log.path", "longbow.log")
	v.SetDefault("log.level", "info")

	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.path", "")

	v.SetDefault("telemetry.enabled", true)

	v.SetDefault("input.initialHoldTimeout", parameter.KeyInitialHoldTimeout)
	v.SetDefault("input.holdTimeout", parameter.KeyHoldTimeout)
	v.SetDefault("input.keys", map[string]string{})
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	a := c.Archery
	check(a.MaxProjectiles >= 1, "archery.maxProjectiles must be >= 1, got %d", a.MaxProjectiles)
	check(a.ProjectileTTL > 0, "archery.projectileTTL must be > 0, got %g", a.ProjectileTTL)
	check(a.DecayRate > 0, "archery.decayRate must be > 0, got %g", a.DecayRate)
	check(a.ProjectileSpeed >= 0, "archery.projectileSpeed must be >= 0, got %g", a.ProjectileSpeed)
	check(a.DrawRate > 0, "archery.drawRate must be > 0, got %g", a.DrawRate)
	check(a.MinFirePower >= 0 && a.MinFirePower < parameter.MaxDrawPower,
		"archery.minFirePower must be in [0, %g), got %g", parameter.MaxDrawPower, a.MinFirePower)

	m := c.Movement
	check(m.Speed >= 0, "movement.speed must be >= 0, got %g", m.Speed)
	check(m.SprintModifier >= 1, "movement.sprintModifier must be >= 1, got %g", m.SprintModifier)
	check(m.Reduction >= 0, "movement.reduction must be >= 0, got %g", m.Reduction)

	check(c.Fog.Color <= 0xffffff, "fog.color must be 0xRRGGBB, got %#x", c.Fog.Color)
	check(c.Fog.Near >= 0 && c.Fog.Far > c.Fog.Near, "fog range must satisfy 0 <= near < far, got %g..%g", c.Fog.Near, c.Fog.Far)

	check(c.Scene.Shadows == "none" || c.Scene.Shadows == "hard" || c.Scene.Shadows == "soft",
		"scene.shadows must be none, hard or soft, got %q", c.Scene.Shadows)

	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be in [0, 1], got %g", c.Audio.Volume)
	check(c.Input.HoldTimeout > 0, "input.holdTimeout must be > 0, got %v", c.Input.HoldTimeout)
	check(c.Input.InitialHoldTimeout >= c.Input.HoldTimeout,
		"input.initialHoldTimeout must be >= input.holdTimeout, got %v", c.Input.InitialHoldTimeout)

	return errors.Join(errs...)
}
