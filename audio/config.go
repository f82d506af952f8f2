// Package audio synthesizes and plays the release sound
package audio

import "github.com/lixenwraith/longbow/parameter"

// Config controls audio output
type Config struct {
	Enabled    bool
	SampleRate int
	Volume     float64 // 0..1
}

// DefaultConfig returns audio enabled at the stock rate and volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		SampleRate: parameter.AudioSampleRate,
		Volume:     parameter.AudioVolume,
	}
}

// normalized fills in a usable rate and clamps volume
func (c Config) normalized() Config {
	if c.SampleRate <= 0 {
		c.SampleRate = parameter.AudioSampleRate
	}
	if c.Volume < 0 {
		c.Volume = 0
	}
	if c.Volume > 1 {
		c.Volume = 1
	}
	return c
}
