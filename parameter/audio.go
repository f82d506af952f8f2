package parameter

import "time"

// Audio defaults
const (
	AudioSampleRate = 48000
	AudioBufferTime = 100 * time.Millisecond
	AudioVolume     = 0.6
)

// Shot sound: a plucked string over a short air burst
const (
	ShotSoundDuration = 260 * time.Millisecond
	ShotSoundAttack   = 4 * time.Millisecond
	ShotSoundRelease  = 200 * time.Millisecond
	ShotStringFreq    = 196.0
	ShotStringMix     = 0.7

	ShotWhooshDuration = 120 * time.Millisecond
	ShotWhooshAttack   = 10 * time.Millisecond
	ShotWhooshRelease  = 90 * time.Millisecond
	ShotWhooshMix      = 0.3
)
