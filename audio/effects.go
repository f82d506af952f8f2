package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/longbow/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates an oscillator; noise is seeded so renders are repeatable
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewPCG(uint64(freq)+1, uint64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and an exponential-looking release
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration with the given attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			r := float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			vol = r * r
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s at linear gain vol; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateShotSound builds the release sound: a plucked string over a short air burst
func CreateShotSound(cfg Config) beep.Streamer {
	cfg = cfg.normalized()
	rate := beep.SampleRate(cfg.SampleRate)

	pluck := NewOscillator(parameter.ShotStringFreq, parameter.ShotSoundDuration, WaveTriangle, rate)
	pluckShaped := NewEnvelope(pluck, parameter.ShotSoundDuration, parameter.ShotSoundAttack, parameter.ShotSoundRelease, rate)

	air := NewOscillator(0, parameter.ShotWhooshDuration, WaveNoise, rate)
	airShaped := NewEnvelope(air, parameter.ShotWhooshDuration, parameter.ShotWhooshAttack, parameter.ShotWhooshRelease, rate)

	mixed := beep.Mix(
		newVolume(pluckShaped, parameter.ShotStringMix),
		newVolume(airShaped, parameter.ShotWhooshMix),
	)
	return newVolume(mixed, cfg.Volume)
}

// RenderShot pre-renders the shot sound so every trigger only replays a buffer
func RenderShot(cfg Config) *beep.Buffer {
	cfg = cfg.normalized()
	format := beep.Format{SampleRate: beep.SampleRate(cfg.SampleRate), NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)
	buf.Append(CreateShotSound(cfg))
	return buf
}
