package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/longbow/parameter"
)

// Player owns the speaker and replays the rendered shot
// Every method is safe to call before or without Initialize; the demo runs silent without a device
type Player struct {
	mu          sync.Mutex
	cfg         Config
	shot        *beep.Buffer
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	log         zerolog.Logger

	// Shots requested, played or not
	triggered int
}

// NewPlayer creates a player for the pre-rendered shot buffer
func NewPlayer(cfg Config, shot *beep.Buffer, log zerolog.Logger) *Player {
	return &Player{
		cfg:   cfg.normalized(),
		shot:  shot,
		mixer: &beep.Mixer{},
		log:   log.With().Str("component", "audio").Logger(),
	}
}

// Initialize opens the speaker; a disabled config is a silent no-op
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferTime)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	p.log.Info().Int("sample_rate", p.cfg.SampleRate).Msg("speaker ready")
	return nil
}

// PlayShot queues the release sound and returns immediately
func (p *Player) PlayShot() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.triggered++
	if !p.initialized || p.muted || p.shot == nil {
		return
	}

	s := p.shot.Streamer(0, p.shot.Len())
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted toggles output without closing the speaker
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports the mute state
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Triggered returns how many shots were requested
func (p *Player) Triggered() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.triggered
}

// Initialized reports whether a speaker is attached
func (p *Player) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Cleanup silences the mixer
// beep has no speaker close, clearing the mixer leaves nothing playing
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
