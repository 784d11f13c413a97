package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// SampleRate is the rate sounds are synthesised at.
const SampleRate = beep.SampleRate(44100)

// maxVoices caps concurrent effects so a burst of brick hits does not pile up.
const maxVoices = 8

// Player mixes event sounds onto the speaker. A Player that was never
// initialised (or has volume 0) accepts events and plays nothing.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player with linear volume in [0, 1].
func NewPlayer(volume float64) *Player {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the speaker. It is safe to call more than once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether events will produce sound.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized && p.volume > 0
}

// Play queues the sounds for a tick's events.
func (p *Player) Play(events []core.Event) {
	if !p.Enabled() {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	for _, ev := range events {
		if p.mixer.Len() >= maxVoices {
			return
		}
		if s := Effect(ev, SampleRate); s != nil {
			p.mixer.Add(gain(s, p.volume))
		}
	}
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
