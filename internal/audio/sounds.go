package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

const (
	blipLength   = 60 * time.Millisecond
	thudLength   = 90 * time.Millisecond
	chimeNote    = 80 * time.Millisecond
	loseNote     = 140 * time.Millisecond
	sweepLength  = 400 * time.Millisecond
	attackLength = 4 * time.Millisecond
)

// powerUpPitches indexes the collect chime's second note by power-up type.
var powerUpPitches = []float64{1046.50, 1174.66, 1318.51, 1396.91, 392.00, 329.63}

// Effect builds the streamer for a game event, or nil for events that are
// silent. The brick blip rises in pitch with the event value.
func Effect(ev core.Event, rate beep.SampleRate) beep.Streamer {
	switch ev.Kind {
	case core.EventBrickHit:
		freq := 520 + float64(ev.Value%200)
		return blip(freq, blipLength, WaveSquare, rate)
	case core.EventSolidHit:
		return blip(140, thudLength, WaveSaw, rate)
	case core.EventPaddleHit:
		return blip(330, blipLength, WaveSine, rate)
	case core.EventPowerUp:
		second := powerUpPitches[0]
		if ev.Value >= 0 && ev.Value < len(powerUpPitches) {
			second = powerUpPitches[ev.Value]
		}
		return beep.Seq(
			blip(783.99, chimeNote, WaveSquare, rate),
			blip(second, chimeNote, WaveSquare, rate),
		)
	case core.EventLifeLost:
		return beep.Seq(
			blip(392, loseNote, WaveSaw, rate),
			blip(311.13, loseNote, WaveSaw, rate),
			blip(261.63, loseNote*2, WaveSaw, rate),
		)
	case core.EventRunOver:
		return beep.Mix(
			gain(Shape(Tone(0, sweepLength, WaveNoise, rate), sweepLength, attackLength, sweepLength/2, rate), 0.3),
			gain(blip(196, sweepLength, WaveSine, rate), 0.7),
		)
	}
	return nil
}

func blip(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return Shape(Tone(freq, d, wave, rate), d, attackLength, d/2, rate)
}
