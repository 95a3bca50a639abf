// Package audio plays short sound cues for guesses and round results.
//
// Sound is optional: when the speaker cannot be initialised the game keeps
// running with a no-op player.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Cue is a named sound.
type Cue int

const (
	Correct Cue = iota
	Wrong
	Win
	Loss
)

// Player plays cues without blocking.
type Player interface {
	Play(c Cue)
}

// Tone is one note of a cue. A zero frequency is a rest.
type Tone struct {
	Freq float64
	Dur  time.Duration
}

// Tones returns the notes of c.
func Tones(c Cue) []Tone {
	switch c {
	case Correct:
		return []Tone{{880, 50 * time.Millisecond}}
	case Wrong:
		return []Tone{{220, 80 * time.Millisecond}}
	case Win:
		return []Tone{
			{523.25, 90 * time.Millisecond},
			{659.25, 90 * time.Millisecond},
			{783.99, 90 * time.Millisecond},
			{1046.5, 180 * time.Millisecond},
		}
	case Loss:
		return []Tone{
			{392, 150 * time.Millisecond},
			{0, 40 * time.Millisecond},
			{311.13, 150 * time.Millisecond},
			{0, 40 * time.Millisecond},
			{261.63, 300 * time.Millisecond},
		}
	}
	return nil
}

const sampleRate = beep.SampleRate(44100)

// Speaker plays cues on the default audio device.
type Speaker struct{}

// NewSpeaker initialises the audio device.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Speaker{}, nil
}

// Play queues c on the speaker mixer.
func (s *Speaker) Play(c Cue) {
	var parts []beep.Streamer
	for _, t := range Tones(c) {
		n := sampleRate.N(t.Dur)
		if t.Freq == 0 {
			parts = append(parts, beep.Silence(n))
			continue
		}
		sine, err := generators.SineTone(sampleRate, t.Freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(n, sine))
	}
	if len(parts) > 0 {
		speaker.Play(beep.Seq(parts...))
	}
}

// Close releases the audio device.
func (s *Speaker) Close() { speaker.Close() }

// Nop is a silent Player.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}
