package audio

import "testing"

func TestTones(t *testing.T) {
	for _, c := range []Cue{Correct, Wrong, Win, Loss} {
		tones := Tones(c)
		if len(tones) == 0 {
			t.Errorf("cue %d has no tones", c)
		}
		for _, tone := range tones {
			if tone.Dur <= 0 || tone.Freq < 0 {
				t.Errorf("cue %d tone %+v", c, tone)
			}
		}
	}
	if Tones(Cue(99)) != nil {
		t.Error("unknown cue should be silent")
	}
	Nop{}.Play(Win)
}
