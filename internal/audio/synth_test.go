package audio

import (
	"encoding/binary"
	"math"
	"testing"
)

func sampleAt(pcm []byte, frame int) (left, right int16) {
	left = int16(binary.LittleEndian.Uint16(pcm[frame*4:]))
	right = int16(binary.LittleEndian.Uint16(pcm[frame*4+2:]))
	return left, right
}

func TestRender_LengthIsStereo16Bit(t *testing.T) {
	pcm := Render(Tone{Freq: 440, Duration: 0.5, Volume: 0.1, Wave: Sine})

	wantFrames := int(math.Ceil(0.5 * SampleRate))
	if len(pcm) != wantFrames*4 {
		t.Errorf("len = %d, want %d", len(pcm), wantFrames*4)
	}
}

func TestRender_DelayExtendsClip(t *testing.T) {
	pcm := Render(
		Tone{Freq: 440, Duration: 0.2, Volume: 0.1},
		Tone{Freq: 659, Duration: 0.3, Volume: 0.1, Delay: 0.4},
	)
	if got, want := len(pcm)/4, int(math.Ceil(0.7*SampleRate)); got != want {
		t.Errorf("frames = %d, want %d", got, want)
	}
	// Между нотами тишина
	if l, _ := sampleAt(pcm, int(0.3*SampleRate)); l != 0 {
		t.Errorf("gap sample = %d, want 0", l)
	}
}

func TestRender_ChannelsMatchAndStayBelowVolume(t *testing.T) {
	const volume = 0.2
	for _, wave := range []Waveform{Sine, Square, Sawtooth} {
		pcm := Render(Tone{Freq: 300, Duration: 0.2, Volume: volume, Wave: wave})
		limit := int16(math.Trunc(volume*math.MaxInt16)) + 1
		for i := 0; i < len(pcm)/4; i++ {
			l, r := sampleAt(pcm, i)
			if l != r {
				t.Fatalf("wave %d frame %d: left %d != right %d", wave, i, l, r)
			}
			if l > limit || l < -limit {
				t.Fatalf("wave %d frame %d: sample %d exceeds volume", wave, i, l)
			}
		}
	}
}

func TestRender_MixIsClipped(t *testing.T) {
	loud := Tone{Freq: 100, Duration: 0.05, Volume: 1, Wave: Square, Sustain: true}
	pcm := Render(loud, loud, loud)
	for i := 0; i < len(pcm)/4; i++ {
		if l, _ := sampleAt(pcm, i); l == math.MinInt16 {
			t.Fatalf("frame %d overflowed", i)
		}
	}
}

func TestEnvelope(t *testing.T) {
	tone := Tone{Duration: 1, Volume: 0.5}
	if v := tone.envelope(0); v != 0 {
		t.Errorf("envelope(0) = %v, want 0", v)
	}
	if v := tone.envelope(attackTime); math.Abs(v-0.5) > 1e-9 {
		t.Errorf("envelope at peak = %v, want 0.5", v)
	}
	if v := tone.envelope(0.999); v > 0.01 {
		t.Errorf("envelope near end = %v, want close to decay floor", v)
	}
	if v := tone.envelope(1); v != 0 {
		t.Errorf("envelope after end = %v, want 0", v)
	}
	tone.Sustain = true
	if v := tone.envelope(0.5); v != 0.5 {
		t.Errorf("sustained envelope = %v, want 0.5", v)
	}
}

func TestMelody_LaysNotesBackToBack(t *testing.T) {
	tones := Melody(Sine, 0.1, Note{220, 0.5}, Note{247, 0.25}, Note{277, 1})
	wantDelays := []float64{0, 0.5, 0.75}
	for i, tone := range tones {
		if tone.Delay != wantDelays[i] {
			t.Errorf("tone %d delay = %v, want %v", i, tone.Delay, wantDelays[i])
		}
	}
}
