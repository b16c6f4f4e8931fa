// internal/audio/synth.go
package audio

import (
	"encoding/binary"
	"math"
)

const SampleRate = 44100

// Waveform — форма сигнала осциллятора.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Sawtooth
)

// Tone — одна нота с короткой атакой и экспоненциальным затуханием.
type Tone struct {
	Freq     float64
	Duration float64 // секунды
	Volume   float64 // пиковая амплитуда, 0..1
	Wave     Waveform
	Delay    float64 // смещение от начала клипа, секунды
	Sustain  bool    // без затухания, для музыки
}

const (
	attackTime = 0.01
	decayFloor = 0.001
)

// sample возвращает значение осциллятора в момент t.
func (w Waveform) sample(freq, t float64) float64 {
	phase := math.Mod(freq*t, 1)
	switch w {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope: линейная атака до Volume, затем экспоненциальный спад до decayFloor к концу ноты.
func (t Tone) envelope(at float64) float64 {
	if at < 0 || at >= t.Duration {
		return 0
	}
	if at < attackTime {
		return t.Volume * at / attackTime
	}
	if t.Sustain {
		return t.Volume
	}
	rest := t.Duration - attackTime
	if rest <= 0 {
		return t.Volume
	}
	return t.Volume * math.Pow(decayFloor/t.Volume, (at-attackTime)/rest)
}

// Render смешивает ноты в 16-битный стерео PCM (little endian), который понимает ebiten/audio.
func Render(tones ...Tone) []byte {
	length := 0.0
	for _, t := range tones {
		length = math.Max(length, t.Delay+t.Duration)
	}
	frames := int(math.Ceil(length * SampleRate))
	out := make([]byte, frames*4)
	for i := 0; i < frames; i++ {
		at := float64(i) / SampleRate
		v := 0.0
		for _, t := range tones {
			local := at - t.Delay
			if env := t.envelope(local); env > 0 {
				v += env * t.Wave.sample(t.Freq, local)
			}
		}
		s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}

// Note — нота мелодии.
type Note struct {
	Freq     float64
	Duration float64
}

// Melody раскладывает ноты подряд.
func Melody(wave Waveform, volume float64, notes ...Note) []Tone {
	tones := make([]Tone, 0, len(notes))
	at := 0.0
	for _, n := range notes {
		tones = append(tones, Tone{Freq: n.Freq, Duration: n.Duration, Volume: volume, Wave: wave, Delay: at, Sustain: true})
		at += n.Duration
	}
	return tones
}
