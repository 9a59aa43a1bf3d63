package audio

import (
	"math"
	"sync"
)

// Waveform selects the oscillator shape
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveSine
	WaveSawtooth
	WaveTriangle
)

// Defaults match the pad keyboard: quiet square waves a semitone sharp
const (
	DefaultSampleRate  = 48000
	DefaultGain        = 0.1
	DefaultDetuneCents = 100
)

type Params struct {
	SampleRate  int
	Gain        float64
	DetuneCents float64
	Waveform    Waveform
}

func DefaultParams() Params {
	return Params{
		SampleRate:  DefaultSampleRate,
		Gain:        DefaultGain,
		DetuneCents: DefaultDetuneCents,
		Waveform:    WaveSquare,
	}
}

// Voice is one sounding oscillator. It belongs to the Engine that created it.
type Voice struct {
	engine *Engine
	id     int
	freq   float64
	phase  float64
	active bool
}

// Frequency is the requested pitch, before detune
func (v *Voice) Frequency() float64 {
	v.engine.mu.Lock()
	defer v.engine.mu.Unlock()
	return v.freq
}

// SetFrequency retunes a sounding voice without restarting it
func (v *Voice) SetFrequency(freq float64) {
	v.engine.mu.Lock()
	v.freq = freq
	v.engine.mu.Unlock()
}

// Active reports whether the voice is still sounding
func (v *Voice) Active() bool {
	v.engine.mu.Lock()
	defer v.engine.mu.Unlock()
	return v.active
}

// Stop silences this voice only
func (v *Voice) Stop() {
	v.engine.Stop(v)
}

// Engine owns the shared gain stage and every active voice.
// Process runs on the audio thread; everything else on the caller's.
type Engine struct {
	mu          sync.Mutex
	sampleRate  float64
	gain        float64
	detuneRatio float64
	wave        Waveform
	voices      []*Voice
	nextID      int
}

func NewEngine(params Params) *Engine {
	if params.SampleRate <= 0 {
		params.SampleRate = DefaultSampleRate
	}
	return &Engine{
		sampleRate:  float64(params.SampleRate),
		gain:        params.Gain,
		detuneRatio: math.Pow(2, params.DetuneCents/1200),
		wave:        params.Waveform,
	}
}

func (e *Engine) SampleRate() int {
	return int(e.sampleRate)
}

// PlayFrequency starts a new voice immediately and keeps it until stopped
func (e *Engine) PlayFrequency(freq float64) *Voice {
	e.mu.Lock()
	defer e.mu.Unlock()
	v := &Voice{engine: e, id: e.nextID, freq: freq, active: true}
	e.nextID++
	e.voices = append(e.voices, v)
	return v
}

// Stop silences one voice. Stopping twice is harmless.
func (e *Engine) Stop(v *Voice) {
	if v == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !v.active {
		return
	}
	v.active = false
	for i, cur := range e.voices {
		if cur == v {
			e.voices = append(e.voices[:i], e.voices[i+1:]...)
			break
		}
	}
}

// StopAll silences every voice. Safe with no voices.
func (e *Engine) StopAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, v := range e.voices {
		v.active = false
	}
	clear(e.voices)
	e.voices = e.voices[:0]
}

// Active returns the number of sounding voices
func (e *Engine) Active() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.voices)
}

// Voices returns the sounding voices, oldest first
func (e *Engine) Voices() []*Voice {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*Voice, len(e.voices))
	copy(out, e.voices)
	return out
}

func (e *Engine) SetGain(g float64) {
	e.mu.Lock()
	e.gain = g
	e.mu.Unlock()
}

func (e *Engine) Gain() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gain
}

// Process fills dst with interleaved stereo samples
func (e *Engine) Process(dst []float32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := 0; i+1 < len(dst); i += 2 {
		var sum float64
		for _, v := range e.voices {
			sum += oscillate(e.wave, v.phase)
			v.phase += v.freq * e.detuneRatio / e.sampleRate
			if v.phase < 0 || v.phase >= 1 {
				v.phase -= math.Floor(v.phase)
			}
		}
		s := float32(sum * e.gain)
		dst[i] = s
		dst[i+1] = s
	}
}

// oscillate returns the waveform value at phase in [0, 1)
func oscillate(w Waveform, phase float64) float64 {
	switch w {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSawtooth:
		return 2*phase - 1
	case WaveTriangle:
		if phase < 0.5 {
			return 4*phase - 1
		}
		return 3 - 4*phase
	default:
		if phase < 0.5 {
			return 1
		}
		return -1
	}
}

// ParseWaveform maps a config name to a Waveform, defaulting to square
func ParseWaveform(name string) Waveform {
	switch name {
	case "sine":
		return WaveSine
	case "sawtooth", "saw":
		return WaveSawtooth
	case "triangle":
		return WaveTriangle
	default:
		return WaveSquare
	}
}
