package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// renderer fills interleaved stereo frames; *Engine is the only one in use
type renderer interface {
	Process(dst []float32)
}

// StreamReader pulls frames from the engine as little-endian float32 stereo,
// the layout ebiten's F32 players expect
type StreamReader struct {
	mu     sync.Mutex
	engine renderer
	frames []float32
}

func NewStreamReader(e renderer) *StreamReader {
	return &StreamReader{engine: e}
}

func (r *StreamReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(p) / 8 * 2
	if n == 0 {
		return 0, nil
	}
	if cap(r.frames) < n {
		r.frames = make([]float32, n)
	}
	r.frames = r.frames[:n]
	r.engine.Process(r.frames)
	for i, s := range r.frames {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(s))
	}
	return n * 4, nil
}

func (r *StreamReader) Close() error { return nil }

// sink is the part of *ebitaudio.Player that Close needs
type sink interface {
	Pause()
	Close() error
}

// Player keeps an engine sounding on the speakers until Close
type Player struct {
	player sink
	reader *StreamReader
}

var (
	sharedOnce sync.Once
	shared     *ebitaudio.Context
	sharedRate int
)

// ebiten allows one audio context per process
func audioContext(sampleRate int) (*ebitaudio.Context, error) {
	sharedOnce.Do(func() {
		sharedRate = sampleRate
		shared = ebitaudio.NewContext(sampleRate)
	})
	if sharedRate != sampleRate {
		return nil, fmt.Errorf("audio already running at %d Hz, cannot open %d Hz", sharedRate, sampleRate)
	}
	return shared, nil
}

// Open starts streaming the engine right away
func Open(e *Engine) (*Player, error) {
	ctx, err := audioContext(e.SampleRate())
	if err != nil {
		return nil, err
	}
	reader := NewStreamReader(e)
	pl, err := ctx.NewPlayerF32(reader)
	if err != nil {
		return nil, fmt.Errorf("open audio player: %w", err)
	}
	// Keep latency low so pads feel immediate
	pl.SetBufferSize(20 * time.Millisecond)
	pl.Play()
	return &Player{player: pl, reader: reader}, nil
}

func (p *Player) Close() error {
	p.player.Pause()
	return errors.Join(p.player.Close(), p.reader.Close())
}
