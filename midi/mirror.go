package midi

import (
	"sync"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// LEDState is what a pad is currently showing
type LEDState struct {
	Color uint8
	Pulse bool
}

// Mirror forwards frames to an Output and remembers the last LED state of
// every pad, so the lighting can be shown without the hardware.
type Mirror struct {
	out   Output
	mu    sync.RWMutex
	leds  [128]LEDState
	sent  uint64
	onSet func()
}

// NewMirror wraps out. A nil out behaves like Discard.
func NewMirror(out Output) *Mirror {
	if out == nil {
		out = Discard
	}
	return &Mirror{out: out}
}

// OnChange registers a callback fired after each LED frame is recorded
func (m *Mirror) OnChange(fn func()) {
	m.mu.Lock()
	m.onSet = fn
	m.mu.Unlock()
}

func (m *Mirror) Send(msg gomidi.Message) error {
	if cmd, ok := DecodeLight(msg); ok && cmd.Pad < 128 {
		m.mu.Lock()
		m.leds[cmd.Pad] = LEDState{Color: cmd.Color, Pulse: cmd.Cmd == CmdPulse}
		m.sent++
		fn := m.onSet
		m.mu.Unlock()
		if fn != nil {
			fn()
		}
	}
	return m.out.Send(msg)
}

// LED returns the recorded state for pad
func (m *Mirror) LED(pad uint8) LEDState {
	if pad >= 128 {
		return LEDState{}
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.leds[pad]
}

// Sent counts LED frames seen so far
func (m *Mirror) Sent() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sent
}

// Reset forgets every recorded LED state
func (m *Mirror) Reset() {
	m.mu.Lock()
	m.leds = [128]LEDState{}
	m.mu.Unlock()
}
