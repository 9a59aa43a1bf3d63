package handler

import (
	"go-padplay/midi"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// RawColor lights a pressed pad red
const RawColor uint8 = 5

// RawLight lights whichever pad was pressed last.
//
// It tracks a single pad: a release is applied to the most recently pressed
// pad, not to the pad that was released, so overlapping presses leave pads lit.
type RawLight struct {
	lastPad uint8
	hasLast bool
}

func NewRawLight() *RawLight {
	return &RawLight{}
}

// Start leaves the grid as it is
func (h *RawLight) Start(out midi.Output) {}

func (h *RawLight) Handle(out midi.Output, msg gomidi.Message) {
	logMessage(msg)

	if pad, vel, ok := midi.NoteOn(msg); ok {
		if vel > 0 {
			h.lastPad = pad
			h.hasLast = true
			send(out, midi.EncodeLight(pad, RawColor))
			return
		}
		if h.hasLast {
			send(out, midi.EncodeLight(h.lastPad, 0))
		}
		return
	}

	// Held pad wiggled: pulse while pressure is applied
	if value, ok := midi.Pressure(msg); ok && h.hasLast {
		if value == 0 {
			send(out, midi.EncodeLight(h.lastPad, RawColor))
		} else {
			send(out, midi.EncodePulse(h.lastPad, RawColor))
		}
	}
}

// LastPad returns the remembered pad, if any
func (h *RawLight) LastPad() (uint8, bool) {
	return h.lastPad, h.hasLast
}
