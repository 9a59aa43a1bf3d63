package handler

import (
	"go-padplay/debug"
	"go-padplay/midi"
	"go-padplay/pads"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// PlayingColor is the default color of a pad whose note was struck
const PlayingColor uint8 = 40

// Keyboard turns the grid into a chromatic keyboard.
// Notes sustain after release; any message other than a note-on stops them all.
type Keyboard struct {
	keys    *pads.KeyTable
	synth   Synth
	playing uint8
}

func NewKeyboard(keys *pads.KeyTable, synth Synth) *Keyboard {
	return &Keyboard{keys: keys, synth: synth, playing: PlayingColor}
}

// SetPlayingColor changes the color of struck pads
func (h *Keyboard) SetPlayingColor(color uint8) {
	h.playing = color
}

// Start lights every key in its table color
func (h *Keyboard) Start(out midi.Output) {
	for _, k := range h.keys.Keys() {
		send(out, midi.EncodeLight(k.Pad, k.Color))
	}
}

func (h *Keyboard) Handle(out midi.Output, msg gomidi.Message) {
	logMessage(msg)

	if len(msg) == 0 {
		return
	}
	if midi.Status(msg) != midi.StatusNoteOn {
		// pressed outside the keys (pressure, side buttons...): panic
		h.synth.StopAll()
		debug.Log("keyboard", "stop all")
		return
	}

	pad, vel, ok := midi.NoteOn(msg)
	if !ok {
		return
	}
	key, found := h.keys.ByPad(pad)
	if !found {
		return
	}

	if vel > 0 {
		h.synth.PlayFrequency(key.Freq)
		send(out, midi.EncodeLight(key.Pad, h.playing))
		debug.Log("keyboard", "note %d pad %d %.2fHz", key.Note, key.Pad, key.Freq)
	} else {
		// don't stop the note, only reset the pad
		send(out, midi.EncodeLight(key.Pad, key.Color))
	}
}
