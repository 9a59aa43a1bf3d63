package handler

import (
	"go-padplay/midi"
	"go-padplay/pads"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// Simon lights a whole square while any of its pads is held
type Simon struct{}

func NewSimon() *Simon {
	return &Simon{}
}

// Start lights every square in its base color
func (h *Simon) Start(out midi.Output) {
	for _, s := range pads.Squares {
		lightSquare(out, s, s.Base)
	}
}

func (h *Simon) Handle(out midi.Output, msg gomidi.Message) {
	logMessage(msg)

	pad, vel, ok := midi.NoteOn(msg)
	if !ok {
		return
	}
	square, found := pads.FindSquare(pad)
	if !found {
		return
	}
	if vel > 0 {
		lightSquare(out, square, square.Active)
	} else {
		lightSquare(out, square, square.Base)
	}
}

func lightSquare(out midi.Output, s pads.Square, color uint8) {
	for _, p := range s.Pads {
		send(out, midi.EncodeLight(p, color))
	}
}
