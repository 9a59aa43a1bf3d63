package handler

import (
	"fmt"

	"go-padplay/audio"
	"go-padplay/midi"
	"go-padplay/pads"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// Handler reacts to controller messages by lighting pads and/or playing notes.
// Handlers are not safe for concurrent use; the Router calls them one message at a time.
type Handler interface {
	// Start lights the controller's initial state
	Start(out midi.Output)

	// Handle processes a single controller message
	Handle(out midi.Output, msg gomidi.Message)
}

// Mode selects one of the built-in handlers
type Mode string

const (
	ModeRaw      Mode = "raw"
	ModeSimon    Mode = "simon"
	ModeKeyboard Mode = "keyboard"
)

// Modes lists every mode in display order
var Modes = []Mode{ModeRaw, ModeSimon, ModeKeyboard}

// ParseMode validates a mode name
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q (want raw, simon or keyboard)", s)
}

// Synth is the part of the audio engine the keyboard handler needs
type Synth interface {
	PlayFrequency(freq float64) *audio.Voice
	StopAll()
}

// Deps carries what a handler may need. Everything here is only used by ModeKeyboard.
// A zero PlayingColor keeps the default.
type Deps struct {
	Keys         *pads.KeyTable
	Synth        Synth
	PlayingColor uint8
}

// New builds the handler for mode
func New(mode Mode, deps Deps) (Handler, error) {
	switch mode {
	case ModeRaw:
		return NewRawLight(), nil
	case ModeSimon:
		return NewSimon(), nil
	case ModeKeyboard:
		if deps.Synth == nil {
			return nil, fmt.Errorf("keyboard mode needs an audio engine")
		}
		keys := deps.Keys
		if keys == nil {
			var err error
			if keys, err = pads.NewKeyTable(pads.DefaultLayout); err != nil {
				return nil, err
			}
		}
		kb := NewKeyboard(keys, deps.Synth)
		if deps.PlayingColor != 0 {
			kb.SetPlayingColor(deps.PlayingColor)
		}
		return kb, nil
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

// send drops delivery errors after logging them; lighting is fire-and-forget
func send(out midi.Output, msg gomidi.Message) {
	if err := out.Send(msg); err != nil {
		logSendError(err)
	}
}
