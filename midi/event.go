package midi

import gomidi "gitlab.com/gomidi/midi/v2"

// Status bytes the pad controller sends (channel 1)
const (
	StatusNoteOn   uint8 = 0x90 // 144: [status, pad, velocity]
	StatusPressure uint8 = 0xD0 // 208: [status, value] aftertouch on the held pad
)

// Output is anything lighting frames can be sent to
type Output interface {
	Send(msg gomidi.Message) error
}

// OutputFunc adapts a gomidi send func to Output
type OutputFunc func(msg gomidi.Message) error

func (f OutputFunc) Send(msg gomidi.Message) error {
	return f(msg)
}

// Discard is an Output that drops everything
var Discard Output = OutputFunc(func(gomidi.Message) error { return nil })

// Status returns the leading status byte, or 0 for an empty message
func Status(msg gomidi.Message) uint8 {
	if len(msg) == 0 {
		return 0
	}
	return msg[0]
}

// NoteOn extracts pad and velocity from a note-on message.
// Only the exact status 144 with three bytes counts.
func NoteOn(msg gomidi.Message) (pad, velocity uint8, ok bool) {
	if len(msg) < 3 || msg[0] != StatusNoteOn {
		return 0, 0, false
	}
	return msg[1], msg[2], true
}

// Pressure extracts the value of a channel pressure message
func Pressure(msg gomidi.Message) (value uint8, ok bool) {
	if len(msg) < 2 || msg[0] != StatusPressure {
		return 0, false
	}
	return msg[1], true
}
