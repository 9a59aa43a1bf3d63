package midi

import gomidi "gitlab.com/gomidi/midi/v2"

// Launchpad Pro LED commands: F0 00 20 29 02 10 <cmd> <pad> <color> F7
var lightHeader = []byte{0x00, 0x20, 0x29, 0x02, 0x10}

const (
	CmdLight byte = 0x0A // 10: steady color
	CmdPulse byte = 0x28 // 40: pulsing color
)

// LightCommand is a decoded LED frame
type LightCommand struct {
	Cmd   byte
	Pad   uint8
	Color uint8
}

// EncodeLight builds the frame that lights pad with a steady color.
// pad and color must be < 128.
func EncodeLight(pad, color uint8) gomidi.Message {
	return encode(CmdLight, pad, color)
}

// EncodePulse builds the frame that pulses pad in color
func EncodePulse(pad, color uint8) gomidi.Message {
	return encode(CmdPulse, pad, color)
}

func encode(cmd byte, pad, color uint8) gomidi.Message {
	data := make([]byte, 0, len(lightHeader)+3)
	data = append(data, lightHeader...)
	data = append(data, cmd, pad, color)
	return gomidi.SysEx(data)
}

// DecodeLight parses a frame built by EncodeLight or EncodePulse
func DecodeLight(msg gomidi.Message) (LightCommand, bool) {
	if len(msg) != len(lightHeader)+5 || msg[0] != 0xF0 || msg[len(msg)-1] != 0xF7 {
		return LightCommand{}, false
	}
	for i, b := range lightHeader {
		if msg[i+1] != b {
			return LightCommand{}, false
		}
	}
	cmd := msg[6]
	if cmd != CmdLight && cmd != CmdPulse {
		return LightCommand{}, false
	}
	return LightCommand{Cmd: cmd, Pad: msg[7], Color: msg[8]}, true
}

// ProgrammerMode switches a Launchpad Pro to the programmer layout
// F0 00 20 29 02 10 2C 03 F7
func ProgrammerMode() gomidi.Message {
	return gomidi.SysEx([]byte{0x00, 0x20, 0x29, 0x02, 0x10, 0x2C, 0x03})
}
