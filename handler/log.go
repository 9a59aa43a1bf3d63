package handler

import (
	"go-padplay/debug"

	gomidi "gitlab.com/gomidi/midi/v2"
)

func logMessage(msg gomidi.Message) {
	debug.Log("midi-in", "%v", []byte(msg))
}

func logSendError(err error) {
	debug.LogEvery(10, "midi-out", "send failed: %v", err)
}
