package midi

import gomidi "gitlab.com/gomidi/midi/v2"

// Controller is a connected pad controller
type Controller interface {
	ID() string

	// Messages delivers raw controller messages in arrival order.
	// The channel is never closed; stop reading when the controller disconnects.
	Messages() <-chan gomidi.Message

	// Send transmits a frame to the device. Fire-and-forget.
	Send(msg gomidi.Message) error

	// ClearLEDs turns off every grid pad
	ClearLEDs() error

	// Lifecycle
	Close() error
}
