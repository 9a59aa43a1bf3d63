package midi

import (
	"fmt"
	"sync"

	"go-padplay/debug"
	"go-padplay/pads"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// LaunchpadController handles a Novation Launchpad Pro in programmer mode
type LaunchpadController struct {
	id       string
	outPort  drivers.Out
	inPort   drivers.In
	send     func(msg gomidi.Message) error
	stopFunc func()

	msgChan   chan gomidi.Message
	done      chan struct{}
	closeOnce sync.Once
}

// NewLaunchpadController opens the ports and switches the device to programmer mode
func NewLaunchpadController(id string, inPort drivers.In, outPort drivers.Out) (*LaunchpadController, error) {
	lp := &LaunchpadController{
		id:      id,
		inPort:  inPort,
		outPort: outPort,
		msgChan: make(chan gomidi.Message, 64),
		done:    make(chan struct{}),
	}

	// Open output
	if outPort != nil {
		send, err := gomidi.SendTo(outPort)
		if err != nil {
			return nil, fmt.Errorf("open output: %w", err)
		}
		lp.send = send

		// F0 00 20 29 02 10 2C 03 F7
		if err := lp.send(ProgrammerMode()); err != nil {
			debug.Log("lp-send", "programmer mode: %v", err)
		}
	}

	// Open input
	if inPort != nil {
		stop, err := gomidi.ListenTo(inPort, lp.receive)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		lp.stopFunc = stop
	}

	return lp, nil
}

// receive runs on the driver goroutine. It blocks rather than drops so
// handlers see every message in order.
func (lp *LaunchpadController) receive(msg gomidi.Message, timestampms int32) {
	cp := make(gomidi.Message, len(msg))
	copy(cp, msg)
	select {
	case lp.msgChan <- cp:
	case <-lp.done:
	}
}

func (lp *LaunchpadController) ID() string {
	return lp.id
}

func (lp *LaunchpadController) Messages() <-chan gomidi.Message {
	return lp.msgChan
}

func (lp *LaunchpadController) Send(msg gomidi.Message) error {
	if lp.send == nil {
		return nil
	}
	return lp.send(msg)
}

func (lp *LaunchpadController) ClearLEDs() error {
	if lp.send == nil {
		return nil
	}
	for _, pad := range pads.GridPads() {
		if err := lp.send(EncodeLight(pad, 0)); err != nil {
			return err
		}
	}
	return nil
}

func (lp *LaunchpadController) Close() error {
	lp.closeOnce.Do(func() {
		// Clear all LEDs on close
		if err := lp.ClearLEDs(); err != nil {
			debug.Log("lp-send", "clear on close: %v", err)
		}
		if lp.stopFunc != nil {
			lp.stopFunc()
		}
		close(lp.done)
	})
	return nil
}
