package midi

import (
	"errors"
	"testing"

	gomidi "gitlab.com/gomidi/midi/v2"
)

type recorder struct {
	msgs []gomidi.Message
	err  error
}

func (r *recorder) Send(msg gomidi.Message) error {
	r.msgs = append(r.msgs, msg)
	return r.err
}

func TestMirrorRecordsAndForwards(t *testing.T) {
	rec := &recorder{}
	m := NewMirror(rec)

	changes := 0
	m.OnChange(func() { changes++ })

	m.Send(EncodeLight(11, 5))
	m.Send(EncodePulse(12, 45))
	m.Send(ProgrammerMode()) // forwarded, not recorded

	if len(rec.msgs) != 3 {
		t.Fatalf("forwarded %d messages, want 3", len(rec.msgs))
	}
	if got := m.LED(11); got != (LEDState{Color: 5}) {
		t.Errorf("pad 11: %+v", got)
	}
	if got := m.LED(12); got != (LEDState{Color: 45, Pulse: true}) {
		t.Errorf("pad 12: %+v", got)
	}
	if m.Sent() != 2 || changes != 2 {
		t.Errorf("sent=%d changes=%d, want 2 and 2", m.Sent(), changes)
	}

	m.Send(EncodeLight(12, 0))
	if got := m.LED(12); got != (LEDState{}) {
		t.Errorf("pad 12 after off: %+v", got)
	}

	m.Reset()
	if got := m.LED(11); got != (LEDState{}) {
		t.Errorf("pad 11 after reset: %+v", got)
	}
}

func TestMirrorPassesErrors(t *testing.T) {
	want := errors.New("port gone")
	m := NewMirror(&recorder{err: want})
	if err := m.Send(EncodeLight(11, 5)); !errors.Is(err, want) {
		t.Errorf("got %v, want %v", err, want)
	}
	// still recorded: the mirror shows intent, not delivery
	if m.LED(11).Color != 5 {
		t.Error("pad 11 not recorded")
	}
}

func TestNilMirrorOutput(t *testing.T) {
	m := NewMirror(nil)
	if err := m.Send(EncodeLight(88, 3)); err != nil {
		t.Fatal(err)
	}
	if m.LED(88).Color != 3 {
		t.Error("pad 88 not recorded")
	}
}
