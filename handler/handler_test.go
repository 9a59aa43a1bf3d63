package handler

import (
	"context"
	"testing"
	"time"

	"go-padplay/audio"
	"go-padplay/midi"
	"go-padplay/pads"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// recorder captures decoded lighting frames
type recorder struct {
	cmds []midi.LightCommand
	raw  []gomidi.Message
}

func (r *recorder) Send(msg gomidi.Message) error {
	r.raw = append(r.raw, msg)
	if cmd, ok := midi.DecodeLight(msg); ok {
		r.cmds = append(r.cmds, cmd)
	}
	return nil
}

func (r *recorder) reset() {
	r.cmds = nil
	r.raw = nil
}

func noteOn(pad, vel uint8) gomidi.Message {
	return gomidi.Message{midi.StatusNoteOn, pad, vel}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(string(m))
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := ParseMode("disco"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestNew(t *testing.T) {
	if _, err := New(ModeKeyboard, Deps{}); err == nil {
		t.Error("keyboard without synth should fail")
	}
	h, err := New(ModeKeyboard, Deps{Synth: audio.NewEngine(audio.DefaultParams())})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := h.(*Keyboard); !ok {
		t.Errorf("got %T", h)
	}
	if h, _ := New(ModeSimon, Deps{}); h == nil {
		t.Error("simon handler nil")
	}
	if h, _ := New(ModeRaw, Deps{}); h == nil {
		t.Error("raw handler nil")
	}
	if _, err := New(Mode("x"), Deps{}); err == nil {
		t.Error("unknown mode accepted")
	}
}

func TestRawLightPressRelease(t *testing.T) {
	rec := &recorder{}
	h := NewRawLight()

	h.Handle(rec, noteOn(22, 56))
	h.Handle(rec, noteOn(22, 0))

	want := []midi.LightCommand{
		{Cmd: midi.CmdLight, Pad: 22, Color: RawColor},
		{Cmd: midi.CmdLight, Pad: 22, Color: 0},
	}
	assertCmds(t, rec.cmds, want)
}

func TestRawLightTracksOnlyLastPad(t *testing.T) {
	rec := &recorder{}
	h := NewRawLight()

	h.Handle(rec, noteOn(22, 56))
	h.Handle(rec, noteOn(23, 56))
	h.Handle(rec, noteOn(22, 0)) // releasing 22 turns off 23

	if len(rec.cmds) != 3 {
		t.Fatalf("got %d commands", len(rec.cmds))
	}
	if off := rec.cmds[2]; off.Pad != 23 || off.Color != 0 {
		t.Errorf("off command = %+v, want pad 23 color 0", off)
	}
}

func TestRawLightPressure(t *testing.T) {
	rec := &recorder{}
	h := NewRawLight()

	// nothing pressed yet
	h.Handle(rec, gomidi.Message{midi.StatusPressure, 30})
	if len(rec.raw) != 0 {
		t.Fatalf("pressure without a pad sent %d frames", len(rec.raw))
	}

	h.Handle(rec, noteOn(45, 100))
	h.Handle(rec, gomidi.Message{midi.StatusPressure, 30})
	h.Handle(rec, gomidi.Message{midi.StatusPressure, 0})

	want := []midi.LightCommand{
		{Cmd: midi.CmdLight, Pad: 45, Color: RawColor},
		{Cmd: midi.CmdPulse, Pad: 45, Color: RawColor},
		{Cmd: midi.CmdLight, Pad: 45, Color: RawColor},
	}
	assertCmds(t, rec.cmds, want)
}

func TestRawLightIgnoresMalformed(t *testing.T) {
	rec := &recorder{}
	h := NewRawLight()
	for _, msg := range []gomidi.Message{nil, {144}, {144, 22}, {208}, {176, 1, 2}} {
		h.Handle(rec, msg)
	}
	if len(rec.raw) != 0 {
		t.Errorf("malformed input sent %d frames", len(rec.raw))
	}
	if _, ok := h.LastPad(); ok {
		t.Error("malformed input set last pad")
	}
}

func TestSimonStart(t *testing.T) {
	rec := &recorder{}
	NewSimon().Start(rec)

	if len(rec.cmds) != 64 {
		t.Fatalf("start sent %d frames, want 64", len(rec.cmds))
	}
	for _, cmd := range rec.cmds {
		s, ok := pads.FindSquare(cmd.Pad)
		if !ok {
			t.Fatalf("lit pad %d outside squares", cmd.Pad)
		}
		if cmd.Color != s.Base {
			t.Errorf("pad %d color %d, want base %d", cmd.Pad, cmd.Color, s.Base)
		}
	}
}

func TestSimonPressAndRelease(t *testing.T) {
	for _, square := range pads.Squares {
		pad := square.Pads[5]
		mirror := midi.NewMirror(nil)
		h := NewSimon()
		h.Start(mirror)

		h.Handle(mirror, noteOn(pad, 56))
		for _, s := range pads.Squares {
			for _, p := range s.Pads {
				want := s.Base
				if s == square {
					want = s.Active
				}
				if got := mirror.LED(p).Color; got != want {
					t.Errorf("press %d: pad %d color %d, want %d", pad, p, got, want)
				}
			}
		}

		h.Handle(mirror, noteOn(pad, 0))
		for _, s := range pads.Squares {
			for _, p := range s.Pads {
				if got := mirror.LED(p).Color; got != s.Base {
					t.Errorf("release %d: pad %d color %d, want base %d", pad, p, got, s.Base)
				}
			}
		}
	}
}

func TestSimonSendsOnlyTheSquare(t *testing.T) {
	rec := &recorder{}
	h := NewSimon()
	h.Handle(rec, noteOn(11, 56))
	if len(rec.cmds) != 16 {
		t.Fatalf("press sent %d frames, want 16", len(rec.cmds))
	}
	for _, cmd := range rec.cmds {
		if !pads.Squares[0].Contains(cmd.Pad) {
			t.Errorf("pad %d outside the pressed square", cmd.Pad)
		}
	}
}

func TestSimonIgnoresUnknownPads(t *testing.T) {
	rec := &recorder{}
	h := NewSimon()
	h.Handle(rec, noteOn(19, 56)) // side button
	h.Handle(rec, gomidi.Message{midi.StatusPressure, 10})
	h.Handle(rec, nil)
	if len(rec.raw) != 0 {
		t.Errorf("sent %d frames", len(rec.raw))
	}
}

func newKeyboard() (*Keyboard, *audio.Engine) {
	engine := audio.NewEngine(audio.DefaultParams())
	return NewKeyboard(pads.MustKeyTable(pads.DefaultLayout), engine), engine
}

func TestKeyboardStart(t *testing.T) {
	rec := &recorder{}
	h, _ := newKeyboard()
	h.Start(rec)

	if len(rec.cmds) != int(pads.MaxNote-pads.MinNote)+1 {
		t.Fatalf("start sent %d frames", len(rec.cmds))
	}
	for _, cmd := range rec.cmds {
		if cmd.Color != pads.ColorFor(cmd.Pad) {
			t.Errorf("pad %d color %d, want %d", cmd.Pad, cmd.Color, pads.ColorFor(cmd.Pad))
		}
	}
}

func TestKeyboardPlaysAndPanics(t *testing.T) {
	rec := &recorder{}
	h, engine := newKeyboard()

	h.Handle(rec, noteOn(69, 56))
	voices := engine.Voices()
	if len(voices) != 1 {
		t.Fatalf("active = %d, want 1", len(voices))
	}
	if f := voices[0].Frequency(); f != 440.0 {
		t.Errorf("voice at %f Hz, want 440", f)
	}
	assertCmds(t, rec.cmds, []midi.LightCommand{{Cmd: midi.CmdLight, Pad: 69, Color: PlayingColor}})

	// release resets the pad but keeps the note
	rec.reset()
	h.Handle(rec, noteOn(69, 0))
	if engine.Active() != 1 {
		t.Errorf("release stopped the note: active = %d", engine.Active())
	}
	assertCmds(t, rec.cmds, []midi.LightCommand{{Cmd: midi.CmdLight, Pad: 69, Color: pads.ColorInScale}})

	h.Handle(rec, noteOn(60, 56))
	if engine.Active() != 2 {
		t.Fatalf("active = %d, want 2", engine.Active())
	}

	rec.reset()
	h.Handle(rec, gomidi.Message{208, 0})
	if engine.Active() != 0 {
		t.Errorf("active after panic = %d, want 0", engine.Active())
	}
	if len(rec.raw) != 0 {
		t.Errorf("panic sent %d frames", len(rec.raw))
	}
}

func TestKeyboardPlayingColorFromDeps(t *testing.T) {
	engine := audio.NewEngine(audio.DefaultParams())
	h, err := New(ModeKeyboard, Deps{Synth: engine, PlayingColor: 13})
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	h.Handle(rec, noteOn(60, 100))
	assertCmds(t, rec.cmds, []midi.LightCommand{{Cmd: midi.CmdLight, Pad: 60, Color: 13}})
}

func TestKeyboardIgnoresMisses(t *testing.T) {
	rec := &recorder{}
	h, engine := newKeyboard()

	h.Handle(rec, noteOn(pads.MinNote-1, 56))
	h.Handle(rec, noteOn(127, 56))
	h.Handle(rec, gomidi.Message{144, 60}) // truncated note-on
	h.Handle(rec, nil)

	if engine.Active() != 0 || len(rec.raw) != 0 {
		t.Errorf("active=%d frames=%d, want 0 and 0", engine.Active(), len(rec.raw))
	}
}

func TestRouterRunKeepsOrder(t *testing.T) {
	rec := &recorder{}
	r := NewRouter(NewRawLight(), rec)

	var seen []gomidi.Message
	r.OnMessage(func(msg gomidi.Message) { seen = append(seen, msg) })

	msgs := make(chan gomidi.Message, 4)
	msgs <- noteOn(22, 56)
	msgs <- noteOn(23, 56)
	msgs <- noteOn(23, 0)
	close(msgs)

	done := make(chan struct{})
	go func() {
		r.Run(context.Background(), msgs)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("router did not stop after channel close")
	}

	if len(seen) != 3 {
		t.Fatalf("router saw %d messages", len(seen))
	}
	want := []midi.LightCommand{
		{Cmd: midi.CmdLight, Pad: 22, Color: RawColor},
		{Cmd: midi.CmdLight, Pad: 23, Color: RawColor},
		{Cmd: midi.CmdLight, Pad: 23, Color: 0},
	}
	assertCmds(t, rec.cmds, want)
}

func TestRouterStopsOnCancel(t *testing.T) {
	r := NewRouter(NewSimon(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, make(chan gomidi.Message))
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("router did not stop on cancel")
	}
}

func TestRouterStart(t *testing.T) {
	mirror := midi.NewMirror(nil)
	r := NewRouter(NewSimon(), mirror)
	r.Start()
	if mirror.Sent() != 64 {
		t.Errorf("start lit %d pads, want 64", mirror.Sent())
	}
	if _, ok := r.Handler().(*Simon); !ok {
		t.Errorf("handler is %T", r.Handler())
	}
}

func assertCmds(t *testing.T, got, want []midi.LightCommand) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d commands %+v, want %d %+v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
