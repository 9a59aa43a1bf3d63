package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"go-padplay/midi"
	"go-padplay/theme"
)

func TestRenderColorsLitPad(t *testing.T) {
	palette := theme.LaunchpadPalette()
	leds := func(pad uint8) midi.LEDState {
		if pad == 11 {
			return midi.LEDState{Color: 5}
		}
		return midi.LEDState{}
	}
	img, err := Render(palette, leds, false)
	if err != nil {
		t.Fatal(err)
	}
	w, h := Size()
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Fatalf("bounds %v, want %dx%d", b, w, h)
	}

	// centre of pad 11 (row 1, col 1)
	x := int(margin + 1*(padSize+gap) + padSize/2)
	y := int(margin + 8*(padSize+gap) + padSize/2)
	r, g, b, _ := img.At(x, y).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("pad 11 centre = (%d,%d,%d), want red", r>>8, g>>8, b>>8)
	}

	// pad 12 is off
	x = int(margin + 2*(padSize+gap) + padSize/2)
	r, _, _, _ = img.At(x, y).RGBA()
	if r>>8 != 40 {
		t.Errorf("pad 12 red channel = %d, want 40", r>>8)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.png")
	leds := func(uint8) midi.LEDState { return midi.LEDState{Color: 21} }
	if err := SavePNG(path, theme.LaunchpadPalette(), leds, true); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty png")
	}
}
