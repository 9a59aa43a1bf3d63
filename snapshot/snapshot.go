package snapshot

import (
	"fmt"
	"image"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"go-padplay/midi"
	"go-padplay/theme"
	"go-padplay/widgets"
)

// Geometry of the rendered surface, in pixels
const (
	padSize = 48.0
	gap     = 6.0
	margin  = 16.0
)

// Size returns the image width and height
func Size() (w, h int) {
	side := margin*2 + 10*padSize + 9*gap
	return int(side), int(side)
}

// Render draws the Launchpad surface (pads 0-99) as the leds report it.
// Labels print the pad id on every pad when set.
func Render(palette *theme.Palette, leds widgets.LEDSource, labels bool) (image.Image, error) {
	w, h := Size()
	dc := gg.NewContext(w, h)
	dc.SetRGB(0.08, 0.08, 0.08)
	dc.Clear()

	if labels {
		font, err := truetype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("parse font: %w", err)
		}
		dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: padSize / 4}))
	}

	for row := 0; row <= 9; row++ {
		for col := 0; col <= 9; col++ {
			pad := uint8(row*10 + col)
			if widgets.IsCorner(pad) {
				continue
			}
			x := margin + float64(col)*(padSize+gap)
			// row 0 at the bottom
			y := margin + float64(9-row)*(padSize+gap)
			drawPad(dc, x, y, palette, leds(pad), pad, labels)
		}
	}
	return dc.Image(), nil
}

func drawPad(dc *gg.Context, x, y float64, palette *theme.Palette, state midi.LEDState, pad uint8, labels bool) {
	c := palette.Index(state.Color)
	if state.Color == 0 {
		c = theme.RGB{40, 40, 40}
	}
	dc.DrawRoundedRectangle(x, y, padSize, padSize, 4)
	dc.SetRGB255(int(c[0]), int(c[1]), int(c[2]))
	dc.FillPreserve()
	if state.Pulse {
		dc.SetRGB(1, 1, 1)
		dc.SetLineWidth(3)
	} else {
		dc.SetRGBA(0, 0, 0, 1)
		dc.SetLineWidth(1)
	}
	dc.Stroke()

	if labels {
		// dark text on bright pads
		if int(c[0])+int(c[1])+int(c[2]) > 380 {
			dc.SetRGB(0, 0, 0)
		} else {
			dc.SetRGB(1, 1, 1)
		}
		dc.DrawStringAnchored(strconv.Itoa(int(pad)), x+padSize/2, y+padSize/2, 0.5, 0.5)
	}
}

// SavePNG renders and writes the surface to path
func SavePNG(path string, palette *theme.Palette, leds widgets.LEDSource, labels bool) error {
	img, err := Render(palette, leds, labels)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
