package theme

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type RGB [3]uint8

// Launchpad colors with known RGB values (velocity -> RGB).
// Everything else is derived from the palette's hue layout.
var knownColors = map[uint8]RGB{
	0:   {0, 0, 0},       // off
	1:   {28, 28, 28},    // dim white
	2:   {124, 124, 124}, // grey
	3:   {252, 252, 252}, // white
	5:   {255, 0, 0},     // red
	9:   {255, 100, 0},   // orange
	13:  {255, 200, 0},   // yellow
	21:  {0, 255, 0},     // green
	29:  {0, 255, 80},    // root green
	37:  {0, 200, 200},   // cyan
	40:  {0, 140, 255},   // playing blue
	45:  {0, 100, 255},   // blue
	49:  {150, 0, 200},   // purple
	53:  {255, 80, 180},  // pink
	119: {255, 255, 255}, // bright white
}

// Palette maps Launchpad velocity colors (0-127) to RGB
type Palette struct {
	colors [128]RGB
}

// LaunchpadPalette approximates the Launchpad Pro's built-in palette.
// Indices 4-63 are 15 hue groups of four shades (light, full, dim, dark).
func LaunchpadPalette() *Palette {
	p := &Palette{}
	for i := 0; i < 128; i++ {
		p.colors[i] = derive(uint8(i))
	}
	for i, c := range knownColors {
		p.colors[i] = c
	}
	return p
}

func derive(idx uint8) RGB {
	switch {
	case idx < 4:
		v := float64(idx) / 3
		return toRGB(colorful.Hsv(0, 0, v))
	case idx < 64:
		group := int(idx-4) / 4
		shade := int(idx-4) % 4
		hue := float64(group) * 360 / 15
		sat, val := 1.0, 1.0
		switch shade {
		case 0:
			sat = 0.5
		case 2:
			val = 0.5
		case 3:
			val = 0.25
		}
		return toRGB(colorful.Hsv(hue, sat, val))
	default:
		// second half of the palette is a mixed bag; spread it around the wheel
		hue := float64(idx-64) * 360 / 64
		return toRGB(colorful.Hsv(hue, 0.8, 0.9))
	}
}

func toRGB(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Index returns the RGB for a Launchpad color
func (p *Palette) Index(i uint8) RGB {
	if i >= 128 {
		return p.colors[127]
	}
	return p.colors[i]
}

// Nearest finds the Launchpad color closest to rgb
func (p *Palette) Nearest(rgb RGB) uint8 {
	target := colorful.Color{R: float64(rgb[0]) / 255, G: float64(rgb[1]) / 255, B: float64(rgb[2]) / 255}
	best := uint8(0)
	bestDist := 1e9
	for i, c := range p.colors {
		cc := colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
		if d := target.DistanceRgb(cc); d < bestDist {
			bestDist = d
			best = uint8(i)
		}
	}
	return best
}

// NearestHex parses a "#rrggbb" color and returns the closest Launchpad color
func (p *Palette) NearestHex(hex string) (uint8, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", hex, err)
	}
	return p.Nearest(toRGB(c)), nil
}
