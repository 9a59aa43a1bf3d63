package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-padplay/midi"
	"go-padplay/theme"
)

// LEDSource reports what a pad is showing
type LEDSource func(pad uint8) midi.LEDState

// RenderPad renders a single colored pad
func RenderPad(color theme.RGB, symbol rune) string {
	style := lipgloss.NewStyle().Foreground(theme.RGBToLipgloss(color))
	return style.Render(string(symbol))
}

// IsCorner reports the four positions of the 10x10 layout that have no pad
func IsCorner(pad uint8) bool {
	return pad == 0 || pad == 9 || pad == 90 || pad == 99
}

// RenderLaunchpad renders the full 10x10 Launchpad Pro surface (pads 0-99),
// row 9 at the top. The 8x8 grid sits inside a ring of side buttons.
func RenderLaunchpad(th *theme.Theme, leds LEDSource) string {
	var lines []string
	for row := 9; row >= 0; row-- {
		var line strings.Builder
		for col := 0; col <= 9; col++ {
			if col > 0 {
				line.WriteString(" ")
			}
			pad := uint8(row*10 + col)
			line.WriteString(renderLED(th, pad, leds))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func renderLED(th *theme.Theme, pad uint8, leds LEDSource) string {
	if IsCorner(pad) {
		return RenderPad(th.Palette.Index(theme.RoleMuted), th.Symbols.Absent)
	}
	state := leds(pad)
	switch {
	case state.Color == 0:
		return RenderPad(th.Palette.Index(theme.RoleMuted), th.Symbols.Unlit)
	case state.Pulse:
		return RenderPad(th.Palette.Index(state.Color), th.Symbols.Pulse)
	default:
		return RenderPad(th.Palette.Index(state.Color), th.Symbols.Lit)
	}
}

// RenderLegendItem renders a single legend item: "■ Name - description"
func RenderLegendItem(th *theme.Theme, color uint8, name, desc string) string {
	return fmt.Sprintf("  %s %s - %s", RenderPad(th.Palette.Index(color), th.Symbols.Lit), name, desc)
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}
