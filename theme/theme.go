package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	Lit    rune // ■ steady pad
	Pulse  rune // ◆ pulsing pad
	Unlit  rune // □ pad off
	Absent rune // · no pad (corner)
}

func New(palette *Palette) *Theme {
	if palette == nil {
		palette = LaunchpadPalette()
	}
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Lit:    '■',
			Pulse:  '◆',
			Unlit:  '□',
			Absent: '·',
		},
	}
}

// Color roles mapped to Launchpad palette indices
const (
	RoleFG      uint8 = 3
	RoleMuted   uint8 = 2
	RoleAccent  uint8 = 53
	RoleWarning uint8 = 9
	RoleSuccess uint8 = 21
)

func (t *Theme) FG() lipgloss.Color      { return t.Pad(RoleFG) }
func (t *Theme) Muted() lipgloss.Color   { return t.Pad(RoleMuted) }
func (t *Theme) Accent() lipgloss.Color  { return t.Pad(RoleAccent) }
func (t *Theme) Warning() lipgloss.Color { return t.Pad(RoleWarning) }
func (t *Theme) Success() lipgloss.Color { return t.Pad(RoleSuccess) }

// Pad returns the lipgloss color for a Launchpad color index
func (t *Theme) Pad(color uint8) lipgloss.Color {
	return RGBToLipgloss(t.Palette.Index(color))
}

func RGBToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
