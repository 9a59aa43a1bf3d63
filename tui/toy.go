package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-padplay/audio"
	"go-padplay/debug"
	"go-padplay/theme"
	"go-padplay/widgets"
)

// ToyModel is a single always-running oscillator. Pausing mutes it
// instead of stopping it, so the pitch can keep changing while silent.
type ToyModel struct {
	Engine  *audio.Engine
	Theme   *theme.Theme
	voice   *audio.Voice
	freq    float64
	step    float64
	gain    float64
	playing bool
}

func NewToyModel(engine *audio.Engine, th *theme.Theme, start, step, gain float64) ToyModel {
	engine.SetGain(0)
	return ToyModel{
		Engine: engine,
		Theme:  th,
		voice:  engine.PlayFrequency(start),
		freq:   start,
		step:   step,
		gain:   gain,
	}
}

func (m ToyModel) Init() tea.Cmd {
	return nil
}

func (m ToyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	debug.Log("key", "pressed %q", key.String())

	switch key.String() {
	case "q", "ctrl+c":
		m.Engine.StopAll()
		return m, tea.Quit
	case "d":
		m = m.changeFrequency(m.step)
	case "a":
		m = m.changeFrequency(-m.step)
	case " ", "space":
		m = m.togglePlayPause()
	}
	return m, nil
}

func (m ToyModel) changeFrequency(amount float64) ToyModel {
	m.freq += amount
	m.voice.SetFrequency(m.freq)
	return m
}

func (m ToyModel) togglePlayPause() ToyModel {
	m.playing = !m.playing
	if m.playing {
		m.Engine.SetGain(m.gain)
	} else {
		m.Engine.SetGain(0)
	}
	return m
}

// Frequency is the current pitch readout
func (m ToyModel) Frequency() float64 {
	return m.freq
}

func (m ToyModel) Playing() bool {
	return m.playing
}

func (m ToyModel) View() string {
	pitchStyle := lipgloss.NewStyle().Bold(true).Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())

	state := "paused"
	if m.playing {
		state = "playing"
	}

	help := widgets.RenderKeyHelp([]widgets.KeySection{{
		Keys: []widgets.KeyBinding{
			{Key: "a", Desc: fmt.Sprintf("pitch -%g", m.step)},
			{Key: "d", Desc: fmt.Sprintf("pitch +%g", m.step)},
			{Key: "space", Desc: "play / pause"},
			{Key: "q", Desc: "quit"},
		},
	}})

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(pitchStyle.Render(fmt.Sprintf("%g", m.freq)))
	out.WriteString(" Hz  ")
	out.WriteString(dimStyle.Render(state))
	out.WriteString("\n\n")
	out.WriteString(dimStyle.Render(help))
	return out.String()
}
