package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-padplay/audio"
	"go-padplay/debug"
	"go-padplay/handler"
	"go-padplay/midi"
	"go-padplay/pads"
	"go-padplay/theme"
	"go-padplay/widgets"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// HandlerFactory builds a fresh handler for each connected controller
type HandlerFactory func() (handler.Handler, error)

// session holds state shared with the router goroutine
type session struct {
	mu         sync.Mutex
	mirror     *midi.Mirror
	controller midi.Controller
	cancel     context.CancelFunc
	lastMsg    gomidi.Message
	received   int
	status     string
	updates    chan struct{}
}

func (s *session) poke() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}

type Model struct {
	Mode      handler.Mode
	DeviceMgr *midi.DeviceManager
	Engine    *audio.Engine
	Theme     *theme.Theme
	// PlayingColor is shown in the keyboard legend
	PlayingColor uint8
	newHandler   HandlerFactory
	session      *session
	quitting     bool
}

type UpdateMsg struct{}

type DeviceEventMsg midi.DeviceEvent

type devicesClosedMsg struct{}

// NewModel creates the monitor. Until a controller connects, the grid shows
// the handler's start-up lighting as a preview.
func NewModel(mode handler.Mode, factory HandlerFactory, deviceMgr *midi.DeviceManager, engine *audio.Engine, th *theme.Theme) Model {
	s := &session{
		mirror:  midi.NewMirror(nil),
		updates: make(chan struct{}, 1),
	}
	if h, err := factory(); err == nil {
		h.Start(s.mirror)
	} else {
		s.status = err.Error()
	}
	return Model{
		Mode:         mode,
		DeviceMgr:    deviceMgr,
		Engine:       engine,
		Theme:        th,
		PlayingColor: handler.PlayingColor,
		newHandler:   factory,
		session:      s,
	}
}

func ListenForUpdates(s *session) tea.Cmd {
	return func() tea.Msg {
		<-s.updates
		return UpdateMsg{}
	}
}

func ListenForDevices(deviceMgr *midi.DeviceManager) tea.Cmd {
	if deviceMgr == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-deviceMgr.Events()
		if !ok {
			return devicesClosedMsg{}
		}
		return DeviceEventMsg(event)
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{ListenForUpdates(m.session)}
	if m.DeviceMgr != nil {
		cmds = append(cmds, ListenForDevices(m.DeviceMgr))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		debug.Log("key", "pressed %q", msg.String())
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			m.unbind()
			if m.Engine != nil {
				m.Engine.StopAll()
			}
			return m, tea.Quit

		case "x":
			if m.Engine != nil {
				m.Engine.StopAll()
			}
		}

	case UpdateMsg:
		return m, ListenForUpdates(m.session)

	case DeviceEventMsg:
		event := midi.DeviceEvent(msg)
		switch event.Type {
		case midi.DeviceConnected:
			m.bind(event.Controller)
		case midi.DeviceDisconnected:
			s := m.session
			s.mu.Lock()
			current := s.controller != nil && s.controller.ID() == event.ID
			s.mu.Unlock()
			if current {
				m.unbind()
			}
		case midi.DeviceFailed:
			m.setStatus(fmt.Sprintf("could not open %s: %v", event.ID, event.Err))
		}
		return m, ListenForDevices(m.DeviceMgr)

	case devicesClosedMsg:
		return m, nil
	}

	return m, nil
}

// bind attaches a fresh handler to the controller and starts routing its messages
func (m Model) bind(c midi.Controller) {
	m.unbind()

	h, err := m.newHandler()
	if err != nil {
		m.setStatus(err.Error())
		return
	}

	s := m.session
	mirror := midi.NewMirror(c)
	mirror.OnChange(s.poke)

	router := handler.NewRouter(h, mirror)
	router.OnMessage(func(msg gomidi.Message) {
		s.mu.Lock()
		s.lastMsg = msg
		s.received++
		s.mu.Unlock()
		s.poke()
	})

	ctx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	s.mirror = mirror
	s.controller = c
	s.cancel = cancel
	s.status = ""
	s.mu.Unlock()

	router.Start()
	go router.Run(ctx, c.Messages())
}

func (m Model) unbind() {
	s := m.session
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.controller = nil
}

func (m Model) setStatus(status string) {
	m.session.mu.Lock()
	m.session.status = status
	m.session.mu.Unlock()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.session
	s.mu.Lock()
	mirror := s.mirror
	controller := s.controller
	lastMsg := s.lastMsg
	received := s.received
	status := s.status
	s.mu.Unlock()

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	bodyStyle := lipgloss.NewStyle().Foreground(m.Theme.FG())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	warnStyle := lipgloss.NewStyle().Foreground(m.Theme.Warning())
	okStyle := lipgloss.NewStyle().Foreground(m.Theme.Success())

	deviceStatus := "no device"
	if controller != nil {
		deviceStatus = okStyle.Render("LP:" + controller.ID())
	}
	if m.DeviceMgr != nil {
		deviceStatus += fmt.Sprintf(" (%d found)", len(m.DeviceMgr.Controllers()))
	}
	voices := 0
	if m.Engine != nil {
		voices = m.Engine.Active()
	}

	header := headerStyle.Render(fmt.Sprintf("go-padplay  %s  %s  voices:%d  msgs:%d", m.Mode, deviceStatus, voices, received))

	grid := widgets.RenderLaunchpad(m.Theme, mirror.LED)

	last := "last: -"
	if lastMsg != nil {
		last = fmt.Sprintf("last: %v", []byte(lastMsg))
	}

	help := dimStyle.Render("x:stop all voices  q:quit")

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(grid)
	out.WriteString("\n\n")
	out.WriteString(m.legend())
	out.WriteString("\n\n")
	out.WriteString(bodyStyle.Render(last))
	out.WriteString("\n")
	out.WriteString(help)

	if status != "" {
		out.WriteString("\n")
		out.WriteString(warnStyle.Render(status))
	}

	return out.String()
}

func (m Model) legend() string {
	var items []string
	switch m.Mode {
	case handler.ModeRaw:
		items = append(items, widgets.RenderLegendItem(m.Theme, handler.RawColor, "pressed", "last pad pressed, pulses with pressure"))
	case handler.ModeSimon:
		for i, s := range pads.Squares {
			items = append(items, widgets.RenderLegendItem(m.Theme, s.Base, fmt.Sprintf("square %d", i+1), "resting"))
			items = append(items, widgets.RenderLegendItem(m.Theme, s.Active, fmt.Sprintf("square %d", i+1), "held"))
		}
	case handler.ModeKeyboard:
		items = append(items,
			widgets.RenderLegendItem(m.Theme, pads.ColorRoot, "C", "root of every octave"),
			widgets.RenderLegendItem(m.Theme, pads.ColorInScale, "white", "rest of C major"),
			widgets.RenderLegendItem(m.Theme, m.PlayingColor, "playing", "struck note (sustains)"),
		)
	}
	return strings.Join(items, "\n")
}
