package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"go-padplay/audio"
	"go-padplay/config"
	"go-padplay/debug"
	"go-padplay/handler"
	"go-padplay/midi"
	"go-padplay/pads"
	"go-padplay/theme"
	"go-padplay/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Debug {
		if err := debug.Enable(); err != nil {
			fmt.Printf("Debug log unavailable: %v\n", err)
		}
		defer debug.Disable()
	}

	// Mode from the command line wins over the config file
	mode := cfg.Mode
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	th := theme.New(theme.LaunchpadPalette())

	if mode == "toy" {
		if err := runToy(cfg, th); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runPads(cfg, mode, th); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func runPads(cfg *config.Config, modeName string, th *theme.Theme) error {
	mode, err := handler.ParseMode(modeName)
	if err != nil {
		return err
	}

	keys, err := keyTable(cfg)
	if err != nil {
		return err
	}

	engine := audio.NewEngine(audioParams(cfg))
	if mode == handler.ModeKeyboard {
		player, err := audio.Open(engine)
		if err != nil {
			// Pads still light without sound
			fmt.Printf("Audio unavailable: %v\n", err)
		} else {
			defer player.Close()
		}
	}

	playing, err := playingColor(cfg, th)
	if err != nil {
		return err
	}

	factory := func() (handler.Handler, error) {
		return handler.New(mode, handler.Deps{Keys: keys, Synth: engine, PlayingColor: playing})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var deviceMgr *midi.DeviceManager
	if cfg.Controller.AutoConnect {
		// Create MIDI device manager (handles hot-plug)
		deviceMgr = midi.NewDeviceManager(cfg.Controller.PortName)
		go deviceMgr.Run(ctx)
	}

	m := tui.NewModel(mode, factory, deviceMgr, engine, th)
	m.PlayingColor = playing
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runToy(cfg *config.Config, th *theme.Theme) error {
	engine := audio.NewEngine(audioParams(cfg))
	player, err := audio.Open(engine)
	if err != nil {
		return err
	}
	defer player.Close()

	m := tui.NewToyModel(engine, th, cfg.Audio.ToyStart, cfg.Audio.ToyStep, cfg.Audio.ToyGain)
	_, err = tea.NewProgram(m).Run()
	return err
}

func audioParams(cfg *config.Config) audio.Params {
	p := audio.DefaultParams()
	if cfg.Audio.SampleRate > 0 {
		p.SampleRate = cfg.Audio.SampleRate
	}
	p.Gain = cfg.Audio.Gain
	p.DetuneCents = cfg.Audio.DetuneCents
	p.Waveform = audio.ParseWaveform(cfg.Audio.Waveform)
	return p
}

// playingColor resolves the configured struck-pad color to a Launchpad color
func playingColor(cfg *config.Config, th *theme.Theme) (uint8, error) {
	if cfg.Colors.Playing == "" {
		return handler.PlayingColor, nil
	}
	return th.Palette.NearestHex(cfg.Colors.Playing)
}

func keyTable(cfg *config.Config) (*pads.KeyTable, error) {
	table, err := cfg.LayoutTable()
	if err != nil {
		return nil, err
	}
	layout := pads.DefaultLayout
	if table != nil {
		layout = pads.TableLayout(table)
	}
	return pads.NewKeyTable(layout)
}
