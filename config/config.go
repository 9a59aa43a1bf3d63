package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ControllerConfig defines how to find the pad controller
type ControllerConfig struct {
	PortName    string `json:"portName"`
	AutoConnect bool   `json:"autoConnect"`
}

// AudioConfig tunes the voice engine and the frequency toy
type AudioConfig struct {
	SampleRate  int     `json:"sampleRate,omitempty"`
	Gain        float64 `json:"gain,omitempty"`
	DetuneCents float64 `json:"detuneCents,omitempty"`
	Waveform    string  `json:"waveform,omitempty"`
	ToyStep     float64 `json:"toyStep,omitempty"`
	ToyGain     float64 `json:"toyGain,omitempty"`
	ToyStart    float64 `json:"toyStart,omitempty"`
}

// ColorConfig overrides pad colors with "#rrggbb" values.
// Each is snapped to the nearest color the Launchpad can show.
type ColorConfig struct {
	Playing string `json:"playing,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	Controller ControllerConfig `json:"controller"`
	Mode       string           `json:"mode,omitempty"`
	Audio      AudioConfig      `json:"audio,omitempty"`
	Colors     ColorConfig      `json:"colors,omitempty"`

	// Layout overrides the note->pad mapping, keyed by note number
	Layout map[string]uint8 `json:"layout,omitempty"`

	Debug bool `json:"debug,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Controller: ControllerConfig{
			PortName:    "Launchpad Pro Standalone Port",
			AutoConnect: true,
		},
		Mode: "keyboard",
		Audio: AudioConfig{
			SampleRate:  48000,
			Gain:        0.1,
			DetuneCents: 100,
			Waveform:    "square",
			ToyStep:     10,
			ToyGain:     0.5,
			ToyStart:    440,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-padplay"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a config file. Missing fields keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes the config to path, creating its directory
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks values the program cannot run with
func (c *Config) Validate() error {
	if c.Audio.SampleRate < 0 {
		return fmt.Errorf("audio.sampleRate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Audio.Gain < 0 || c.Audio.Gain > 1 {
		return fmt.Errorf("audio.gain must be in [0, 1], got %g", c.Audio.Gain)
	}
	if c.Colors.Playing != "" {
		if _, err := colorful.Hex(c.Colors.Playing); err != nil {
			return fmt.Errorf("colors.playing: %w", err)
		}
	}
	if _, err := c.LayoutTable(); err != nil {
		return err
	}
	return nil
}

// LayoutTable converts the layout override to note->pad.
// Returns nil when no override is configured.
func (c *Config) LayoutTable() (map[uint8]uint8, error) {
	if len(c.Layout) == 0 {
		return nil, nil
	}
	table := make(map[uint8]uint8, len(c.Layout))
	for k, pad := range c.Layout {
		note, err := strconv.ParseUint(k, 10, 7)
		if err != nil {
			return nil, fmt.Errorf("layout: bad note %q", k)
		}
		if pad > 127 {
			return nil, fmt.Errorf("layout: note %d: pad %d out of range", note, pad)
		}
		table[uint8(note)] = pad
	}
	return table, nil
}
