package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != "keyboard" || cfg.Audio.Gain != 0.1 || cfg.Controller.PortName != "Launchpad Pro Standalone Port" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFileKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"mode":"simon","layout":{"60":61,"61":60}}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != "simon" {
		t.Errorf("mode = %q", cfg.Mode)
	}
	if cfg.Audio.DetuneCents != 100 {
		t.Errorf("detune = %g, want default 100", cfg.Audio.DetuneCents)
	}
	table, err := cfg.LayoutTable()
	if err != nil {
		t.Fatal(err)
	}
	if table[60] != 61 || table[61] != 60 {
		t.Errorf("layout = %v", table)
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := DefaultConfig()
	cfg.Mode = "raw"
	cfg.Debug = true
	if err := cfg.SaveFile(path); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Mode != "raw" || !got.Debug {
		t.Errorf("got %+v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"gain too high", func(c *Config) { c.Audio.Gain = 2 }},
		{"negative rate", func(c *Config) { c.Audio.SampleRate = -1 }},
		{"bad note", func(c *Config) { c.Layout = map[string]uint8{"C4": 60} }},
		{"note above 127", func(c *Config) { c.Layout = map[string]uint8{"200": 60} }},
		{"pad above 127", func(c *Config) { c.Layout = map[string]uint8{"60": 200} }},
		{"bad playing color", func(c *Config) { c.Colors.Playing = "blue" }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadFileRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	os.WriteFile(path, []byte(`{"mode":`), 0644)
	if _, err := LoadFile(path); err == nil {
		t.Error("expected parse error")
	}
}
