package main

import (
	"testing"

	"go-padplay/audio"
	"go-padplay/config"
	"go-padplay/handler"
	"go-padplay/theme"
)

func TestAudioParamsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Audio.Waveform = "sine"
	cfg.Audio.SampleRate = 0

	p := audioParams(cfg)
	if p.SampleRate != audio.DefaultSampleRate || p.Gain != 0.1 || p.DetuneCents != 100 || p.Waveform != audio.WaveSine {
		t.Errorf("got %+v", p)
	}
}

func TestKeyTableFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Layout = map[string]uint8{"60": 61, "61": 60}
	keys, err := keyTable(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if k, _ := keys.ByPad(61); k.Note != 60 {
		t.Errorf("pad 61 plays %d", k.Note)
	}

	cfg.Layout = map[string]uint8{"60": 61} // 60 and 61 collide
	if _, err := keyTable(cfg); err == nil {
		t.Error("expected collision error")
	}
}

func TestPlayingColorFromConfig(t *testing.T) {
	th := theme.New(nil)
	cfg := config.DefaultConfig()
	if c, err := playingColor(cfg, th); err != nil || c != handler.PlayingColor {
		t.Errorf("default = %d, %v", c, err)
	}

	cfg.Colors.Playing = "#ff0000"
	if c, err := playingColor(cfg, th); err != nil || c != 5 {
		t.Errorf("red = %d, %v, want 5", c, err)
	}
}
