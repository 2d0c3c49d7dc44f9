package config

import (
	"log/slog"

	"go.yaml.in/yaml/v3"

	"github.com/tmarlen/storyforge/internal/audio"
)

const (
	defaultAssetsDir  = "assets"
	defaultOutDir     = "out"
	defaultBitrate    = "160k"
	defaultSampleRate = 48000
)

// Producer is the per-render read-only configuration: voice mapping, asset
// roots and mix gains.
type Producer struct {
	LogLevel   slog.Level        `yaml:"log_level"`
	TTS        *TTSCmd           `yaml:"tts"`
	Voices     map[string]string `yaml:"voices"`
	AssetsDir  string            `yaml:"assets_dir"`
	OutDir     string            `yaml:"out_dir"`
	Gains      *Gains            `yaml:"gains"`
	Bitrate    string            `yaml:"bitrate"`
	SampleRate int               `yaml:"sample_rate"`
}

// Gains are mix levels in dB. The narration bed defaults to unity; beds sit
// well below it.
type Gains struct {
	NarrationDB float64 `yaml:"narration_db"`
	MusicDB     float64 `yaml:"music_db"`
	AmbienceDB  float64 `yaml:"ambience_db"`
}

func defaultGains() *Gains {
	return &Gains{
		NarrationDB: 0,
		MusicDB:     -18,
		AmbienceDB:  -22,
	}
}

type producer Producer

func (p *Producer) UnmarshalYAML(node *yaml.Node) error {
	var y producer
	err := node.Decode(&y)
	if err != nil {
		return err
	}
	if y.TTS == nil {
		return keyEmptyError("tts")
	}
	if len(y.Voices) == 0 {
		return keyEmptyError("voices")
	}
	if y.AssetsDir == "" {
		y.AssetsDir = defaultAssetsDir
	}
	if y.OutDir == "" {
		y.OutDir = defaultOutDir
	}
	if y.Gains == nil {
		y.Gains = defaultGains()
	}
	if y.Bitrate == "" {
		y.Bitrate = defaultBitrate
	}
	if y.SampleRate == 0 {
		y.SampleRate = defaultSampleRate
	}

	p.LogLevel = y.LogLevel
	p.TTS = y.TTS
	p.Voices = y.Voices
	p.AssetsDir = y.AssetsDir
	p.OutDir = y.OutDir
	p.Gains = y.Gains
	p.Bitrate = y.Bitrate
	p.SampleRate = y.SampleRate
	return nil
}

// Options converts the config into the renderer's option set.
func (p *Producer) Options() audio.Options {
	return audio.Options{
		Voices:          p.Voices,
		AssetsDir:       p.AssetsDir,
		OutDir:          p.OutDir,
		NarrationGainDB: p.Gains.NarrationDB,
		MusicGainDB:     p.Gains.MusicDB,
		AmbienceGainDB:  p.Gains.AmbienceDB,
		Bitrate:         p.Bitrate,
		SampleRate:      p.SampleRate,
	}
}
