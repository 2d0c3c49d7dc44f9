package config

import (
	"fmt"
	"slices"

	"go.yaml.in/yaml/v3"

	"github.com/tmarlen/storyforge/internal/audio"
)

// TTSCmd selects exactly one synthesis engine. With espeak-ng a voice
// reference is an espeak voice name; with a voicegen command it is a
// reference wav path.
type TTSCmd struct {
	EspeakNG bool   `yaml:"espeak_ng"`
	Voicegen string `yaml:"voicegen"`
}

func (t *TTSCmd) TTS() *audio.TTS {
	if t.EspeakNG {
		return &audio.TTS{
			Engine: audio.EspeakNG,
		}
	}
	return &audio.TTS{
		Engine:  audio.Voicegen,
		Command: t.Voicegen,
	}
}

type ttsCmd TTSCmd

func (t *TTSCmd) UnmarshalYAML(node *yaml.Node) error {
	var y ttsCmd
	err := node.Decode(&y)
	if err != nil {
		return err
	}

	if err := checkOneSet(y.EspeakNG, y.Voicegen); err != nil {
		return err
	}

	t.EspeakNG = y.EspeakNG
	t.Voicegen = y.Voicegen
	return nil
}

func checkOneSet(espeakNG bool, voicegen string) error {
	set := slices.DeleteFunc([]bool{espeakNG, voicegen != ""}, func(b bool) bool {
		return !b
	})
	if len(set) != 1 {
		return fmt.Errorf("set only one: tts.espeak_ng or tts.voicegen")
	}
	return nil
}
