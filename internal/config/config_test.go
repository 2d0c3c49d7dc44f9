package config

import (
	"strings"
	"testing"

	"github.com/tmarlen/storyforge/internal/audio"
)

func TestParse_Example(t *testing.T) {
	p, err := Parse(strings.NewReader(Example()))
	if err != nil {
		t.Fatalf("Parse(Example()) error = %v", err)
	}
	if !p.TTS.EspeakNG {
		t.Fatal("example should select espeak-ng")
	}
	if p.TTS.TTS().Engine != audio.EspeakNG {
		t.Fatalf("TTS() engine = %v", p.TTS.TTS().Engine)
	}
	if p.Voices["Narrator"] != "en-GB" {
		t.Fatalf("Narrator voice = %q", p.Voices["Narrator"])
	}
	if p.Gains.MusicDB != -18 {
		t.Fatalf("music gain = %v", p.Gains.MusicDB)
	}
	if p.Bitrate != "160k" || p.SampleRate != 48000 {
		t.Fatalf("bitrate %q sample rate %d", p.Bitrate, p.SampleRate)
	}
}

func TestParse_Defaults(t *testing.T) {
	p, err := Parse(strings.NewReader(
		"tts:\n  espeak_ng: true\nvoices:\n  A: en-GB\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.AssetsDir != "assets" || p.OutDir != "out" {
		t.Fatalf("dirs = %q, %q", p.AssetsDir, p.OutDir)
	}
	if p.Gains.NarrationDB != 0 || p.Gains.MusicDB != -18 || p.Gains.AmbienceDB != -22 {
		t.Fatalf("gains = %+v", p.Gains)
	}
	if p.Bitrate != "160k" || p.SampleRate != 48000 {
		t.Fatalf("bitrate %q sample rate %d", p.Bitrate, p.SampleRate)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "missing tts",
			input: "voices:\n  A: en-GB\n",
		},
		{
			name:  "missing voices",
			input: "tts:\n  espeak_ng: true\n",
		},
		{
			name:  "both engines set",
			input: "tts:\n  espeak_ng: true\n  voicegen: gen.sh\nvoices:\n  A: en-GB\n",
		},
		{
			name:  "no engine set",
			input: "tts: {}\nvoices:\n  A: en-GB\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Fatal("Parse() = nil error, want failure")
			}
		})
	}
}

func TestTTSCmd_Voicegen(t *testing.T) {
	p, err := Parse(strings.NewReader(
		"tts:\n  voicegen: tools/voicegen_xtts.sh\nvoices:\n  Ruby: refs/slt.wav\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	tts := p.TTS.TTS()
	if tts.Engine != audio.Voicegen {
		t.Fatalf("engine = %v, want Voicegen", tts.Engine)
	}
	if tts.Command != "tools/voicegen_xtts.sh" {
		t.Fatalf("command = %q", tts.Command)
	}
}
