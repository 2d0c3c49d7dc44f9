package audio

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

//go:generate go run golang.org/x/tools/cmd/stringer@latest -type Engine
type Engine int

const (
	// EspeakNG synthesizes with espeak-ng. The voice reference is an
	// espeak-ng voice name, e.g. en-GB.
	EspeakNG Engine = iota

	// Voicegen invokes a wrapper command as
	// `<cmd> --text <text> --ref <ref> --out <out>`. The voice reference is
	// a reference wav path.
	Voicegen
)

type TTS struct {
	Engine Engine

	// Command is the wrapper executable for Voicegen.
	Command string
}

// Synthesizer turns one utterance into a wav file using the configured
// engine.
type Synthesizer struct {
	execCmdCtx ExecCmdCtx
	tts        *TTS
}

func NewSynthesizer(execCmdCtx ExecCmdCtx, tts *TTS) *Synthesizer {
	return &Synthesizer{
		execCmdCtx: execCmdCtx,
		tts:        tts,
	}
}

func (s *Synthesizer) Synthesize(ctx context.Context, voiceRef, text, outPath string) error {
	var cmd string
	var arguments []string
	switch s.tts.Engine {
	case EspeakNG:
		cmd = "espeak-ng"
		arguments = []string{"-v", voiceRef, "-w", outPath, text}
	case Voicegen:
		cmd = s.tts.Command
		arguments = []string{"--text", text, "--ref", voiceRef, "--out", outPath}
	default:
		return fmt.Errorf("unknown tts engine %v", s.tts.Engine)
	}

	slog.Debug("execute", "cmd", strings.Join(append([]string{cmd}, arguments...), " "))
	out, err := s.execCmdCtx(ctx, cmd, arguments...).CombinedOutput()
	if err != nil {
		return cmdError(cmd, arguments, out)
	}
	return nil
}
