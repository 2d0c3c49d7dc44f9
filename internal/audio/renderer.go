package audio

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	stlog "github.com/tmarlen/storyforge/internal/log"
	"github.com/tmarlen/storyforge/internal/script"
	"github.com/tmarlen/storyforge/internal/timeline"
)

// Options is the per-render read-only configuration.
type Options struct {
	// Voices maps a speaker name to its voice reference.
	Voices map[string]string

	AssetsDir string
	OutDir    string

	NarrationGainDB float64
	MusicGainDB     float64
	AmbienceGainDB  float64

	Bitrate    string
	SampleRate int
}

// Artifact is one rendered story.
type Artifact struct {
	Path     string
	Title    string
	Duration time.Duration
}

// OutputName derives the artifact filename from the title directive. An
// absent or empty title falls back to "story".
func OutputName(events []script.Event) string {
	title, ok := script.GetDirective(events, "title")
	if !ok || title == "" {
		title = "story"
	}
	return sanitizeTitle(title) + ".mp3"
}

// Renderer renders script text into one mixed audio file. It holds no
// per-render state; concurrent renders share nothing but the binaries they
// invoke.
type Renderer struct {
	opts   Options
	synth  *Synthesizer
	probe  *FFprobe
	ffmpeg *FFmpeg
	assets *DirResolver
}

func NewRenderer(execCmdCtx ExecCmdCtx, tts *TTS, opts Options) *Renderer {
	return &Renderer{
		opts:   opts,
		synth:  NewSynthesizer(execCmdCtx, tts),
		probe:  NewFFprobe(execCmdCtx),
		ffmpeg: NewFFmpeg(execCmdCtx, opts.SampleRate),
		assets: &DirResolver{Root: opts.AssetsDir},
	}
}

// Render parses text, builds the timeline and issues the single mix call.
// The scoped working directory is removed on every exit path; no partial
// artifact survives a failure.
func (r *Renderer) Render(ctx context.Context, text string) (*Artifact, error) {
	events, err := script.Parse(text)
	if err != nil {
		return nil, err
	}

	outputName := OutputName(events)

	id := uuid.NewString()[:8]
	log := slog.With(stlog.RenderIDKey, id)

	workDir, err := os.MkdirTemp("", "storyforge-"+id+"-")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = os.RemoveAll(workDir)
	}()

	builder := &timeline.Builder{
		Synth:   r.synth,
		Probe:   r.probe,
		Silence: r.ffmpeg,
		Assets:  r.assets,
		Voices:  r.opts.Voices,
		WorkDir: workDir,
	}
	tl, err := builder.Build(ctx, events)
	if err != nil {
		return nil, err
	}

	narration, err := r.concatNarration(ctx, workDir, tl.Segments)
	if err != nil {
		return nil, err
	}

	graph := &Graph{
		Narration:     narration,
		NarrationGain: r.opts.NarrationGainDB,
		Duration:      tl.Total,
		Bitrate:       r.opts.Bitrate,
	}

	// An empty directive value means no bed, same as an absent directive.
	if name, ok := script.GetDirective(events, "music"); ok && name != "" {
		path, err := r.assets.Resolve(name)
		if err != nil {
			return nil, err
		}
		graph.Beds = append(graph.Beds, Bed{Path: path, GainDB: r.opts.MusicGainDB})
	}
	if name, ok := script.GetDirective(events, "ambience"); ok && name != "" {
		path, err := r.assets.Resolve(name)
		if err != nil {
			return nil, err
		}
		graph.Beds = append(graph.Beds, Bed{Path: path, GainDB: r.opts.AmbienceGainDB})
	}

	for _, p := range tl.Placements {
		graph.Effects = append(graph.Effects, Effect{Path: p.Path, Delay: p.At})
	}

	if err := mkdirAllIfNotExists(r.opts.OutDir); err != nil {
		return nil, err
	}
	graph.Output = filepath.Join(r.opts.OutDir, outputName)

	if err := r.ffmpeg.Mix(ctx, graph); err != nil {
		return nil, err
	}

	log.Info("rendered", "path", graph.Output, "duration", tl.Total)

	return &Artifact{
		Path:     graph.Output,
		Title:    strings.TrimSuffix(outputName, ".mp3"),
		Duration: tl.Total,
	}, nil
}

// concatNarration writes the concat manifest and joins the segments into one
// continuous narration bed.
func (r *Renderer) concatNarration(ctx context.Context, workDir string, segments []timeline.Segment) (string, error) {
	var b strings.Builder
	for _, s := range segments {
		fmt.Fprintf(&b, "file '%s'\n", strings.ReplaceAll(s.Path, "'", `'\''`))
	}

	manifest := filepath.Join(workDir, "concat.txt")
	if err := os.WriteFile(manifest, []byte(b.String()), 0o600); err != nil {
		return "", err
	}

	narration := filepath.Join(workDir, "narration.wav")
	if err := r.ffmpeg.Concat(ctx, manifest, narration); err != nil {
		return "", err
	}
	return narration, nil
}

// sanitizeTitle keeps letters, digits, '-' and '_'; everything else becomes
// '_' so the title is a safe filename on any filesystem.
func sanitizeTitle(title string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, title)
}

func mkdirAllIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModePerm)
	}
	return nil
}
