// Package timeline turns parsed script events into a schedule of narration
// segments and sound-effect placements on one continuous clock.
package timeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/tmarlen/storyforge/internal/script"
)

// Synthesizer produces a narration segment for one utterance.
type Synthesizer interface {
	Synthesize(ctx context.Context, voiceRef, text, outPath string) error
}

// Prober measures the duration of an audio file.
type Prober interface {
	Duration(ctx context.Context, path string) (time.Duration, error)
}

// SilenceWriter produces a silent segment of the given length.
type SilenceWriter interface {
	WriteSilence(ctx context.Context, d time.Duration, outPath string) error
}

// AssetResolver maps an asset id to an existing file path.
type AssetResolver interface {
	Resolve(id string) (string, error)
}

// Segment is one narration or silence slice of the bed. Segments are
// contiguous: each starts where the previous one ended.
type Segment struct {
	Path  string
	Start time.Duration
	End   time.Duration
}

// Placement is a resolved sound effect: play Path starting at At. Placements
// overlay the bed and never move the clock.
type Placement struct {
	Path string
	At   time.Duration
}

// Timeline is the finished schedule for one render.
type Timeline struct {
	Segments   []Segment
	Placements []Placement
	Total      time.Duration
}

// ErrEmptyScript is returned before any external call when a script contains
// no narration lines.
var ErrEmptyScript = errors.New("script contains no narration lines")

// NoVoiceError is a configuration error: the script names a speaker that has
// no voice reference in the producer config.
type NoVoiceError struct {
	Speaker string
}

func (e *NoVoiceError) Error() string {
	return fmt.Sprintf("no voice configured for speaker %q", e.Speaker)
}

// UnknownAnchorError rejects an SFX anchor outside now/last_start/last_end.
type UnknownAnchorError struct {
	Anchor script.Anchor
}

func (e *UnknownAnchorError) Error() string {
	return fmt.Sprintf("unknown sfx anchor %q", e.Anchor)
}

// Builder walks events in document order and threads the running clock and
// anchors through the walk. Synthesis is strictly sequential: segment N's
// measured duration determines segment N+1's start.
type Builder struct {
	Synth   Synthesizer
	Probe   Prober
	Silence SilenceWriter
	Assets  AssetResolver

	// Voices maps a speaker name to its voice reference.
	Voices map[string]string

	// WorkDir receives the per-render segment files.
	WorkDir string
}

// Build produces the timeline. Any failure aborts the whole render; nothing
// already synthesized is reused or retried.
func (b *Builder) Build(ctx context.Context, events []script.Event) (*Timeline, error) {
	utterances := 0
	for _, ev := range events {
		if _, ok := ev.(script.Utterance); ok {
			utterances++
		}
	}
	if utterances == 0 {
		return nil, ErrEmptyScript
	}

	var (
		tl        Timeline
		current   time.Duration
		lastStart time.Duration
		lastEnd   time.Duration
	)

	segIdx := 0
	for _, ev := range events {
		switch ev := ev.(type) {
		case script.Utterance:
			ref, ok := b.Voices[ev.Speaker]
			if !ok {
				return nil, &NoVoiceError{Speaker: ev.Speaker}
			}
			segIdx++
			out := filepath.Join(b.WorkDir, fmt.Sprintf("seg_%04d.wav", segIdx))
			if err := b.Synth.Synthesize(ctx, ref, ev.Text, out); err != nil {
				return nil, err
			}
			dur, err := b.Probe.Duration(ctx, out)
			if err != nil {
				return nil, err
			}
			lastStart = current
			current += dur
			lastEnd = current
			tl.Segments = append(tl.Segments, Segment{Path: out, Start: lastStart, End: current})

		case script.Pause:
			if ev.Duration < 0 {
				return nil, fmt.Errorf("negative pause duration %s", ev.Duration)
			}
			if ev.Duration == 0 {
				continue
			}
			segIdx++
			out := filepath.Join(b.WorkDir, fmt.Sprintf("sil_%04d.wav", segIdx))
			if err := b.Silence.WriteSilence(ctx, ev.Duration, out); err != nil {
				return nil, err
			}
			start := current
			current += ev.Duration
			lastEnd = current
			// last_start is untouched: an SFX anchored there still refers to
			// the most recent narration line.
			tl.Segments = append(tl.Segments, Segment{Path: out, Start: start, End: current})

		case script.SoundEffect:
			var at time.Duration
			switch ev.Anchor {
			case script.Now:
				at = current
			case script.LastStart:
				at = lastStart
			case script.LastEnd:
				at = lastEnd
			default:
				return nil, &UnknownAnchorError{Anchor: ev.Anchor}
			}
			path, err := b.Assets.Resolve(ev.Asset)
			if err != nil {
				return nil, err
			}
			at += ev.Offset
			if at < 0 {
				at = 0
			}
			tl.Placements = append(tl.Placements, Placement{Path: path, At: at})

		case script.Directive:
			// Read before the walk, not scheduled.
		}
	}

	tl.Total = current
	return &tl, nil
}
