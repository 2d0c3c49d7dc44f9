package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/tmarlen/storyforge/internal/audio"
	"github.com/tmarlen/storyforge/internal/config"
	"github.com/tmarlen/storyforge/internal/m3u"
	"github.com/tmarlen/storyforge/internal/script"
)

const playlistName = "stories.m3u"

// run renders every script and writes a playlist of the artifacts. Renders
// share nothing: each owns its working directory and timeline, so they may
// run concurrently without coordination.
func run(ctx context.Context, cfg *config.Producer, scripts []string, jobs int) error {
	if jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", jobs)
	}

	texts, err := readScripts(scripts)
	if err != nil {
		return err
	}

	renderer := audio.NewRenderer(
		audio.ToExecCmdCtx(exec.CommandContext),
		cfg.TTS.TTS(),
		cfg.Options(),
	)

	artifacts := make([]*audio.Artifact, len(scripts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, text := range texts {
		g.Go(func() error {
			artifact, err := renderer.Render(gctx, text)
			if err != nil {
				return err
			}
			artifacts[i] = artifact
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return writePlaylist(cfg.OutDir, artifacts)
}

// readScripts reads and parses every script up front so that scripts whose
// titles collide on the same output file are rejected before any render
// starts. Concurrent renders into one path would clobber each other.
func readScripts(paths []string) ([]string, error) {
	texts := make([]string, len(paths))
	outputs := make(map[string]string, len(paths))
	for i, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		text := string(raw)
		events, err := script.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		name := audio.OutputName(events)
		if prev, ok := outputs[name]; ok {
			return nil, fmt.Errorf("scripts %s and %s both render to %s; give them distinct titles", prev, path, name)
		}
		outputs[name] = path
		texts[i] = text
	}
	return texts, nil
}

func writePlaylist(outDir string, artifacts []*audio.Artifact) error {
	var playlist m3u.Playlist
	for _, a := range artifacts {
		abs, err := filepath.Abs(a.Path)
		if err != nil {
			return err
		}
		playlist.Add(abs, a.Title, a.Duration)
	}

	f, err := os.Create(filepath.Join(outDir, playlistName))
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return playlist.WriteTo(f)
}
