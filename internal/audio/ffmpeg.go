package audio

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// FFmpeg wraps the ffmpeg binary for silence generation, narration bed
// concatenation and the final mix.
type FFmpeg struct {
	execCmdCtx ExecCmdCtx
	sampleRate int
}

func NewFFmpeg(execCmdCtx ExecCmdCtx, sampleRate int) *FFmpeg {
	return &FFmpeg{
		execCmdCtx: execCmdCtx,
		sampleRate: sampleRate,
	}
}

// WriteSilence renders d of mono silence at the configured sample rate.
func (f *FFmpeg) WriteSilence(ctx context.Context, d time.Duration, outPath string) error {
	if d <= 0 {
		return fmt.Errorf("negative or zero duration for silence: %s", d)
	}
	return f.run(ctx,
		"-f", "lavfi",
		"-i", fmt.Sprintf("anullsrc=r=%d:cl=mono", f.sampleRate),
		"-t", formatSeconds(d),
		outPath,
	)
}

// Concat joins the files listed in the manifest, in order, without
// re-encoding. The manifest uses the concat demuxer's `file '...'` syntax.
func (f *FFmpeg) Concat(ctx context.Context, manifestPath, outPath string) error {
	return f.run(ctx,
		"-f", "concat",
		"-safe", "0",
		"-i", manifestPath,
		"-c", "copy",
		outPath,
	)
}

// Mix issues the single mixing invocation described by g.
func (f *FFmpeg) Mix(ctx context.Context, g *Graph) error {
	return f.run(ctx, g.Args()...)
}

func (f *FFmpeg) run(ctx context.Context, args ...string) error {
	arguments := append([]string{"-hide_banner", "-loglevel", "error", "-y"}, args...)

	slog.Debug("execute", "cmd", strings.Join(append([]string{"ffmpeg"}, arguments...), " "))
	out, err := f.execCmdCtx(ctx, "ffmpeg", arguments...).CombinedOutput()
	if err != nil {
		return cmdError("ffmpeg", arguments, out)
	}
	return nil
}

func cmdError(cmd string, args []string, out []byte) error {
	return fmt.Errorf("err: %s %s\n%s",
		cmd,
		strings.Join(args, " "),
		strings.SplitN(string(out), "\n", 1)[0],
	)
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
