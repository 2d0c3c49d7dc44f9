package audio

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// FFprobe measures audio durations. A probe failure is fatal to the render;
// there is no zero-duration fallback because every later anchor would shift.
type FFprobe struct {
	execCmdCtx ExecCmdCtx
}

func NewFFprobe(execCmdCtx ExecCmdCtx) *FFprobe {
	return &FFprobe{execCmdCtx: execCmdCtx}
}

func (p *FFprobe) Duration(ctx context.Context, path string) (time.Duration, error) {
	arguments := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "json",
		path,
	}

	slog.Debug("execute", "cmd", strings.Join(append([]string{"ffprobe"}, arguments...), " "))
	out, err := p.execCmdCtx(ctx, "ffprobe", arguments...).CombinedOutput()
	if err != nil {
		return 0, cmdError("ffprobe", arguments, out)
	}

	var result struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal(out, &result); err != nil {
		return 0, fmt.Errorf("ffprobe output for %s: %w", path, err)
	}
	f, err := strconv.ParseFloat(result.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration for %s: %w", path, err)
	}
	return time.Duration(f * float64(time.Second)), nil
}
