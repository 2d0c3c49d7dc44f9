package audio

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Bed is an optional background track (music or ambience). It is looped from
// its source and trimmed to the narration length inside the mix graph.
type Bed struct {
	Path   string
	GainDB float64
}

// Effect is a scheduled sound effect, played at source level after Delay.
type Effect struct {
	Path  string
	Delay time.Duration
}

// Graph describes the single ffmpeg invocation that produces the artifact.
// All looping, delay and summation happen inside one filter graph so relative
// timing is exact and not subject to drift from sequential re-encodes.
type Graph struct {
	// Narration is the concatenated narration bed.
	Narration     string
	NarrationGain float64

	Beds    []Bed
	Effects []Effect

	// Duration is the narration bed length; beds are trimmed to it.
	Duration time.Duration

	Output  string
	Bitrate string
}

// Args compiles the graph into the ffmpeg argument list.
func (g *Graph) Args() []string {
	inputs := []string{"-i", g.Narration}
	var filters []string
	var mix []string

	filters = append(filters, fmt.Sprintf("[0:a]volume=%gdB[narr]", g.NarrationGain))
	mix = append(mix, "[narr]")

	idx := 1
	for i, bed := range g.Beds {
		inputs = append(inputs, "-i", bed.Path)
		label := fmt.Sprintf("bed%d", i+1)
		filters = append(filters, fmt.Sprintf(
			"[%d:a]aloop=loop=-1:size=2e+09,volume=%gdB,atrim=0:%s[%s]",
			idx, bed.GainDB, formatSeconds(g.Duration), label))
		mix = append(mix, "["+label+"]")
		idx++
	}

	for i, fx := range g.Effects {
		inputs = append(inputs, "-i", fx.Path)
		ms := fx.Delay.Milliseconds()
		label := fmt.Sprintf("fx%d", i+1)
		// Same delay on every channel.
		filters = append(filters, fmt.Sprintf("[%d:a]adelay=%d|%d[%s]", idx, ms, ms, label))
		mix = append(mix, "["+label+"]")
		idx++
	}

	// The sum is not loudness-normalized. Balance comes from the per-track
	// gains alone.
	filters = append(filters, fmt.Sprintf("%samix=inputs=%d:normalize=0[mix]",
		strings.Join(mix, ""), len(mix)))

	return slices.Concat(
		inputs,
		[]string{
			"-filter_complex", strings.Join(filters, ";"),
			"-map", "[mix]",
			"-c:a", "libmp3lame",
			"-b:a", g.Bitrate,
			g.Output,
		},
	)
}
