package audio

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_Args(t *testing.T) {
	g := &Graph{
		Narration:     "work/narration.wav",
		NarrationGain: 0,
		Beds: []Bed{
			{Path: "assets/music/rain.ogg", GainDB: -18},
			{Path: "assets/ambience/wind.ogg", GainDB: -22},
		},
		Effects: []Effect{
			{Path: "assets/sfx/chime.wav", Delay: 1500 * time.Millisecond},
			{Path: "assets/sfx/thunder.wav", Delay: 0},
		},
		Duration: 2500 * time.Millisecond,
		Output:   "out/The_Lighthouse.mp3",
		Bitrate:  "160k",
	}

	args := g.Args()

	assert.Equal(t, []string{
		"-i", "work/narration.wav",
		"-i", "assets/music/rain.ogg",
		"-i", "assets/ambience/wind.ogg",
		"-i", "assets/sfx/chime.wav",
		"-i", "assets/sfx/thunder.wav",
	}, args[:10])

	filter := argAfter(t, args, "-filter_complex")
	assert.Equal(t, strings.Join([]string{
		"[0:a]volume=0dB[narr]",
		"[1:a]aloop=loop=-1:size=2e+09,volume=-18dB,atrim=0:2.5[bed1]",
		"[2:a]aloop=loop=-1:size=2e+09,volume=-22dB,atrim=0:2.5[bed2]",
		"[3:a]adelay=1500|1500[fx1]",
		"[4:a]adelay=0|0[fx2]",
		"[narr][bed1][bed2][fx1][fx2]amix=inputs=5:normalize=0[mix]",
	}, ";"), filter)

	assert.Equal(t, "[mix]", argAfter(t, args, "-map"))
	assert.Equal(t, "libmp3lame", argAfter(t, args, "-c:a"))
	assert.Equal(t, "160k", argAfter(t, args, "-b:a"))
	assert.Equal(t, "out/The_Lighthouse.mp3", args[len(args)-1])
}

func TestGraph_Args_NarrationOnly(t *testing.T) {
	g := &Graph{
		Narration: "narration.wav",
		Duration:  10 * time.Second,
		Output:    "story.mp3",
		Bitrate:   "160k",
	}

	filter := argAfter(t, g.Args(), "-filter_complex")
	assert.Equal(t, "[0:a]volume=0dB[narr];[narr]amix=inputs=1:normalize=0[mix]", filter)
}

func argAfter(t *testing.T, args []string, flag string) string {
	t.Helper()
	for i, a := range args {
		if a == flag {
			require.Less(t, i+1, len(args))
			return args[i+1]
		}
	}
	t.Fatalf("flag %s not found in %v", flag, args)
	return ""
}

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Lighthouse", "The_Lighthouse"},
		{"a/b:c", "a_b_c"},
		{"already_safe-1", "already_safe-1"},
		{"Füchse über 7", "Füchse_über_7"},
	}
	for _, tt := range tests {
		if got := sanitizeTitle(tt.in); got != tt.want {
			t.Fatalf("sanitizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
