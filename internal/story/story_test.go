package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmarlen/storyforge/internal/script"
)

func TestGenerate_Deterministic(t *testing.T) {
	cfg := Config{Title: "A Quiet Story", Seed: 7, Narrator: "Ruby"}
	assert.Equal(t, Generate(cfg), Generate(cfg))

	other := cfg
	other.Seed = 8
	assert.NotEqual(t, Generate(cfg), Generate(other))
}

func TestGenerate_Parses(t *testing.T) {
	cfg := Config{Title: "A Quiet Story", Seed: 0, Narrator: "Ruby"}
	events, err := script.Parse(Generate(cfg))
	require.NoError(t, err)

	title, ok := script.GetDirective(events, "title")
	require.True(t, ok)
	assert.Equal(t, "A Quiet Story", title)

	var utterances, pauses, effects int
	narrated := false
	for _, ev := range events {
		switch ev := ev.(type) {
		case script.Utterance:
			utterances++
			if ev.Speaker == "Ruby" {
				narrated = true
			}
		case script.Pause:
			pauses++
		case script.SoundEffect:
			effects++
			assert.Equal(t, script.LastEnd, ev.Anchor)
		}
	}
	assert.True(t, narrated, "narrator speaks")
	assert.GreaterOrEqual(t, utterances, 8)
	assert.GreaterOrEqual(t, pauses, 8)
	assert.Equal(t, 4, effects)
}

func TestGenerate_BedDirectives(t *testing.T) {
	cfg := Config{Title: "t", Narrator: "Ruby"}
	events, err := script.Parse(Generate(cfg))
	require.NoError(t, err)
	_, ok := script.GetDirective(events, "music")
	assert.False(t, ok, "no music directive without an asset")
	_, ok = script.GetDirective(events, "ambience")
	assert.False(t, ok, "no ambience directive without an asset")

	cfg.Music = "music/rain.ogg"
	cfg.Ambience = "ambience/wind.ogg"
	events, err = script.Parse(Generate(cfg))
	require.NoError(t, err)
	music, ok := script.GetDirective(events, "music")
	require.True(t, ok)
	assert.Equal(t, "music/rain.ogg", music)
	ambience, ok := script.GetDirective(events, "ambience")
	require.True(t, ok)
	assert.Equal(t, "ambience/wind.ogg", ambience)
}
