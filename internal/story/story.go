// Package story generates scripts without any model in the loop. The output
// is plain script text: deterministic for a given seed, calm in tone, and
// structured as an intro, three beats and a gentle outro with room for
// sound effects and background beds.
package story

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Config selects the fixed parts of a generated story. The zero seed is a
// valid seed, not a request for randomness.
type Config struct {
	Title    string
	Seed     uint64
	Narrator string

	// Music and Ambience are emitted as bed directives when non-empty.
	Music    string
	Ambience string
}

var (
	places = []string{
		"a quiet lantern shop",
		"a sleepy library",
		"a warm kitchen at night",
		"a moonlit garden",
		"a tiny train station",
	}
	objects = []string{
		"a pocket watch",
		"a paper umbrella",
		"a small music box",
		"a wind-up bird",
		"a map with silver ink",
	}
	femaleNames = []string{"Pearl", "Violet", "Opal", "Iris", "Jade", "Rose", "Amber"}
	maleNames   = []string{"Onyx", "Slate", "Moss", "Copper", "Ember"}
)

func pick(rng *rand.Rand, from []string) string {
	return from[rng.IntN(len(from))]
}

// Generate returns the script text. The same Config always yields the same
// text.
func Generate(cfg Config) string {
	rng := rand.New(rand.NewPCG(cfg.Seed, 0))

	place := pick(rng, places)
	obj := pick(rng, objects)
	her := pick(rng, femaleNames)
	him := pick(rng, maleNames)

	var lines []string
	add := func(format string, a ...any) {
		lines = append(lines, fmt.Sprintf(format, a...))
	}

	add("@title: %s", cfg.Title)
	add("@lang: en")
	if cfg.Music != "" {
		add("@music: %s", cfg.Music)
	}
	if cfg.Ambience != "" {
		add("@ambience: %s", cfg.Ambience)
	}

	add("")
	add("%s: Tonight, we visit %s, where everything is soft and unhurried.", cfg.Narrator, place)
	add("PAUSE: 0.35")

	add("%s: On the counter rests %s. It seems ordinary, until it makes the faintest, friendliest sound.", cfg.Narrator, obj)
	add("SFX: sfx_soft_chime at=last_end offset=0.0")
	add("PAUSE: 0.35")

	add("%s: Hello? I thought I heard something.", her)
	add("PAUSE: 0.25")
	add("%s: Me too. But it sounds... polite.", him)
	add("PAUSE: 0.35")

	add("%s: Together, they lean closer. The %s clicks once, as if asking permission.", cfg.Narrator, obj)
	add("SFX: sfx_soft_click at=last_end offset=0.0")
	add("PAUSE: 0.30")
	add("%s: You can help us fall asleep, can't you?", her)
	add("PAUSE: 0.25")

	add("%s: A gentle breeze moves through the room, though no windows are open.", cfg.Narrator)
	add("SFX: sfx_gentle_wind at=last_end offset=0.0")
	add("PAUSE: 0.35")
	add("%s: If you tell us a story, we'll listen quietly.", him)
	add("PAUSE: 0.25")

	add("%s: The %s answers with a tiny melody, three notes and a pause, like a lullaby learning your name.", cfg.Narrator, obj)
	add("SFX: sfx_musicbox_three_notes at=last_end offset=0.0")
	add("PAUSE: 0.45")

	add("%s: And as the last note fades, the whole %s feels lighter. Breathing becomes easy. Eyes grow heavy.", cfg.Narrator, place)
	add("PAUSE: 0.45")
	add("%s: Goodnight. Sleep deeply, and let the quiet keep watch.", cfg.Narrator)

	return strings.Join(lines, "\n") + "\n"
}
