// Package script parses SFML, the line-oriented story format:
//
//	@key: value directives
//	SPEAKER: text utterances
//	PAUSE: 0.5
//	SFX: <asset> [at=<now|last_start|last_end>] [offset=0.3]
//
// Lines beginning with # are comments.
package script

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Anchor is a named timeline reference point for SFX cues. The parser keeps
// unknown anchor names verbatim; they are rejected when the timeline is built.
type Anchor string

const (
	Now       Anchor = "now"
	LastStart Anchor = "last_start"
	LastEnd   Anchor = "last_end"
)

// Event is one parsed script line. Order of events is significant and is
// never reordered.
type Event interface {
	event()
}

// Directive is document metadata, e.g. title, music, ambience, language.
type Directive struct {
	Key   string
	Value string
}

// Utterance is one line of narration attributed to a speaker.
type Utterance struct {
	Speaker string
	Text    string
}

// Pause is a silence between narration lines.
type Pause struct {
	Duration time.Duration
}

// SoundEffect is a cue placed relative to an anchor. It overlays the
// narration and does not advance the clock.
type SoundEffect struct {
	Asset  string
	Anchor Anchor
	Offset time.Duration
}

func (Directive) event()   {}
func (Utterance) event()   {}
func (Pause) event()       {}
func (SoundEffect) event() {}

// ParseError reports the first malformed line. Parsing stops there; there is
// no partial event list.
type ParseError struct {
	Line   int
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sfml parse error line %d: %s -> %q", e.Line, e.Reason, e.Raw)
}

// Parse turns script text into the ordered event sequence.
func Parse(text string) ([]Event, error) {
	var events []Event
	lineNo := 0
	for raw := range strings.Lines(text) {
		lineNo++
		raw = strings.TrimSuffix(raw, "\n")
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "@"):
			key, value, ok := strings.Cut(line[1:], ":")
			if !ok {
				return nil, &ParseError{lineNo, raw, "directive missing ':'"}
			}
			events = append(events, Directive{
				Key:   strings.TrimSpace(key),
				Value: strings.TrimSpace(value),
			})

		case hasPrefixFold(line, "PAUSE:"):
			_, rest, _ := strings.Cut(line, ":")
			d, err := parseSeconds(rest)
			if err != nil {
				return nil, &ParseError{lineNo, raw, "bad pause duration"}
			}
			events = append(events, Pause{Duration: d})

		case hasPrefixFold(line, "SFX:"):
			_, rest, _ := strings.Cut(line, ":")
			sfx, err := parseSfx(rest)
			if err != nil {
				return nil, &ParseError{lineNo, raw, err.Error()}
			}
			events = append(events, sfx)

		case strings.Contains(line, ":"):
			speaker, t, _ := strings.Cut(line, ":")
			speaker = strings.TrimSpace(speaker)
			t = strings.TrimSpace(t)
			if speaker == "" || t == "" {
				return nil, &ParseError{lineNo, raw, "bad utterance"}
			}
			events = append(events, Utterance{Speaker: speaker, Text: t})

		default:
			return nil, &ParseError{lineNo, raw, "unrecognized line"}
		}
	}
	return events, nil
}

func parseSfx(rest string) (SoundEffect, error) {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return SoundEffect{}, fmt.Errorf("SFX missing asset id")
	}
	sfx := SoundEffect{
		Asset:  fields[0],
		Anchor: LastEnd,
	}
	// Unknown tokens are ignored on purpose. Scripts in the wild rely on it.
	for _, f := range fields[1:] {
		if v, ok := strings.CutPrefix(f, "at="); ok {
			sfx.Anchor = Anchor(v)
			continue
		}
		if v, ok := strings.CutPrefix(f, "offset="); ok {
			d, err := parseSeconds(v)
			if err != nil {
				return SoundEffect{}, fmt.Errorf("bad sfx offset %q", v)
			}
			sfx.Offset = d
		}
	}
	return sfx, nil
}

// GetDirective returns the value of the first directive matching key,
// case-insensitively.
func GetDirective(events []Event, key string) (string, bool) {
	for _, ev := range events {
		if d, ok := ev.(Directive); ok && strings.EqualFold(d.Key, key) {
			return d.Value, true
		}
	}
	return "", false
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func parseSeconds(s string) (time.Duration, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(f * float64(time.Second)), nil
}
