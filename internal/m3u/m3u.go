// Package m3u writes an extended m3u playlist for rendered stories.
package m3u

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

type entry struct {
	absFilePath string
	title       string
	dur         time.Duration
}

type Playlist struct {
	entries []entry
}

// Add appends one rendered story. The title becomes the display name of the
// playlist entry.
func (p *Playlist) Add(absFilePath, title string, dur time.Duration) {
	p.entries = append(p.entries, entry{absFilePath, title, dur})
}

func (p *Playlist) WriteTo(w io.Writer) error {
	_, err := io.WriteString(w, "#EXTM3U\n")
	if err != nil {
		return err
	}
	for _, e := range p.entries {
		_, err = fmt.Fprintf(w, "#EXTINF:%d,%s\n", int(e.dur.Seconds()), e.title)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "file://%s\n", escape(e.absFilePath))
		if err != nil {
			return err
		}
	}
	return nil
}

// escape percent-encodes bytes outside ASCII (after NFD normalization, the
// form file managers use on disk) plus '%' itself.
func escape(input string) string {
	s := norm.NFD.String(input)
	var b strings.Builder
	for _, c := range []byte(s) {
		if c > 127 || c == '%' {
			fmt.Fprintf(&b, "%%%02X", c)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
