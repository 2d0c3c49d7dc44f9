package m3u

import (
	"bytes"
	"testing"
	"time"
)

func TestPlaylist_WriteTo(t *testing.T) {
	type add struct {
		path  string
		title string
		dur   time.Duration
	}
	tests := []struct {
		name    string
		entries []add
		want    string
	}{
		{
			name: "plain ascii path",
			entries: []add{
				{"/stories/The_Lighthouse.mp3", "The Lighthouse", 150 * time.Second},
			},
			want: "#EXTM3U\n" +
				"#EXTINF:150,The Lighthouse\n" +
				"file:///stories/The_Lighthouse.mp3\n",
		},
		{
			name: "fractional seconds truncate",
			entries: []add{
				{"/stories/story.mp3", "story", 2500 * time.Millisecond},
			},
			want: "#EXTM3U\n" +
				"#EXTINF:2,story\n" +
				"file:///stories/story.mp3\n",
		},
		{
			name: "non-ascii and percent are escaped in the path only",
			entries: []add{
				{"/stories/Füchse_100%.mp3", "Füchse 100%", 3 * time.Second},
			},
			want: "#EXTM3U\n" +
				"#EXTINF:3,Füchse 100%\n" +
				"file:///stories/Fu%CC%88chse_100%25.mp3\n",
		},
		{
			name: "entries keep insertion order",
			entries: []add{
				{"/stories/b.mp3", "b", time.Second},
				{"/stories/a.mp3", "a", time.Second},
			},
			want: "#EXTM3U\n" +
				"#EXTINF:1,b\n" +
				"file:///stories/b.mp3\n" +
				"#EXTINF:1,a\n" +
				"file:///stories/a.mp3\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Playlist
			for _, e := range tt.entries {
				p.Add(e.path, e.title, e.dur)
			}
			buf := &bytes.Buffer{}
			if err := p.WriteTo(buf); err != nil {
				t.Fatalf("WriteTo() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Fatalf("WriteTo()\ngot\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}
