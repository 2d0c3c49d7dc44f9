// Package log provides the plain render log output of the storyforge CLI.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// RenderIDKey is the attribute under which a renderer attaches its render id.
// The handler turns it into a line prefix so interleaved concurrent renders
// stay readable.
const RenderIDKey = "render"

// MsgHandler prints records like fmt.Println, prefixed with the render id
// when one is attached.
type MsgHandler struct {
	writer io.Writer
	level  slog.Level
	prefix string
}

func NewMsgHandler(writer io.Writer, level slog.Level) *MsgHandler {
	return &MsgHandler{writer: writer, level: level}
}

func (h *MsgHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level == h.level
}

func (h *MsgHandler) Handle(_ context.Context, record slog.Record) error {
	if h.prefix != "" {
		_, _ = fmt.Fprintf(h.writer, "[%s] ", h.prefix)
	}
	_, _ = fmt.Fprint(h.writer, record.Message)

	record.Attrs(func(a slog.Attr) bool {
		_, _ = fmt.Fprint(h.writer, " ", a.Value)
		return true
	})

	_, _ = fmt.Fprintln(h.writer)
	return nil
}

func (h *MsgHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	for _, a := range attrs {
		if a.Key == RenderIDKey {
			h2.prefix = a.Value.String()
		}
	}
	return &h2
}

func (h *MsgHandler) WithGroup(_ string) slog.Handler {
	return h
}
