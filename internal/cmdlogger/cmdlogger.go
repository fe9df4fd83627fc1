// Package cmdlogger is a printf-style facade over log/slog for the command
// line tools.
package cmdlogger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Handler writes bare messages: errors go to stderr, everything else to stdout.
type Handler struct {
	stdout     io.Writer
	stderr     io.Writer
	hasErrored bool
	Level      slog.Leveler
}

var _ slog.Handler = &Handler{}

func New(stdout, stderr io.Writer) *Handler {
	return &Handler{
		stdout: stdout,
		stderr: stderr,
		Level:  slog.LevelInfo,
	}
}

func (h *Handler) SetLevel(level slog.Leveler) {
	h.Level = level
}

// HasErrored reports whether an error has been logged.
func (h *Handler) HasErrored() bool {
	return h.hasErrored
}

func (h *Handler) writer(level slog.Level) io.Writer {
	if level >= slog.LevelWarn {
		return h.stderr
	}

	return h.stdout
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.Level.Level()
}

func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	if record.Level >= slog.LevelError {
		h.hasErrored = true
	}

	_, err := fmt.Fprint(h.writer(record.Level), record.Message+"\n")

	return err
}

func (h *Handler) WithAttrs(_ []slog.Attr) slog.Handler {
	panic("not supported")
}

func (h *Handler) WithGroup(_ string) slog.Handler {
	panic("not supported")
}

func Debugf(msg string, args ...any) {
	slog.Debug(fmt.Sprintf(msg, args...))
}

func Infof(msg string, args ...any) {
	slog.Info(fmt.Sprintf(msg, args...))
}

func Warnf(msg string, args ...any) {
	slog.Warn(fmt.Sprintf(msg, args...))
}

func Errorf(msg string, args ...any) {
	slog.Error(fmt.Sprintf(msg, args...))
}
