package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"github.com/specialistvlad/answergrid/internal/ctxlog"
)

// newLoggers creates the main and cockpit loggers for a log format. Only one
// of them is active at a time: "cockpit" silences the main logger, every
// other format silences the cockpit channel, and "none" silences both. It does
// not set the global logger, allowing for isolated logger instances.
func newLoggers(levelStr, formatStr string, outW io.Writer) (main, cockpit *slog.Logger) {
	level := parseLevel(levelStr)
	handlerOpts := &slog.HandlerOptions{Level: level}

	switch formatStr {
	case "none":
		return ctxlog.Discard(), ctxlog.Discard()
	case "cockpit":
		return ctxlog.Discard(), slog.New(newCockpitHandler(outW, level))
	case "json":
		return slog.New(slog.NewJSONHandler(outW, handlerOpts)), ctxlog.Discard()
	case "stdout":
		return slog.New(slog.NewTextHandler(outW, handlerOpts)), ctxlog.Discard()
	default:
		handlerOpts.ReplaceAttr = colorizeLevel(outW)
		return slog.New(slog.NewTextHandler(outW, handlerOpts)), ctxlog.Discard()
	}
}

func parseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// colorizeLevel returns a ReplaceAttr hook that colors the level by severity.
// Colors are dropped when outW is not a terminal or NO_COLOR is set.
func colorizeLevel(outW io.Writer) func(groups []string, a slog.Attr) slog.Attr {
	output := termenv.NewOutput(outW)
	if output.EnvNoColor() {
		output = termenv.NewOutput(outW, termenv.WithProfile(termenv.Ascii))
	}

	colors := map[slog.Level]string{
		slog.LevelDebug: "14", // bright cyan
		slog.LevelInfo:  "15", // white
		slog.LevelWarn:  "3",  // yellow
		slog.LevelError: "9",  // bright red
	}

	return func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) > 0 || a.Key != slog.LevelKey {
			return a
		}
		level, ok := a.Value.Any().(slog.Level)
		if !ok {
			return a
		}
		style := output.String(level.String()).Foreground(output.Color(colors[level]))
		if level >= slog.LevelError {
			style = style.Bold()
		}
		return slog.String(a.Key, style.String())
	}
}

// cockpitHandler writes records in the line format a management UI scrapes:
//
//	answergrid.status.INFO.message=password is missing in answers.
//
// Attributes are not part of the format and are dropped.
type cockpitHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	level slog.Leveler
}

func newCockpitHandler(w io.Writer, level slog.Leveler) *cockpitHandler {
	return &cockpitHandler{mu: &sync.Mutex{}, w: w, level: level}
}

func (h *cockpitHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *cockpitHandler) Handle(_ context.Context, r slog.Record) error {
	msg := strings.ReplaceAll(r.Message, "\n", " ")
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.w, "answergrid.status.%s.message=%s\n", r.Level.String(), msg)
	return err
}

func (h *cockpitHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *cockpitHandler) WithGroup(string) slog.Handler { return h }
