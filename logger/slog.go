package logger

import (
	"context"
	"log/slog"

	"github.com/philipp01105/conlog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// ConsoleLogger. Record attributes become the message context, so a
// record "user {user} joined" with attr user=alice prints
// "user alice joined".
type SlogHandler struct {
	logger *ConsoleLogger
	attrs  core.Context
	group  string
}

// NewSlogHandler creates a new slog.Handler adapter writing through l
func NewSlogHandler(l *ConsoleLogger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled reports whether the output's verbosity shows the level
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.Enabled(slogLevelToCore(level))
}

// Handle logs the record through the wrapped logger
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	ctx := make(core.Context, len(s.attrs)+record.NumAttrs())
	for k, v := range s.attrs {
		ctx[k] = v
	}
	record.Attrs(func(a slog.Attr) bool {
		addSlogAttr(ctx, s.group, a)
		return true
	})
	return s.logger.Log(slogLevelToCore(record.Level), record.Message, ctx)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make(core.Context, len(s.attrs)+len(attrs))
	for k, v := range s.attrs {
		newAttrs[k] = v
	}
	for _, a := range attrs {
		addSlogAttr(newAttrs, s.group, a)
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  newAttrs,
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  s.attrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level. Levels between
// the named slog levels round down.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError+8:
		return core.EmergencyLevel
	case level >= slog.LevelError+6:
		return core.AlertLevel
	case level >= slog.LevelError+4:
		return core.CriticalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo+2:
		return core.NoticeLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// addSlogAttr stores a under its dotted key, flattening groups
func addSlogAttr(ctx core.Context, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			addSlogAttr(ctx, key, ga)
		}
		return
	}
	ctx[key] = a.Value.Any()
}
