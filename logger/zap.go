package logger

import (
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/conlog/core"
)

// zapCore implements zapcore.Core on top of a ConsoleLogger, so that
// zap.New(NewZapCore(l)) logs through l.
type zapCore struct {
	logger *ConsoleLogger
	fields core.Context
}

// NewZapCore returns a zapcore.Core writing through l. Entry fields
// become the message context; the entry's stack, when zap captured one,
// is printed after the message.
func NewZapCore(l *ConsoleLogger) zapcore.Core {
	return &zapCore{logger: l}
}

func (c *zapCore) Enabled(level zapcore.Level) bool {
	return c.logger.Enabled(zapLevelToCore(level))
}

func (c *zapCore) With(fields []zapcore.Field) zapcore.Core {
	return &zapCore{
		logger: c.logger,
		fields: core.Merge(c.fields, zapFieldsToContext(fields)),
	}
}

func (c *zapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *zapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	ctx := make(core.Context, len(c.fields)+len(fields)+2)
	for k, v := range c.fields {
		ctx[k] = v
	}
	for k, v := range zapFieldsToContext(fields) {
		ctx[k] = v
	}
	if ent.LoggerName != "" {
		ctx["logger"] = ent.LoggerName
	}
	if ent.Caller.Defined {
		ctx["caller"] = ent.Caller.TrimmedPath()
	}
	if ent.Stack != "" {
		if _, ok := ctx["exception"].(error); !ok {
			ctx["exception"] = stackText(ent.Stack)
		}
	}
	return c.logger.Log(zapLevelToCore(ent.Level), ent.Message, ctx)
}

func (c *zapCore) Sync() error {
	return nil
}

// zapFieldsToContext encodes fields into a map. Error fields keep the
// error value so its trace can be printed.
func zapFieldsToContext(fields []zapcore.Field) core.Context {
	if len(fields) == 0 {
		return nil
	}
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	ctx := core.Context(enc.Fields)
	for _, f := range fields {
		if f.Type == zapcore.ErrorType {
			if err, ok := f.Interface.(error); ok {
				ctx[f.Key] = err
			}
		}
	}
	return ctx
}

// zapLevelToCore converts a zapcore.Level to a core.Level
func zapLevelToCore(level zapcore.Level) core.Level {
	switch level {
	case zapcore.DebugLevel:
		return core.DebugLevel
	case zapcore.InfoLevel:
		return core.InfoLevel
	case zapcore.WarnLevel:
		return core.WarningLevel
	case zapcore.ErrorLevel:
		return core.ErrorLevel
	case zapcore.DPanicLevel:
		return core.CriticalLevel
	case zapcore.PanicLevel:
		return core.AlertLevel
	case zapcore.FatalLevel:
		return core.EmergencyLevel
	default:
		if level < zapcore.DebugLevel {
			return core.DebugLevel
		}
		return core.EmergencyLevel
	}
}

// stackText is a stack captured by zap, attached as a traced error
type stackText string

func (s stackText) Error() string { return "stack trace" }

func (s stackText) Trace() string { return string(s) }
