package logger

import (
	"fmt"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/formatter"
	"github.com/philipp01105/conlog/handler"
	"github.com/philipp01105/conlog/handler/consolehandler"
	"github.com/philipp01105/conlog/linebuf"
)

// traceKeys are the context keys checked, in order, for an error whose
// trace is printed after the message
var traceKeys = [...]string{"exception", "error"}

// ConsoleLogger writes leveled messages to a StyledOutput, one styled
// line at a time (immutable).
//
// A ConsoleLogger holds no locks. Callers logging from several goroutines
// to the same output must serialize the calls themselves.
type ConsoleLogger struct {
	output  handler.StyledOutput
	styles  *formatter.StyleTable
	context core.Context
}

// Builder provides a fluent API for building ConsoleLogger instances
type Builder struct {
	output handler.StyledOutput
	styles *formatter.StyleTable
	fields []core.Field
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithOutput sets the output (default: a console output on stdout)
func (b *Builder) WithOutput(o handler.StyledOutput) *Builder {
	b.output = o
	return b
}

// WithStyles sets the style table swapped in while writing
// (default: formatter.DefaultStyleTable)
func (b *Builder) WithStyles(t *formatter.StyleTable) *Builder {
	b.styles = t
	return b
}

// WithFields adds default context to all log calls
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// Build creates the ConsoleLogger instance
func (b *Builder) Build() *ConsoleLogger {
	output := b.output
	if output == nil {
		output = consolehandler.NewConsoleOutput(consolehandler.ConsoleConfig{})
	}
	styles := b.styles
	if styles == nil {
		styles = formatter.DefaultStyleTable()
	}
	return &ConsoleLogger{
		output:  output,
		styles:  styles,
		context: core.ContextOf(b.fields...),
	}
}

// New creates a ConsoleLogger on output with the default styles
func New(output handler.StyledOutput) *ConsoleLogger {
	return NewBuilder().WithOutput(output).Build()
}

// With creates a new ConsoleLogger with additional default context
func (l *ConsoleLogger) With(fields ...core.Field) *ConsoleLogger {
	return &ConsoleLogger{
		output:  l.output,
		styles:  l.styles,
		context: core.Merge(l.context, core.ContextOf(fields...)),
	}
}

// Output returns the output the logger writes to
func (l *ConsoleLogger) Output() handler.StyledOutput {
	return l.output
}

// Styles returns the style table swapped in while writing
func (l *ConsoleLogger) Styles() *formatter.StyleTable {
	return l.styles
}

// Enabled reports whether the output's current verbosity shows level
func (l *ConsoleLogger) Enabled(level core.Level) bool {
	return l.output.Verbosity().Shows(level)
}

// Log writes message at level. Every {key} naming an entry of ctx (or of
// the logger's default context) is replaced by that value; other braces
// are left alone. The message is split into lines and each line is
// written wrapped in the level's style. If ctx holds an error under
// "exception" or "error", its trace follows as further lines in the
// same style.
//
// Nothing is written when the output's verbosity hides level. The only
// error returned is one from the output's WriteLine, unchanged; the
// remaining lines are then skipped.
func (l *ConsoleLogger) Log(level core.Level, message string, ctx core.Context) error {
	return l.log(level, message, core.Merge(l.context, ctx), true)
}

func (l *ConsoleLogger) log(level core.Level, message string, ctx core.Context, substitute bool) (err error) {
	out := l.output
	if !out.Verbosity().Shows(level) {
		return nil
	}

	restore := swapStyles(out, l.styles)
	defer restore()

	if substitute {
		message = interpolate(message, ctx)
	}

	write := lineWriter(out, level, &err)
	linebuf.Lines(message, write)
	if err != nil {
		return err
	}

	if traced := attachedError(ctx); traced != nil {
		linebuf.Lines(core.TraceOf(traced), write)
	}
	return err
}

// swapStyles installs styles on out, keeping out's decoration, and
// returns the function that puts the previous table and decoration back.
func swapStyles(out handler.StyledOutput, styles *formatter.StyleTable) (restore func()) {
	prevStyles := out.Styles()
	prevDecorated := out.IsDecorated()

	out.SetStyles(styles)
	out.SetDecorated(prevDecorated)

	return func() {
		out.SetStyles(prevStyles)
		out.SetDecorated(prevDecorated)
	}
}

// lineWriter returns an emit func writing each line in level's style.
// After the first failure it records the error in *errp and drops the
// remaining lines.
func lineWriter(out handler.StyledOutput, level core.Level, errp *error) func(string) {
	name := level.String()
	valid := level.Valid()
	return func(line string) {
		if *errp != nil {
			return
		}
		if valid {
			*errp = out.WriteLine(formatter.Wrap(name, line))
		} else {
			*errp = out.WriteLine(formatter.Escape(line))
		}
	}
}

// attachedError returns the first error found under traceKeys. Values
// that are not errors are ignored.
func attachedError(ctx core.Context) error {
	for _, key := range traceKeys {
		if err, ok := ctx[key].(error); ok && err != nil {
			return err
		}
	}
	return nil
}

// logFields is the shared body of the per-level helpers. The level check
// comes first so hidden messages cost no context allocation.
func (l *ConsoleLogger) logFields(level core.Level, msg string, fields []core.Field) {
	if !l.Enabled(level) {
		return
	}
	_ = l.Log(level, msg, core.ContextOf(fields...))
}

func (l *ConsoleLogger) logf(level core.Level, format string, args []interface{}) {
	if !l.Enabled(level) {
		return
	}
	_ = l.log(level, fmt.Sprintf(format, args...), l.context, false)
}

// Emergency logs a message when the system is unusable
func (l *ConsoleLogger) Emergency(msg string, fields ...core.Field) {
	l.logFields(core.EmergencyLevel, msg, fields)
}

// Alert logs a message when action must be taken immediately
func (l *ConsoleLogger) Alert(msg string, fields ...core.Field) {
	l.logFields(core.AlertLevel, msg, fields)
}

// Critical logs a critical condition
func (l *ConsoleLogger) Critical(msg string, fields ...core.Field) {
	l.logFields(core.CriticalLevel, msg, fields)
}

// Error logs an error message
func (l *ConsoleLogger) Error(msg string, fields ...core.Field) {
	l.logFields(core.ErrorLevel, msg, fields)
}

// Warning logs a warning message
func (l *ConsoleLogger) Warning(msg string, fields ...core.Field) {
	l.logFields(core.WarningLevel, msg, fields)
}

// Notice logs a normal but significant event
func (l *ConsoleLogger) Notice(msg string, fields ...core.Field) {
	l.logFields(core.NoticeLevel, msg, fields)
}

// Info logs an info message
func (l *ConsoleLogger) Info(msg string, fields ...core.Field) {
	l.logFields(core.InfoLevel, msg, fields)
}

// Debug logs a debug message
func (l *ConsoleLogger) Debug(msg string, fields ...core.Field) {
	l.logFields(core.DebugLevel, msg, fields)
}

// Emergencyf logs a formatted emergency message
func (l *ConsoleLogger) Emergencyf(format string, args ...interface{}) {
	l.logf(core.EmergencyLevel, format, args)
}

// Alertf logs a formatted alert message
func (l *ConsoleLogger) Alertf(format string, args ...interface{}) {
	l.logf(core.AlertLevel, format, args)
}

// Criticalf logs a formatted critical message
func (l *ConsoleLogger) Criticalf(format string, args ...interface{}) {
	l.logf(core.CriticalLevel, format, args)
}

// Errorf logs a formatted error message
func (l *ConsoleLogger) Errorf(format string, args ...interface{}) {
	l.logf(core.ErrorLevel, format, args)
}

// Warningf logs a formatted warning message
func (l *ConsoleLogger) Warningf(format string, args ...interface{}) {
	l.logf(core.WarningLevel, format, args)
}

// Noticef logs a formatted notice message
func (l *ConsoleLogger) Noticef(format string, args ...interface{}) {
	l.logf(core.NoticeLevel, format, args)
}

// Infof logs a formatted info message
func (l *ConsoleLogger) Infof(format string, args ...interface{}) {
	l.logf(core.InfoLevel, format, args)
}

// Debugf logs a formatted debug message
func (l *ConsoleLogger) Debugf(format string, args ...interface{}) {
	l.logf(core.DebugLevel, format, args)
}
