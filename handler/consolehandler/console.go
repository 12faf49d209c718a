package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/formatter"
	"github.com/philipp01105/conlog/handler"
)

// ColorMode selects whether a ConsoleOutput starts decorated
type ColorMode int

const (
	// ColorAuto decorates terminals unless NO_COLOR is set
	ColorAuto ColorMode = iota
	// ColorAlways decorates regardless of the destination
	ColorAlways
	// ColorNever strips all styles
	ColorNever
)

// ConsoleConfig holds configuration for a console output
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Verbosity threshold (default: VerbosityNormal)
	Verbosity core.Verbosity
	// Styles resolves markup (default: formatter.DefaultStyleTable)
	Styles *formatter.StyleTable
	// Color chooses the initial decoration (default: ColorAuto)
	Color ColorMode
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Styles == nil {
		cfg.Styles = formatter.DefaultStyleTable()
	}
}

// ConsoleOutput is a handler.StyledOutput writing to an io.Writer.
//
// Writes are serialized by an internal mutex. Verbosity, style table and
// decoration are plain fields and belong to whoever configures the output.
type ConsoleOutput struct {
	writer    io.Writer
	renderer  *lipgloss.Renderer
	verbosity core.Verbosity
	styles    *formatter.StyleTable
	decorated bool
	stats     *handler.Stats
	mu        sync.Mutex // protects buf and writer
	buf       bytes.Buffer
}

var _ handler.StyledOutput = (*ConsoleOutput)(nil)

// NewConsoleOutput creates a console output
func NewConsoleOutput(cfg ConsoleConfig) *ConsoleOutput {
	applyConsoleDefaults(&cfg)

	o := &ConsoleOutput{
		writer:    cfg.Writer,
		renderer:  lipgloss.NewRenderer(cfg.Writer),
		verbosity: cfg.Verbosity,
		styles:    cfg.Styles,
		stats:     handler.NewStats(),
	}
	o.buf.Grow(256)

	switch cfg.Color {
	case ColorAlways:
		o.SetDecorated(true)
	case ColorNever:
		o.SetDecorated(false)
	default:
		o.SetDecorated(isTerminal(cfg.Writer) && os.Getenv("NO_COLOR") == "")
	}
	return o
}

// isTerminal reports whether w is a terminal device
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WriteLine renders the markup in text, or strips it when undecorated,
// and writes it followed by "\n".
func (o *ConsoleOutput) WriteLine(text string) error {
	var line string
	if o.decorated {
		line = formatter.Render(text, o.styles, o.renderer)
	} else {
		line = formatter.Strip(text, o.styles)
	}

	o.mu.Lock()
	o.buf.Reset()
	o.buf.WriteString(line)
	o.buf.WriteByte('\n')
	n, err := o.writer.Write(o.buf.Bytes())
	o.mu.Unlock()

	if err != nil {
		o.stats.IncrementFailed()
		return err
	}
	o.stats.IncrementWritten(n)
	return nil
}

// Verbosity returns the current threshold
func (o *ConsoleOutput) Verbosity() core.Verbosity {
	return o.verbosity
}

// SetVerbosity changes the threshold
func (o *ConsoleOutput) SetVerbosity(v core.Verbosity) {
	o.verbosity = v
}

// Styles returns the active style table
func (o *ConsoleOutput) Styles() *formatter.StyleTable {
	return o.styles
}

// SetStyles replaces the active style table. A nil table installs an
// empty one, so that no markup is recognized.
func (o *ConsoleOutput) SetStyles(table *formatter.StyleTable) {
	if table == nil {
		table = &formatter.StyleTable{}
	}
	o.styles = table
}

// IsDecorated reports whether styles are rendered
func (o *ConsoleOutput) IsDecorated() bool {
	return o.decorated
}

// SetDecorated turns rendering on or off. Turning it on for a destination
// without detected color support falls back to the 16-color ANSI profile.
func (o *ConsoleOutput) SetDecorated(decorated bool) {
	o.decorated = decorated
	if decorated && o.renderer.ColorProfile() == termenv.Ascii {
		o.renderer.SetColorProfile(termenv.ANSI)
	}
}

// Writer returns the underlying writer
func (o *ConsoleOutput) Writer() io.Writer {
	return o.writer
}

// Stats returns a snapshot of the current statistics
func (o *ConsoleOutput) Stats() handler.Snapshot {
	return o.stats.GetSnapshot()
}
