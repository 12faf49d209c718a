package benchmark

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/formatter"
	"github.com/philipp01105/conlog/handler/consolehandler"
	"github.com/philipp01105/conlog/linebuf"
	"github.com/philipp01105/conlog/logger"
)

var sinkString string

func newConsoleLogger(color consolehandler.ColorMode, v core.Verbosity) *logger.ConsoleLogger {
	out := consolehandler.NewConsoleOutput(consolehandler.ConsoleConfig{
		Writer:    io.Discard,
		Verbosity: v,
		Color:     color,
	})
	return logger.New(out)
}

// Benchmark logger creation
func BenchmarkLoggerCreation(b *testing.B) {
	out := newNoopOutput(core.VerbosityDebug)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = logger.NewBuilder().
			WithOutput(out).
			WithFields(logger.String("app", "bench")).
			Build()
	}
}

// Benchmark the logger alone, without rendering or I/O
func BenchmarkLog_NoopOutput(b *testing.B) {
	l := logger.New(newNoopOutput(core.VerbosityDebug))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("request handled")
	}
}

// Benchmark placeholder substitution
func BenchmarkLog_Placeholders(b *testing.B) {
	l := logger.New(newNoopOutput(core.VerbosityDebug))
	ctx := core.Context{"method": "GET", "path": "/api/users", "status": 200}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.Log(core.InfoLevel, "{method} {path} -> {status}", ctx)
	}
}

// Benchmark a hidden level (only the verbosity check runs)
func BenchmarkLog_Hidden(b *testing.B) {
	l := logger.New(newNoopOutput(core.VerbosityNormal))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Debug("never shown", logger.String("key", "value"))
	}
}

// Benchmark multi-line messages
func BenchmarkLog_MultiLine(b *testing.B) {
	l := logger.New(newNoopOutput(core.VerbosityDebug))
	msg := strings.Repeat("some output line\n", 10)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.Log(core.ErrorLevel, msg, nil)
	}
}

// Benchmark the full path through a console output, plain and styled
func BenchmarkLog_Console(b *testing.B) {
	for _, tc := range []struct {
		name  string
		color consolehandler.ColorMode
	}{
		{"plain", consolehandler.ColorNever},
		{"styled", consolehandler.ColorAlways},
	} {
		b.Run(tc.name, func(b *testing.B) {
			l := newConsoleLogger(tc.color, core.VerbosityDebug)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				l.Warning("disk usage at {pct}%", logger.Int("pct", 91))
			}
		})
	}
}

// Benchmark the splitter on mixed terminators
func BenchmarkSplitter(b *testing.B) {
	text := strings.Repeat("alpha\r\nbeta\rgamma\n", 20)
	b.SetBytes(int64(len(text)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		linebuf.Lines(text, func(line string) { sinkString = line })
	}
}

// Benchmark the splitter when fed byte by byte
func BenchmarkSplitter_ByteFeed(b *testing.B) {
	text := strings.Repeat("alpha\r\nbeta\rgamma\n", 20)
	b.SetBytes(int64(len(text)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := linebuf.New(func(line string) { sinkString = line })
		for j := 0; j < len(text); j++ {
			s.Feed(text[j : j+1])
		}
		s.Flush()
	}
}

// Benchmark markup rendering and stripping
func BenchmarkMarkup(b *testing.B) {
	table := formatter.DefaultStyleTable()
	text := formatter.Wrap("error", "disk <sda1> failed")

	b.Run("strip", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkString = formatter.Strip(text, table)
		}
	})

	b.Run("render", func(b *testing.B) {
		r := lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.ANSI256)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkString = formatter.Render(text, table, r)
		}
	})
}
