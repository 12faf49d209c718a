package logger

import (
	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/linebuf"
)

// LineWriter is an io.WriteCloser that logs every line written to it at
// a fixed level. Lines are logged as soon as their terminator arrives;
// Close logs a final unterminated line. Placeholders are not expanded.
type LineWriter struct {
	w   *linebuf.Writer
	err error
}

// LineWriter returns a writer logging each line at level
func (l *ConsoleLogger) LineWriter(level core.Level) *LineWriter {
	lw := &LineWriter{}
	lw.w = linebuf.NewWriter(func(line string) {
		if lw.err == nil {
			lw.err = l.log(level, line, nil, false)
		}
	})
	return lw
}

// Write feeds p to the line buffer. It returns the first error the
// output reported; once that happens every later write fails with it.
func (lw *LineWriter) Write(p []byte) (int, error) {
	if lw.err != nil {
		return 0, lw.err
	}
	n, err := lw.w.Write(p)
	if err != nil {
		return n, err
	}
	return n, lw.err
}

// Close logs any pending partial line
func (lw *LineWriter) Close() error {
	if err := lw.w.Close(); err != nil {
		return err
	}
	return lw.err
}
