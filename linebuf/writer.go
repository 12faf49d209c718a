package linebuf

// Writer feeds everything written to it into a Splitter. Close emits a
// trailing partial line; unlike Flush it emits nothing when the stream
// ended on a terminator.
type Writer struct {
	s      *Splitter
	closed bool
}

// NewWriter returns a Writer passing completed lines to emit
func NewWriter(emit func(line string)) *Writer {
	return &Writer{s: New(emit)}
}

// Write feeds p to the splitter. It fails only after Close.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	w.s.Feed(string(p))
	return len(p), nil
}

// WriteString is Write for strings
func (w *Writer) WriteString(s string) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	w.s.Feed(s)
	return len(s), nil
}

// Close emits any unterminated last line. Closing twice is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.s.Pending() != "" {
		w.s.Flush()
	}
	return nil
}
