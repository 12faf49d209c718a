package linebuf

import "strings"

// Splitter buffers text and emits each line once it is complete.
// A Splitter is not safe for concurrent use.
type Splitter struct {
	emit    func(line string)
	pending strings.Builder
	// afterCR is set when the last fragment ended in '\r'; a '\n' at the
	// start of the next fragment completes that terminator.
	afterCR bool
}

// New returns a Splitter that passes every completed line to emit
func New(emit func(line string)) *Splitter {
	return &Splitter{emit: emit}
}

// Feed appends text to the buffer, emitting every line it completes
func (s *Splitter) Feed(text string) {
	if text == "" {
		return
	}
	if s.afterCR {
		s.afterCR = false
		if text[0] == '\n' {
			text = text[1:]
		}
	}

	for {
		i := strings.IndexAny(text, "\r\n")
		if i < 0 {
			break
		}
		s.line(text[:i])

		end := i + 1
		if text[i] == '\r' {
			switch {
			case end == len(text):
				s.afterCR = true
			case text[end] == '\n':
				end++
			}
		}
		text = text[end:]
	}

	s.pending.WriteString(text)
}

// Flush emits the pending text as the last line, even when it is empty
func (s *Splitter) Flush() {
	line := s.pending.String()
	s.pending.Reset()
	s.afterCR = false
	s.emit(line)
}

// Pending returns the text fed since the last completed line
func (s *Splitter) Pending() string {
	return s.pending.String()
}

func (s *Splitter) line(tail string) {
	if s.pending.Len() == 0 {
		s.emit(tail)
		return
	}
	s.pending.WriteString(tail)
	line := s.pending.String()
	s.pending.Reset()
	s.emit(line)
}

// Lines calls emit for every line of text
func Lines(text string, emit func(line string)) {
	s := New(emit)
	s.Feed(text)
	s.Flush()
}

// Split returns the lines of text as a slice
func Split(text string) []string {
	var lines []string
	Lines(text, func(line string) {
		lines = append(lines, line)
	})
	return lines
}
