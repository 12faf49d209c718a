package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var escaper = strings.NewReplacer(`\`, `\\`, `<`, `\<`)

// Escape makes text safe to embed in markup: a '<' in the result can no
// longer open or close a tag.
func Escape(text string) string {
	if !strings.ContainsAny(text, `<\`) {
		return text
	}
	return escaper.Replace(text)
}

// Wrap returns text escaped and enclosed in the tags of the named style,
// e.g. "<error>disk full</error>".
func Wrap(name, text string) string {
	buf := getBuffer()
	buf.WriteByte('<')
	buf.WriteString(name)
	buf.WriteByte('>')
	buf.WriteString(Escape(text))
	buf.WriteString("</")
	buf.WriteString(name)
	buf.WriteByte('>')
	s := buf.String()
	putBuffer(buf)
	return s
}

// Strip removes the tags known to table and resolves escapes, leaving
// the plain text.
func Strip(text string, table *StyleTable) string {
	buf := getBuffer()
	walk(text, table, func(_ string, seg []byte) {
		buf.Write(seg)
	})
	s := buf.String()
	putBuffer(buf)
	return s
}

// Render replaces the tags known to table with the ANSI sequences of
// their styles on renderer r. Text outside any tag is left unstyled.
func Render(text string, table *StyleTable, r *lipgloss.Renderer) string {
	var out strings.Builder
	out.Grow(len(text) + 16)
	styles := make(map[string]lipgloss.Style)
	walk(text, table, func(name string, seg []byte) {
		if name == "" {
			out.Write(seg)
			return
		}
		st, ok := styles[name]
		if !ok {
			spec, _ := table.Get(name)
			st = spec.Style(r)
			styles[name] = st
		}
		out.WriteString(st.Render(string(seg)))
	})
	return out.String()
}

// walk parses markup and reports each run of text with the innermost
// open style ("" outside any tag). Tags whose name is not in table are
// kept as literal text. "</>" closes the innermost open tag.
func walk(text string, table *StyleTable, fn func(style string, seg []byte)) {
	var stack []string
	seg := getBuffer()
	defer putBuffer(seg)

	current := func() string {
		if len(stack) == 0 {
			return ""
		}
		return stack[len(stack)-1]
	}
	emit := func() {
		if seg.Len() > 0 {
			fn(current(), seg.Bytes())
			seg.Reset()
		}
	}

	for i := 0; i < len(text); {
		c := text[i]
		if c == '\\' && i+1 < len(text) && (text[i+1] == '<' || text[i+1] == '\\') {
			seg.WriteByte(text[i+1])
			i += 2
			continue
		}
		if c == '<' {
			if n, ok := matchTag(text[i:], stack, table); ok {
				emit()
				if text[i+1] == '/' {
					stack = stack[:len(stack)-1]
				} else {
					stack = append(stack, normalizeName(text[i+1:i+n-1]))
				}
				i += n
				continue
			}
		}
		seg.WriteByte(c)
		i++
	}
	emit()
}

// matchTag reports whether s starts with a tag that walk acts on, and
// its length including the angle brackets.
func matchTag(s string, stack []string, table *StyleTable) (int, bool) {
	end := strings.IndexByte(s, '>')
	if end < 0 {
		return 0, false
	}
	tag := s[1:end]
	if strings.HasPrefix(tag, "/") {
		if len(stack) == 0 {
			return 0, false
		}
		name := normalizeName(tag[1:])
		return end + 1, name == "" || name == stack[len(stack)-1]
	}
	if tag == "" || strings.ContainsAny(tag, "<\\") || !table.Has(tag) {
		return 0, false
	}
	return end + 1, true
}
