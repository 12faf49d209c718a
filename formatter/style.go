package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StyleSpec describes how one style renders: a foreground color, a
// background color and a set of attributes. Colors are names ("red",
// "bright-blue"), ANSI indexes ("196") or hex values ("#ff8800"); empty
// means the terminal default.
type StyleSpec struct {
	Foreground string   `toml:"foreground"`
	Background string   `toml:"background"`
	Options    []string `toml:"options"`
}

// NewStyle returns a StyleSpec. It mirrors the (foreground, background,
// options) triple used throughout the default table.
func NewStyle(fg, bg string, options ...string) StyleSpec {
	return StyleSpec{Foreground: fg, Background: bg, Options: options}
}

var namedColors = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"gray":           "8",
	"bright-black":   "8",
	"bright-red":     "9",
	"bright-green":   "10",
	"bright-yellow":  "11",
	"bright-blue":    "12",
	"bright-magenta": "13",
	"bright-cyan":    "14",
	"bright-white":   "15",
}

// options maps attribute names to the lipgloss setter that enables them
var options = map[string]func(lipgloss.Style) lipgloss.Style{
	"bold":          func(s lipgloss.Style) lipgloss.Style { return s.Bold(true) },
	"faint":         func(s lipgloss.Style) lipgloss.Style { return s.Faint(true) },
	"italic":        func(s lipgloss.Style) lipgloss.Style { return s.Italic(true) },
	"underline":     func(s lipgloss.Style) lipgloss.Style { return s.Underline(true) },
	"underscore":    func(s lipgloss.Style) lipgloss.Style { return s.Underline(true) },
	"blink":         func(s lipgloss.Style) lipgloss.Style { return s.Blink(true) },
	"reverse":       func(s lipgloss.Style) lipgloss.Style { return s.Reverse(true) },
	"strikethrough": func(s lipgloss.Style) lipgloss.Style { return s.Strikethrough(true) },
}

// colorValue resolves a color to the string lipgloss.Color expects
func colorValue(c string) (string, error) {
	c = strings.ToLower(strings.TrimSpace(c))
	if c == "" || c == "default" {
		return "", nil
	}
	if v, ok := namedColors[c]; ok {
		return v, nil
	}
	if n, err := strconv.Atoi(c); err == nil && n >= 0 && n <= 255 {
		return c, nil
	}
	if isHexColor(c) {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColor, c)
}

func isHexColor(c string) bool {
	if len(c) != 4 && len(c) != 7 || c[0] != '#' {
		return false
	}
	for _, r := range c[1:] {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// Validate reports the first unknown color or option in the spec
func (s StyleSpec) Validate() error {
	if _, err := colorValue(s.Foreground); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	if _, err := colorValue(s.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	for _, o := range s.Options {
		if _, ok := options[strings.ToLower(o)]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownOption, o)
		}
	}
	return nil
}

// Style builds the lipgloss style for the spec on renderer r. Invalid
// colors and options are skipped; tabs are left untouched.
func (s StyleSpec) Style(r *lipgloss.Renderer) lipgloss.Style {
	st := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if fg, err := colorValue(s.Foreground); err == nil && fg != "" {
		st = st.Foreground(lipgloss.Color(fg))
	}
	if bg, err := colorValue(s.Background); err == nil && bg != "" {
		st = st.Background(lipgloss.Color(bg))
	}
	for _, o := range s.Options {
		if apply, ok := options[strings.ToLower(o)]; ok {
			st = apply(st)
		}
	}
	return st
}
