package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/philipp01105/conlog/core"
)

// StyleTable maps style names to their specs. Level names are the names
// the logger uses, but any tag name may be registered.
type StyleTable struct {
	styles map[string]StyleSpec
}

// NewStyleTable creates a table from the given styles. Names are
// case-insensitive.
func NewStyleTable(styles map[string]StyleSpec) (*StyleTable, error) {
	t := &StyleTable{styles: make(map[string]StyleSpec, len(styles))}
	for name, spec := range styles {
		if err := t.Set(name, spec); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// DefaultStyleTable returns a fresh copy of the built-in level styles
func DefaultStyleTable() *StyleTable {
	return &StyleTable{styles: map[string]StyleSpec{
		core.EmergencyLevel.String(): NewStyle("red", "", "bold", "blink"),
		core.AlertLevel.String():     NewStyle("yellow", "", "bold", "blink"),
		core.CriticalLevel.String():  NewStyle("red", "", "bold"),
		core.ErrorLevel.String():     NewStyle("red", ""),
		core.WarningLevel.String():   NewStyle("yellow", "", "bold"),
		core.NoticeLevel.String():    NewStyle("green", ""),
		core.InfoLevel.String():      NewStyle("blue", ""),
		core.DebugLevel.String():     NewStyle("white", ""),
	}}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Set registers or replaces a style
func (t *StyleTable) Set(name string, spec StyleSpec) error {
	name = normalizeName(name)
	if name == "" || strings.ContainsAny(name, "<>/\\") {
		return fmt.Errorf("invalid style name %q", name)
	}
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("style %q: %w", name, err)
	}
	if t.styles == nil {
		t.styles = make(map[string]StyleSpec)
	}
	t.styles[name] = spec
	return nil
}

// Get returns the spec registered under name
func (t *StyleTable) Get(name string) (StyleSpec, bool) {
	if t == nil {
		return StyleSpec{}, false
	}
	spec, ok := t.styles[normalizeName(name)]
	return spec, ok
}

// Has reports whether a style is registered under name
func (t *StyleTable) Has(name string) bool {
	_, ok := t.Get(name)
	return ok
}

// Names returns the registered names in sorted order
func (t *StyleTable) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the table
func (t *StyleTable) Clone() *StyleTable {
	c := &StyleTable{styles: make(map[string]StyleSpec)}
	if t == nil {
		return c
	}
	for name, spec := range t.styles {
		spec.Options = append([]string(nil), spec.Options...)
		c.styles[name] = spec
	}
	return c
}
