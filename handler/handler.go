package handler

import (
	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/formatter"
)

// StyledOutput is a terminal-like destination for styled lines
type StyledOutput interface {
	// WriteLine writes one line of markup followed by a line terminator
	WriteLine(text string) error

	// Verbosity returns the current output threshold
	Verbosity() core.Verbosity

	// Styles returns the table used to resolve markup
	Styles() *formatter.StyleTable
	// SetStyles replaces the table used to resolve markup
	SetStyles(table *formatter.StyleTable)

	// IsDecorated reports whether styles are rendered or stripped
	IsDecorated() bool
	// SetDecorated turns style rendering on or off
	SetDecorated(decorated bool)
}

// StatsProvider is implemented by outputs that count their writes
type StatsProvider interface {
	Stats() Snapshot
}
