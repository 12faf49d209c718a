// Package formatter holds style tables and the markup that refers to them.
//
// A StyleTable maps names to StyleSpecs (foreground, background and
// attributes such as bold or blink). DefaultStyleTable registers one style
// per log level under the level's name.
//
// Lines handed to an output carry inline markup: "<error>text</error>"
// renders text with the "error" style. Only names registered in the active
// table are treated as tags; anything else between angle brackets is left
// as written. Escape protects arbitrary text so that its own '<' and '\'
// characters survive, and Wrap combines escaping with a pair of tags.
//
// Render turns markup into ANSI sequences through a lipgloss.Renderer,
// which decides the color profile of the destination. Strip drops the
// tags for undecorated output. Both reuse pooled buffers; buffers larger
// than 64 KiB are not returned to the pool.
package formatter
