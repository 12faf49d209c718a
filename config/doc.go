// Package config loads console logging settings from TOML.
//
// A file looks like:
//
//	verbosity = "verbose"
//	color = "auto"
//	level = "info"
//
//	[styles.error]
//	foreground = "bright-red"
//	options = ["bold"]
//
//	[styles.highlight]
//	foreground = "#ff8800"
//
// Styles named after a level replace that level's default; other names
// add new tags usable in markup. Values are checked with
// go-playground/validator and the style specs with their own validation.
package config
