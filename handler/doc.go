// Package handler defines StyledOutput, the destination a console logger
// writes to.
//
// A StyledOutput accepts one line of markup per WriteLine call and
// resolves the markup against its current StyleTable. It also owns two
// pieces of ambient state that a logger reads and temporarily replaces:
// the verbosity threshold and the decoration flag that decides whether
// styles are rendered as ANSI sequences or stripped.
//
// The built-in implementation lives in the consolehandler subpackage.
// Outputs that count their writes implement StatsProvider; the counters
// are kept in a Stats value updated atomically.
package handler
