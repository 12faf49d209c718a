package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for names outside the ladder.
var ErrUnknownLevel = errors.New("unknown log level")

// ErrUnknownVerbosity is returned by ParseVerbosity for unknown names.
var ErrUnknownVerbosity = errors.New("unknown verbosity")

// Level represents the severity of a log message
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for interesting events
	InfoLevel
	// NoticeLevel for normal but significant events
	NoticeLevel
	// WarningLevel for exceptional occurrences that are not errors
	WarningLevel
	// ErrorLevel for runtime errors that do not require immediate action
	ErrorLevel
	// CriticalLevel for critical conditions
	CriticalLevel
	// AlertLevel when action must be taken immediately
	AlertLevel
	// EmergencyLevel when the system is unusable
	EmergencyLevel
)

var levelNames = [...]string{
	DebugLevel:     "debug",
	InfoLevel:      "info",
	NoticeLevel:    "notice",
	WarningLevel:   "warning",
	ErrorLevel:     "error",
	CriticalLevel:  "critical",
	AlertLevel:     "alert",
	EmergencyLevel: "emergency",
}

// String returns the lowercase name of the level. The name is also the
// style table key and markup tag used for the level.
func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return "unknown"
}

// Valid reports whether l is one of the eight defined levels
func (l Level) Valid() bool {
	return l >= DebugLevel && l <= EmergencyLevel
}

// Levels returns every level from least to most severe
func Levels() []Level {
	return []Level{
		DebugLevel, InfoLevel, NoticeLevel, WarningLevel,
		ErrorLevel, CriticalLevel, AlertLevel, EmergencyLevel,
	}
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// and accepts a few common aliases.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "notice":
		return NoticeLevel, nil
	case "warning", "warn":
		return WarningLevel, nil
	case "error", "err":
		return ErrorLevel, nil
	case "critical", "crit", "fatal":
		return CriticalLevel, nil
	case "alert":
		return AlertLevel, nil
	case "emergency", "emerg", "panic":
		return EmergencyLevel, nil
	default:
		return DebugLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// Verbosity is the output threshold controlling which levels are shown.
// The zero value is VerbosityNormal.
type Verbosity int8

const (
	VerbosityQuiet Verbosity = iota - 1
	VerbosityNormal
	VerbosityVerbose
	VerbosityVeryVerbose
	VerbosityDebug
)

// String returns the string representation of the verbosity
func (v Verbosity) String() string {
	switch v {
	case VerbosityQuiet:
		return "quiet"
	case VerbosityNormal:
		return "normal"
	case VerbosityVerbose:
		return "verbose"
	case VerbosityVeryVerbose:
		return "very_verbose"
	case VerbosityDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseVerbosity converts a verbosity name to a Verbosity
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quiet", "q":
		return VerbosityQuiet, nil
	case "normal", "":
		return VerbosityNormal, nil
	case "verbose", "v":
		return VerbosityVerbose, nil
	case "very_verbose", "very-verbose", "vv":
		return VerbosityVeryVerbose, nil
	case "debug", "vvv":
		return VerbosityDebug, nil
	default:
		return VerbosityNormal, fmt.Errorf("%w: %q", ErrUnknownVerbosity, s)
	}
}

// requiredVerbosity is indexed by Level and never increases with severity,
// so any verbosity shows a contiguous run of the most severe levels.
var requiredVerbosity = [...]Verbosity{
	DebugLevel:     VerbosityDebug,
	InfoLevel:      VerbosityVeryVerbose,
	NoticeLevel:    VerbosityVeryVerbose,
	WarningLevel:   VerbosityVerbose,
	ErrorLevel:     VerbosityQuiet,
	CriticalLevel:  VerbosityQuiet,
	AlertLevel:     VerbosityQuiet,
	EmergencyLevel: VerbosityQuiet,
}

// RequiredVerbosity returns the minimum verbosity at which messages of the
// given level are written. Unknown levels are always written.
func RequiredVerbosity(l Level) Verbosity {
	if !l.Valid() {
		return VerbosityQuiet
	}
	return requiredVerbosity[l]
}

// Shows reports whether messages at level l pass this verbosity
func (v Verbosity) Shows(l Level) bool {
	return v >= RequiredVerbosity(l)
}
