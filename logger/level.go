package logger

import (
	"github.com/philipp01105/conlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel     = core.DebugLevel
	InfoLevel      = core.InfoLevel
	NoticeLevel    = core.NoticeLevel
	WarningLevel   = core.WarningLevel
	ErrorLevel     = core.ErrorLevel
	CriticalLevel  = core.CriticalLevel
	AlertLevel     = core.AlertLevel
	EmergencyLevel = core.EmergencyLevel
)

// Context re-exports core.Context
type Context = core.Context

// ParseLevel converts a string to a Level, falling back to InfoLevel for
// unknown names
func ParseLevel(s string) Level {
	l, err := core.ParseLevel(s)
	if err != nil {
		return InfoLevel
	}
	return l
}
