// Package core defines the shared types used across conlog.
//
// Level is the eight-step severity ladder, from DebugLevel up to
// EmergencyLevel. Verbosity is the threshold an output holds, from
// VerbosityQuiet up to VerbosityDebug. RequiredVerbosity maps each level
// to the lowest verbosity that still shows it; the table never rises with
// severity, so raising the verbosity only ever reveals less severe levels
// below the ones already visible. Error and above are shown even when
// quiet.
//
// A Context carries the placeholder values of one log call. Field is a
// typed key-value pair that converts into a Context with ContextOf, and
// Stringify renders any value the way placeholders print it.
//
// Errors attached to a log call are printed through TraceOf. WithTrace
// wraps an error with the caller's stack so that the trace has frames to
// show; errors combined with multierr or errors.Join are listed member by
// member.
package core
