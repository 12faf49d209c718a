package core

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

const maxTraceDepth = 32

// Tracer is implemented by errors that carry a printable stack trace
type Tracer interface {
	Trace() string
}

// tracedError pairs an error with the call stack captured at WithTrace
type tracedError struct {
	err error
	pcs []uintptr
}

// WithTrace wraps err with the stack of the caller. It returns nil for a
// nil error.
func WithTrace(err error) error {
	if err == nil {
		return nil
	}
	pcs := make([]uintptr, maxTraceDepth)
	n := runtime.Callers(2, pcs)
	return &tracedError{err: err, pcs: pcs[:n]}
}

func (e *tracedError) Error() string { return e.err.Error() }

func (e *tracedError) Unwrap() error { return e.err }

// Trace renders one frame per line, innermost first:
//
//	#0 main.run() /src/main.go:42
func (e *tracedError) Trace() string {
	var b strings.Builder
	frames := runtime.CallersFrames(e.pcs)
	for i := 0; ; i++ {
		f, more := frames.Next()
		if f.Function == "" && !more {
			break
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('#')
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(' ')
		b.WriteString(f.Function)
		b.WriteString("() ")
		b.WriteString(f.File)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(f.Line))
		if !more {
			break
		}
	}
	return b.String()
}

// TraceOf returns the trace text logged for an attached error. An error
// whose chain holds a Tracer yields that trace; any other error yields
// its "%+v" rendering. Combined errors list each member in order, each
// headed by its message.
func TraceOf(err error) string {
	if err == nil {
		return ""
	}
	errs := multierr.Errors(err)
	if len(errs) <= 1 {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			errs = joined.Unwrap()
		}
	}
	if len(errs) <= 1 {
		return traceOne(err)
	}

	var b strings.Builder
	for i, e := range errs {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "[%d] %s", i, e.Error())
		var t Tracer
		if errors.As(e, &t) {
			b.WriteByte('\n')
			b.WriteString(t.Trace())
		}
	}
	return b.String()
}

func traceOne(err error) string {
	var t Tracer
	if errors.As(err, &t) {
		return t.Trace()
	}
	return fmt.Sprintf("%+v", err)
}
