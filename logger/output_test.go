package logger

import (
	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/formatter"
)

// recordingOutput is a StyledOutput that keeps every line and the state
// the output was in when the line was written.
type recordingOutput struct {
	verbosity core.Verbosity
	styles    *formatter.StyleTable
	decorated bool

	lines            []string
	stylesAtWrite    []*formatter.StyleTable
	decoratedAtWrite []bool
	setStylesCalls   int

	// failAfter > 0 makes every write after that many successes fail with err
	failAfter int
	err       error
}

func newRecordingOutput(v core.Verbosity) *recordingOutput {
	return &recordingOutput{
		verbosity: v,
		styles:    formatter.DefaultStyleTable(),
		decorated: true,
	}
}

func (r *recordingOutput) WriteLine(text string) error {
	if r.failAfter > 0 && len(r.lines) >= r.failAfter {
		return r.err
	}
	r.lines = append(r.lines, text)
	r.stylesAtWrite = append(r.stylesAtWrite, r.styles)
	r.decoratedAtWrite = append(r.decoratedAtWrite, r.decorated)
	return nil
}

func (r *recordingOutput) Verbosity() core.Verbosity { return r.verbosity }

func (r *recordingOutput) Styles() *formatter.StyleTable { return r.styles }

func (r *recordingOutput) SetStyles(t *formatter.StyleTable) {
	r.setStylesCalls++
	r.styles = t
}

func (r *recordingOutput) IsDecorated() bool { return r.decorated }

func (r *recordingOutput) SetDecorated(d bool) { r.decorated = d }
