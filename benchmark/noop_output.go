package benchmark

import (
	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/formatter"
	"github.com/philipp01105/conlog/handler"
)

// noopOutput accepts every line without rendering it, isolating the
// logger's own cost from markup rendering and I/O.
type noopOutput struct {
	verbosity core.Verbosity
	styles    *formatter.StyleTable
	decorated bool
}

func newNoopOutput(v core.Verbosity) handler.StyledOutput {
	return &noopOutput{verbosity: v, styles: formatter.DefaultStyleTable()}
}

func (o *noopOutput) WriteLine(text string) error {
	_ = len(text)
	return nil
}

func (o *noopOutput) Verbosity() core.Verbosity { return o.verbosity }

func (o *noopOutput) Styles() *formatter.StyleTable { return o.styles }

func (o *noopOutput) SetStyles(t *formatter.StyleTable) { o.styles = t }

func (o *noopOutput) IsDecorated() bool { return o.decorated }

func (o *noopOutput) SetDecorated(d bool) { o.decorated = d }
