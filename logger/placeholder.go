package logger

import (
	"io"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/philipp01105/conlog/core"
)

// interpolate replaces each {key} present in ctx with its stringified
// value. Placeholders without a value stay as written and substituted
// values are not scanned again.
func interpolate(message string, ctx core.Context) string {
	if len(ctx) == 0 || !strings.Contains(message, "{") {
		return message
	}
	return fasttemplate.ExecuteFuncString(message, "{", "}", func(w io.Writer, tag string) (int, error) {
		// In "{a{b}" only "{b}" is a placeholder; "{a" is literal text.
		lead := "{"
		if i := strings.LastIndexByte(tag, '{'); i >= 0 {
			lead, tag = "{"+tag[:i+1], tag[i+1:]
		}
		v, ok := ctx[tag]
		if !ok {
			return io.WriteString(w, lead+tag+"}")
		}
		return io.WriteString(w, lead[:len(lead)-1]+core.Stringify(v))
	})
}
