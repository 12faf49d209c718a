package logger

import (
	"fmt"
	"testing"

	"github.com/philipp01105/conlog/core"
)

func TestDefaultLogger(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	if prev == nil {
		t.Fatal("Default() should never be nil")
	}

	out := newRecordingOutput(core.VerbosityDebug)
	SetDefault(New(out))

	Info("hello {who}", String("who", "world"))
	Errorf("code %d", 7)
	With(String("k", "v")).Debug("{k}")
	Log(core.NoticeLevel, "n", nil)

	want := []string{
		"<info>hello world</info>", "<error>code 7</error>",
		"<debug>v</debug>", "<notice>n</notice>",
	}
	if fmt.Sprint(out.lines) != fmt.Sprint(want) {
		t.Errorf("lines = %q, want %q", out.lines, want)
	}
}
