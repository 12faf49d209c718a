package linebuf

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_StreamsLines(t *testing.T) {
	got, emit := collect()
	w := NewWriter(emit)

	n, err := io.Copy(w, strings.NewReader("alpha\r\nbeta\rgamma"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("alpha\r\nbeta\rgamma")), n)
	assert.Equal(t, []string{"alpha", "beta"}, *got)

	require.NoError(t, w.Close())
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, *got)
}

func TestWriter_CloseAfterTerminator(t *testing.T) {
	got, emit := collect()
	w := NewWriter(emit)

	fmt.Fprint(w, "done\n")
	require.NoError(t, w.Close())
	assert.Equal(t, []string{"done"}, *got)
}

func TestWriter_WriteAfterClose(t *testing.T) {
	_, emit := collect()
	w := NewWriter(emit)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, err := w.Write([]byte("late"))
	assert.ErrorIs(t, err, ErrClosed)
	_, err = w.WriteString("late")
	assert.ErrorIs(t, err, ErrClosed)
}
