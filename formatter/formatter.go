package formatter

import (
	"bytes"
	"errors"
	"sync"
)

var (
	// ErrUnknownColor is returned for a color that is neither a known name,
	// an ANSI index nor a hex value
	ErrUnknownColor = errors.New("unknown color")
	// ErrUnknownOption is returned for an unsupported text attribute
	ErrUnknownOption = errors.New("unknown style option")
)

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
