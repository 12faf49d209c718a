package linebuf

import "errors"

// ErrClosed is returned by writes to a closed Writer
var ErrClosed = errors.New("linebuf: write to closed writer")
