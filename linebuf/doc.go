// Package linebuf turns a stream of text fragments into complete lines.
//
// A Splitter accepts fragments through Feed and calls its emit function
// once for every line it completes, in order. Three terminators are
// recognized and removed: "\n", "\r\n" and a lone "\r". Text after the
// last terminator stays pending until more input completes it or Flush
// emits it as the final line.
//
// Chunking never changes the result. A "\r" that ends one fragment closes
// its line immediately, and a "\n" opening the next fragment is taken as
// the second half of that "\r\n" rather than as an empty line.
//
// Lines splits a complete string in one call. Writer adapts a Splitter to
// io.Writer for streaming sources such as pipes.
package linebuf
