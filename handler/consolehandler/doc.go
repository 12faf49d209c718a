// Package consolehandler provides ConsoleOutput, the StyledOutput that
// writes to any io.Writer (default: os.Stdout).
//
// Each WriteLine call produces exactly one Write on the underlying writer:
// the line, rendered or stripped, plus "\n". Rendering goes through a
// lipgloss.Renderer bound to the writer, so the color profile follows
// what the destination supports.
//
// Decoration starts from ConsoleConfig.Color. ColorAuto enables it for
// terminals detected with go-isatty unless NO_COLOR is set.
package consolehandler
