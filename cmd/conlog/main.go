// Command conlog writes leveled, styled messages to the console.
//
// With arguments it logs them as one message; without, it logs every line
// read from stdin.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipp01105/conlog/config"
	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/handler/consolehandler"
	"github.com/philipp01105/conlog/logger"
)

// options holds the flags shared by every command
type options struct {
	configPath string
	level      string
	verbose    int
	quiet      bool
	ansi       bool
	noANSI     bool
	toStderr   bool
	values     map[string]string
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		errLog := logger.New(consolehandler.NewConsoleOutput(consolehandler.ConsoleConfig{
			Writer:    os.Stderr,
			Verbosity: core.VerbosityQuiet,
		}))
		_ = errLog.Log(core.ErrorLevel, "conlog: {error}", core.Context{"error": err.Error()})
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "conlog [message...]",
		Short: "Write leveled, styled messages to the console",
		Long: `Conlog writes a message at a severity level, styled per level and
filtered by verbosity. {key} placeholders in the message are replaced by
values given with --set. Without a message, every line of stdin is
logged at the level.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := stdout
			if opts.toStderr {
				out = stderr
			}
			l, level, err := opts.build(out)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				return logMessage(l, level, joinArgs(args), opts.values)
			}
			return logStream(l, level, stdin)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/conlog/config.toml)")
	f.CountVarP(&opts.verbose, "verbose", "v", "Increase verbosity (-v, -vv, -vvv)")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "Only show errors and worse")
	f.BoolVar(&opts.ansi, "ansi", false, "Force styled output")
	f.BoolVar(&opts.noANSI, "no-ansi", false, "Disable styled output")
	cmd.MarkFlagsMutuallyExclusive("ansi", "no-ansi")
	cmd.MarkFlagsMutuallyExclusive("quiet", "verbose")

	cmd.Flags().StringVarP(&opts.level, "level", "l", "", "Message level (default: from config, else info)")
	cmd.Flags().BoolVar(&opts.toStderr, "stderr", false, "Write to stderr instead of stdout")
	cmd.Flags().StringToStringVar(&opts.values, "set", nil, "Placeholder value as key=value (repeatable)")

	cmd.AddCommand(newStylesCmd(opts, stdout))
	cmd.AddCommand(newConfigCmd(opts, stdout))
	return cmd
}

// loadConfig reads the --config file, or the default file when present
func (o *options) loadConfig() (*config.Config, error) {
	if o.configPath != "" {
		return config.Load(o.configPath)
	}
	return config.LoadDefault()
}

// build creates the logger and resolves the message level from the
// config and the flags
func (o *options) build(w io.Writer) (*logger.ConsoleLogger, core.Level, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, 0, err
	}
	out, err := cfg.NewOutput(w)
	if err != nil {
		return nil, 0, err
	}
	o.apply(out)

	level, err := cfg.StreamLevel()
	if err != nil {
		return nil, 0, err
	}
	if o.level != "" {
		if level, err = core.ParseLevel(o.level); err != nil {
			return nil, 0, err
		}
	}

	styles, err := cfg.StyleTable()
	if err != nil {
		return nil, 0, err
	}
	l := logger.NewBuilder().WithOutput(out).WithStyles(styles).Build()
	return l, level, nil
}

// apply overrides the configured verbosity and decoration with flags
func (o *options) apply(out *consolehandler.ConsoleOutput) {
	switch {
	case o.quiet:
		out.SetVerbosity(core.VerbosityQuiet)
	case o.verbose > 0:
		v := core.VerbosityNormal + core.Verbosity(o.verbose)
		if v > core.VerbosityDebug {
			v = core.VerbosityDebug
		}
		out.SetVerbosity(v)
	}

	switch {
	case o.ansi:
		out.SetDecorated(true)
	case o.noANSI:
		out.SetDecorated(false)
	}
}

func logMessage(l *logger.ConsoleLogger, level core.Level, msg string, values map[string]string) error {
	ctx := make(core.Context, len(values))
	for k, v := range values {
		ctx[k] = v
	}
	if err := l.Log(level, msg, ctx); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func logStream(l *logger.ConsoleLogger, level core.Level, r io.Reader) error {
	w := l.LineWriter(level)
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return fmt.Errorf("stream: %w", err)
	}
	return w.Close()
}

func joinArgs(args []string) string {
	msg := args[0]
	for _, a := range args[1:] {
		msg += " " + a
	}
	return msg
}
