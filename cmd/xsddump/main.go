// Command xsddump reads an XML Schema document and prints a summary, a YAML
// rendering of the object model, or the re-serialized schema.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	xsd "github.com/claudiobogossian/terralib5-sub033"
	"github.com/claudiobogossian/terralib5-sub033/internal/config"
	"github.com/claudiobogossian/terralib5-sub033/internal/logging"
	"github.com/claudiobogossian/terralib5-sub033/schema"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// usageError marks a malformed command line.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

type app struct {
	stdout     io.Writer
	stderr     io.Writer
	configPath string
	logLevel   string
	prettyLog  bool
	cfg        *config.Config
	log        zerolog.Logger
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, log: zerolog.Nop()}
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}
	if writeErr := writef(stderr, "error: %v\n", err); writeErr != nil {
		return 1
	}
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "xsddump",
		Short:         "Inspect and re-serialize XML Schema documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.prettyLog, "pretty-log", false, "human readable log output")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
	root.AddCommand(a.newSummaryCmd(), a.newDumpCmd(), a.newFormatCmd())
	return root
}

// setup loads the configuration file and applies flag overrides.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("pretty-log") {
		cfg.LogPretty = a.prettyLog
	}
	logger, err := logging.New(a.stderr, cfg.LogLevel, cfg.LogPretty)
	if err != nil {
		return usageError{err}
	}
	a.cfg = cfg
	a.log = logger
	return nil
}

func (a *app) readSchema(path string) (*schema.Schema, error) {
	a.log.Info().Str("file", path).Msg("reading schema")
	s, err := xsd.ReadSchemaFile(path, a.cfg.ReadOptions().WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	a.log.Debug().Str("file", path).Str("targetNamespace", s.TargetNamespace).Msg("schema read")
	return s, nil
}

func exactlyOneFile(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return usageError{fmt.Errorf("%s requires exactly one schema file, got %d arguments", cmd.Name(), len(args))}
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
