package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/erraggy/oasdocs"
	"github.com/erraggy/oasdocs/config"
	"github.com/erraggy/oasdocs/internal/cliutil"
	"github.com/erraggy/oasdocs/oaserrors"
	"github.com/erraggy/oasdocs/parser"
)

// errNoInput is returned when neither arguments nor the config file name a spec.
var errNoInput = errors.New("no input specification given")

// app carries the streams and logger shared by every command.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
	log     parser.Logger
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdout, stderr)
	// cobra reads os.Args when given nil
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		cliutil.Failf(stderr, "%v", err)
		return 1
	}
	return 0
}

// NewRootCommand builds the oasdocs command tree writing to stdout and stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, log: parser.NopLogger{}}
	flags := &renderFlags{}

	root := &cobra.Command{
		Use:   "oasdocs [flags] <spec>...",
		Short: "Generate static HTML documentation from OpenAPI specifications",
		Long: `oasdocs renders OpenAPI 3.x and Swagger 2.0 documents (YAML or JSON) into a
static documentation site: index.html, search.json, assets/style.css and
assets/app.js. Several specs may be given; each is written to the same output
directory in turn, so the last one wins.

Settings are taken from, lowest precedence first: built-in defaults, the
--config file, OASDOCS_* environment variables (a .env file in the working
directory is loaded first), then explicit flags.`,
		Example: `  oasdocs openapi.yaml
  oasdocs -o site -t dracula --try-it-out openapi.json
  oasdocs --config oasdocs.yaml`,
		Version:       oasdocs.Version(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.log = newLogger(a.stderr, a.verbose)
			if err := config.LoadDotEnv(""); err != nil {
				a.log.Warn("failed to load .env file", "error", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := flags.settings(cmd, args, a.log)
			if err != nil {
				return err
			}
			if len(settings.Inputs) == 0 {
				_ = cmd.Usage()
				return errNoInput
			}
			err = a.generateAll(cmd.Context(), settings)
			if errors.Is(err, oaserrors.ErrNotFound) && len(args) > 0 {
				if s := cmd.SuggestionsFor(args[0]); len(s) > 0 {
					return fmt.Errorf("%w\n\nDid you mean the %q command?", err, s[0])
				}
			}
			return err
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("oasdocs {{.Version}}\n")

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging on stderr")
	flags.register(root.Flags())

	root.AddCommand(
		newValidateCommand(a),
		newServeCommand(a),
		newMCPCommand(a),
		newVersionCommand(a),
	)
	return root
}

// newLogger returns a text slog logger on w: debug level when verbose,
// otherwise warnings and errors only.
func newLogger(w io.Writer, verbose bool) parser.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return parser.NewSlogAdapter(slog.New(handler))
}
