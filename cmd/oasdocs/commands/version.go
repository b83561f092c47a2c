package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/oasdocs"
	"github.com/erraggy/oasdocs/internal/cliutil"
)

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build details",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			cliutil.Writef(a.stdout, "oasdocs %s\n", oasdocs.Version())
			cliutil.Writef(a.stdout, "commit: %s\n", oasdocs.Commit())
			cliutil.Writef(a.stdout, "built: %s\n", oasdocs.BuildTime())
		},
	}
}
