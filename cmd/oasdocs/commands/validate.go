package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erraggy/oasdocs/internal/cliutil"
	"github.com/erraggy/oasdocs/validator"
)

func newValidateCommand(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate [flags] <spec>...",
		Short: "Check that specifications declare a version, info and paths",
		Long: `validate checks that each document declares "openapi" or "swagger", an
"info" object and a "paths" object. With --strict, OpenAPI 3.x and Swagger 2.0
documents are also validated structurally.

Exit Codes:
  0    every document is valid
  1    a document is invalid or could not be read`,
		Example: `  oasdocs validate openapi.yaml
  oasdocs validate --strict api-v1.json api-v2.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := validator.New()
			v.StrictMode = strict
			v.Logger = a.log

			invalid := 0
			for _, path := range args {
				res, err := v.ValidateFile(cmd.Context(), path)
				if err != nil {
					return err
				}
				if res.Valid {
					cliutil.Successf(a.stdout, "%s is valid (%s)", path, res.Version)
					continue
				}
				invalid++
				cliutil.Failf(a.stdout, "%s has %d error(s)", path, len(res.Errors))
				for _, msg := range res.Errors {
					cliutil.Writef(a.stdout, "    %s\n", msg)
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d document(s) invalid", invalid, len(args))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "also validate document structure")
	return cmd
}
