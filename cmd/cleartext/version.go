package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bobmcallan/cleartext/internal/common"
)

func newVersionCmd(opts *cliOptions) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of cleartext",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cleartext version %s\n", common.GetFullVersion())

			if !remote {
				return nil
			}

			res := opts.client().Version(cmd.Context())
			if res.Err != nil {
				return resultError(res.Outcome, res.StatusCode, res.Err)
			}
			fmt.Fprintf(out, "server %s version %s (build: %s, commit: %s)\n",
				opts.serverURL, res.Value["version"], res.Value["build"], res.Value["commit"])
			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "server-version", false, "Also print the server's version")
	return cmd
}
