package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTutorCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "tutor [sentence...]",
		Aliases: []string{"ask"},
		Short:   "Explain a sentence or concept in simple terms",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := opts.readInput(cmd, args)
			if err != nil {
				return err
			}

			res := opts.client().AskTutor(cmd.Context(), text)
			if res.Err != nil {
				return resultError(res.Outcome, res.StatusCode, res.Err)
			}
			explanation := res.Value
			if !res.OK() {
				explanation = "No explanation returned."
			}

			fmt.Fprintf(cmd.OutOrStdout(), "**Simplified:** %s\n", explanation)
			return nil
		},
	}
}
