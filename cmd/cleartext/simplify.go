package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSimplifyCmd(opts *cliOptions) *cobra.Command {
	var skipGlossary bool

	cmd := &cobra.Command{
		Use:   "simplify [text...]",
		Short: "Rewrite the text in plain language, followed by its glossary",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := opts.readInput(cmd, args)
			if err != nil {
				return err
			}

			client := opts.client()
			out := cmd.OutOrStdout()

			res := client.Simplify(cmd.Context(), text)
			if res.Err != nil {
				return resultError(res.Outcome, res.StatusCode, res.Err)
			}
			simplified := res.Value
			if !res.OK() {
				simplified = "No result returned."
			}

			fmt.Fprintln(out, "Simplified Text")
			fmt.Fprintln(out)
			fmt.Fprintln(out, simplified)

			if skipGlossary {
				return nil
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Glossary")
			fmt.Fprintln(out)

			gloss := client.Glossary(cmd.Context(), text)
			if gloss.Err != nil {
				// The simplified text is still useful without a glossary
				opts.logger.Warn().Err(gloss.Err).Str("outcome", string(gloss.Outcome)).Msg("Could not fetch glossary")
				fmt.Fprintln(cmd.ErrOrStderr(), "Could not fetch glossary.")
				return nil
			}
			printGlossary(out, gloss.Value)
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipGlossary, "no-glossary", false, "Skip the glossary")
	return cmd
}
