package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
)

const noGlossaryTerms = "No glossary terms found."

func newGlossaryCmd(opts *cliOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "glossary [text...]",
		Short: "List the named entities and concepts in the text with their definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := opts.readInput(cmd, args)
			if err != nil {
				return err
			}

			res := opts.client().Glossary(cmd.Context(), text)
			if res.Err != nil {
				return resultError(res.Outcome, res.StatusCode, res.Err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res.Value)
			}

			printGlossary(cmd.OutOrStdout(), res.Value)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the glossary as a JSON object")
	return cmd
}

// printGlossary writes one "**term**: definition" line per entry, sorted by term.
func printGlossary(w io.Writer, glossary map[string]string) {
	if len(glossary) == 0 {
		fmt.Fprintln(w, noGlossaryTerms)
		return
	}

	terms := make([]string, 0, len(glossary))
	for term := range glossary {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	for _, term := range terms {
		fmt.Fprintf(w, "**%s**: %s\n", term, glossary[term])
	}
}
