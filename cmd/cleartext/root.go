package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bobmcallan/cleartext/internal/clients/cleartext"
	"github.com/bobmcallan/cleartext/internal/common"
	"github.com/bobmcallan/cleartext/internal/document"
)

const defaultServerURL = "http://localhost:8000"

var errNoInput = errors.New("no input text: pass text as arguments, --file <path>, or --file - for stdin")

// cliOptions holds the persistent flags shared by every subcommand.
type cliOptions struct {
	serverURL string
	timeout   time.Duration
	verbose   bool
	file      string

	logger *common.Logger
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "cleartext",
		Short: "Simplify technical or diplomatic text and explain it",
		Long: `ClearText sends text to a ClearText server, which rewrites it in plain
language with a hosted language model and builds a glossary of the names and
concepts it mentions from Wikipedia.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Missing .env is normal
			_ = godotenv.Load()

			if !cmd.Flags().Changed("server") {
				if v := os.Getenv("CLEARTEXT_SERVER_URL"); v != "" {
					opts.serverURL = v
				}
			}

			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			opts.logger = common.NewLoggerWithOutput(level, cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.serverURL, "server", "s", defaultServerURL, "ClearText server URL (env CLEARTEXT_SERVER_URL)")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", cleartext.DefaultTimeout, "Per-request timeout")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "Read input from a .txt, .md or .pdf file, or - for stdin")

	rootCmd.AddCommand(
		newSimplifyCmd(opts),
		newTutorCmd(opts),
		newGlossaryCmd(opts),
		newVersionCmd(opts),
	)

	return rootCmd
}

func (o *cliOptions) client() *cleartext.Client {
	return cleartext.NewClient(o.serverURL, cleartext.WithTimeout(o.timeout))
}

// readInput returns the text to send: positional arguments joined with
// spaces, or the contents of --file.
func (o *cliOptions) readInput(cmd *cobra.Command, args []string) (string, error) {
	if o.file != "" {
		if len(args) > 0 {
			return "", errors.New("pass either text arguments or --file, not both")
		}
		doc, err := document.Read(o.file, cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		o.logger.Debug().
			Str("path", doc.Path).
			Int("pages", doc.Pages).
			Int("bytes", len(doc.Text)).
			Msg("Read input document")
		if doc.Truncated {
			o.logger.Warn().
				Str("path", doc.Path).
				Int("max_bytes", document.MaxTextBytes).
				Msg("Input truncated")
		}
		if doc.Text == "" {
			return "", errNoInput
		}
		return doc.Text, nil
	}

	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return "", errNoInput
	}
	return text, nil
}

// resultError turns a failed call into the error shown to the user.
func resultError(outcome cleartext.Outcome, status int, err error) error {
	if status > 0 {
		return fmt.Errorf("backend error %d: %w", status, err)
	}
	if outcome == cleartext.OutcomeFailed {
		return fmt.Errorf("error contacting backend: %w", err)
	}
	return err
}
