package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newCheckCmd builds "isic check FILE...": parse and run both semantic
// passes over each file, printing every diagnostic. Multiple files are a
// batch: one bad file's type errors don't stop the rest from being
// checked, and the command's final failure is the accumulation of every
// file's errors via go-multierror.
func newCheckCmd(log *logrus.Logger) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "parse and semantically check one or more source files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var batch *multierror.Error
			for _, path := range args {
				if err := checkFile(cmd.OutOrStdout(), path, debug, log); err != nil {
					batch = multierror.Append(batch, err)
				}
			}
			if batch != nil {
				return batch.ErrorOrNil()
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "dump the parsed AST and symbol table before printing diagnostics")
	return cmd
}

// checkFile runs the front end over one file and reports its diagnostics.
// It returns a non-nil error only when a type error was found (or the file
// could not be read or failed to parse); usage warnings alone never fail a
// file.
func checkFile(w io.Writer, path string, debug bool, log *logrus.Logger) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	ctx := RunFrontend(string(source), log)

	if debug && ctx.Program != nil {
		fmt.Fprintf(w, "%s: AST:\n%s\n", path, spew.Sdump(ctx.Program))
		fmt.Fprintf(w, "%s: symbol table:\n%s\n", path, spew.Sdump(ctx.SymbolTable))
	}

	if ctx.ParseError != nil {
		printDiagnostic(w, string(source), ctx.ParseError)
		return fmt.Errorf("%s: failed to parse", path)
	}

	for _, d := range ctx.TypeErrors {
		printDiagnostic(w, string(source), d)
	}
	for _, d := range ctx.UsageWarnings {
		printDiagnostic(w, string(source), d)
	}

	if len(ctx.TypeErrors) > 0 {
		return fmt.Errorf("%s: %d type error(s)", path, len(ctx.TypeErrors))
	}
	return nil
}
