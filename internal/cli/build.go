package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/isilang/isic/internal/codegen"
)

// newBuildCmd builds "isic build FILE -o OUT.c": parse, type-check
// (aborting on any type error), and emit a C translation unit.
func newBuildCmd(log *logrus.Logger) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build FILE",
		Short: "type-check a source file and emit its C translation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			source, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			ctx := RunFrontend(string(source), log)
			if ctx.ParseError != nil {
				printDiagnostic(cmd.ErrOrStderr(), string(source), ctx.ParseError)
				return fmt.Errorf("%s: failed to parse", path)
			}
			if len(ctx.TypeErrors) > 0 {
				for _, d := range ctx.TypeErrors {
					printDiagnostic(cmd.ErrOrStderr(), string(source), d)
				}
				return fmt.Errorf("%s: %d type error(s), not emitting C", path, len(ctx.TypeErrors))
			}
			for _, d := range ctx.UsageWarnings {
				printDiagnostic(cmd.ErrOrStderr(), string(source), d)
			}

			if output == "" {
				output = strings.TrimSuffix(path, filepath.Ext(path)) + ".c"
			}
			out, err := os.Create(output)
			if err != nil {
				return err
			}
			defer out.Close()

			emitter := codegen.NewCEmitter(out, ctx.SymbolTable)
			if err := emitter.Emit(*ctx.Program); err != nil {
				return err
			}
			log.WithField("phase", "codegen").Infof("wrote %s", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output .c path (defaults to the input path with its extension replaced by .c)")
	return cmd
}
