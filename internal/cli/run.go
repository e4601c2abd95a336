package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/isilang/isic/internal/interp"
)

// newRunCmd builds "isic run [FILE]": with a file argument, it parses,
// type-checks (aborting on error), prints usage warnings, and interprets.
// With no argument it drops into a line-buffered REPL instead.
func newRunCmd(log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [FILE]",
		Short: "interpret a source file, or start an interactive session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runREPL(log)
			}
			return runFile(args[0], log)
		},
	}
	return cmd
}

func runFile(path string, log *logrus.Logger) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	ctx := RunFrontend(string(source), log)
	if ctx.ParseError != nil {
		printDiagnostic(os.Stderr, string(source), ctx.ParseError)
		return fmt.Errorf("%s: failed to parse", path)
	}
	if len(ctx.TypeErrors) > 0 {
		for _, d := range ctx.TypeErrors {
			printDiagnostic(os.Stderr, string(source), d)
		}
		return fmt.Errorf("%s: %d type error(s)", path, len(ctx.TypeErrors))
	}
	for _, d := range ctx.UsageWarnings {
		printDiagnostic(os.Stderr, string(source), d)
	}

	ip := interp.New(os.Stdin, os.Stdout)
	return ip.Run(*ctx.Program)
}

// runREPL reads one "programa ... fimprog." block at a time and evaluates
// it against a persistent interpreter, so values assigned in one block stay
// in the interpreter for the next — the same batch/sequential single-session
// model spec.md §5 describes, just driven one block at a time instead of
// one whole file at a time. Each block is type-checked on its own with a
// fresh symbol table, so a block that reads a variable it does not itself
// declare is rejected with an undefined-variable error.
func runREPL(log *logrus.Logger) error {
	rl, err := readline.New("isic> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	ip := interp.New(os.Stdin, rl.Stdout())

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if buf.Len() == 0 {
				break
			}
			buf.Reset()
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		buf.WriteString(line)
		buf.WriteString("\n")

		if !strings.HasSuffix(strings.TrimSpace(line), "fimprog.") {
			continue
		}

		source := buf.String()
		buf.Reset()

		ctx := RunFrontend(source, log)
		if ctx.ParseError != nil {
			printDiagnostic(rl.Stdout(), source, ctx.ParseError)
			continue
		}
		if len(ctx.TypeErrors) > 0 {
			for _, d := range ctx.TypeErrors {
				printDiagnostic(rl.Stdout(), source, d)
			}
			continue
		}
		for _, d := range ctx.UsageWarnings {
			printDiagnostic(rl.Stdout(), source, d)
		}
		if err := ip.Run(*ctx.Program); err != nil {
			fmt.Fprintln(rl.Stdout(), err)
		}
	}
	return nil
}
