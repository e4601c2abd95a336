package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the isic command tree: run, build, check, each
// sharing one logger configured from the persistent --debug flag.
func NewRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:   "isic",
		Short: "IsiLang toolchain: interpret, type-check, and compile to C",
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug-level logging")

	// log is shared by every subcommand's closure; PersistentPreRun raises
	// its level in place once --debug has actually been parsed, since the
	// subcommands below capture this *logrus.Logger, not the debug bool.
	log := NewLogger(false)
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if debug {
			log.SetLevel(logrus.DebugLevel)
		}
	}

	root.AddCommand(newRunCmd(log))
	root.AddCommand(newBuildCmd(log))
	root.AddCommand(newCheckCmd(log))

	return root
}
