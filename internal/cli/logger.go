// Package cli wires the core compiler packages into the isic binary:
// cobra command tree, logrus setup, and diagnostic rendering. Core packages
// never import logrus or cobra directly — only this package and cmd/isic do.
package cli

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the one logger instance NewRootCmd configures and threads
// through every pipeline run. Debug-level logging is gated behind --debug;
// everything else stays at Info.
func NewLogger(debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
