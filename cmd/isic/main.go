// Command isic is the IsiLang toolchain: interpret source files directly,
// type-check and usage-check them, or emit an equivalent C translation
// unit.
package main

import (
	"fmt"
	"os"

	"github.com/isilang/isic/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
