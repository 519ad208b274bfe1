package main

import (
	"os"

	"github.com/sv-tools/svfmt/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
