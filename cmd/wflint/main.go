package main

import (
	"os"

	"github.com/wflint/wflint/cmd/wflint/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
