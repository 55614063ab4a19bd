package main

import (
	"os"

	"github.com/ohada-dev/fisc/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
