package main

import (
	"os"

	"github.com/contavel-dev/contavel/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
