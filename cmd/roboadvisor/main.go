package main

import (
	"os"

	"github.com/roboadvisor-dev/roboadvisor/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
