package main

import (
	"os"

	"github.com/eqb/projects-api/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
