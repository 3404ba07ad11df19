package main

import (
	"os"

	"keymint/cmd/keymint/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
