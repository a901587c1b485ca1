package main

import (
	"os"

	"cardbank/cmd/cardbank/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
