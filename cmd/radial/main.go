package main

import (
	"os"

	"github.com/phanxgames/radial/cmd/radial/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
