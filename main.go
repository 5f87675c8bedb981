package main

import (
	"os"

	"github.com/aureus/cardiosim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
