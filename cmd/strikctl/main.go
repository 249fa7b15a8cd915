package main

import (
	"os"

	"strik/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(fxBackend{}).Execute(); err != nil {
		os.Exit(1)
	}
}
