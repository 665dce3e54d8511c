package main

import (
	"os"

	"github.com/glintlang/glint/cmd/glintlex/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
