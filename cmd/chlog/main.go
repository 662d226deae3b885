package main

import (
	"os"

	"github.com/ariel-frischer/chlog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
