package main

import (
	"os"

	"github.com/eringen/headmeta/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
