package main

import (
	"os"

	"github.com/tabatui/tabata/cmd/tabata/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
