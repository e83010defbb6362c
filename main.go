package main

import (
	"os"

	"github.com/iburimskiy/neural-visualization/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
