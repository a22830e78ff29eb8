package main

import (
	"os"

	"github.com/fulgidus/gauss/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
