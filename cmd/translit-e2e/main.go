package main

import (
	"os"

	"github.com/translit-qa/translit-e2e/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
