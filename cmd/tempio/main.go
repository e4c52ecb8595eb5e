// Package main is the entry point for the tempio CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/tempio/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
