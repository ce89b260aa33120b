// Package main provides the CLI for digitadd.
package main

import (
	"os"

	"github.com/leapstack-labs/digitadd/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
