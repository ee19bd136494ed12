// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Quadshift.
//
// Usage:
//
//	go run . [flags]
//	./quadshift [flags]
//
// Without a subcommand this performs the classic encrypt, write, decrypt and
// verify run. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/quadshift/ui/cli"
)

func main() {
	// Execute has already reported the error to stderr.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
