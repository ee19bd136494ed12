// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

// Command quadshift is the installable binary (`go install .../cmd/quadshift`).
package main

import (
	"os"

	"github.com/toeirei/quadshift/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
