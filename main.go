// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Keynav.
//
// Usage:
//
//	go run . [flags]
//	./keynav [flags]
//
// This launches the Keynav CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/keynav/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
