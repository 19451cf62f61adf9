// SPDX-License-Identifier: MIT

// Command lu decomposes dense matrices and prints the factors together with
// the row operations that produced U.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/linalg/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lu:", err)
		os.Exit(1)
	}
}
