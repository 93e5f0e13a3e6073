// Command decafc is the CLI front end for the Naming and Typing
// passes.
package main

import (
	"os"

	"github.com/decafteam/decafc/cmd/decafc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
