// Command cli is the eventquote command-line interface.
package main

import (
	"os"

	"eventquote/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
