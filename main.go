// main is the command-line entrypoint for the statscard CLI.
package main

import (
	"github.com/statscard/statscard/cmd"
	"github.com/statscard/statscard/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
