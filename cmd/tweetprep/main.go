// Package main is the entry point for the tweetprep CLI.
package main

import (
	"os"

	"github.com/jmylchreest/tweetprep/cmd/tweetprep/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
