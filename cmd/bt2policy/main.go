// Package main is the entry point for the bt2policy CLI.
package main

import (
	"fmt"
	"os"

	"github.com/cbrueffer/bowtie2/internal/cli"
)

// Version information, injected at build time.
var Version = "dev"

func main() {
	rootCmd := cli.NewRootCmd()
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
