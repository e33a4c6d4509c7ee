// Package main is the entry point for the adsweep CLI.
//
// adsweep lists AWS Application Discovery Service server configurations
// matching optional filters, asks for confirmation, then deletes the
// matching agents and configuration records. It is a one-shot cleanup tool
// for operators decommissioning tracked infrastructure.
//
// For detailed usage information, run:
//
//	adsweep --help
package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr/funcr"

	"github.com/imamik/adsweep/cmd/adsweep/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	log := funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(os.Stderr, args)
	}, funcr.Options{})

	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root(log).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
