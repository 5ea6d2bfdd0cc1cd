// shopvault - archive a Shopify store's file library to local disk.
package main

import (
	"fmt"
	"os"

	"github.com/shopvault/shopvault/internal/cli"
	"github.com/shopvault/shopvault/internal/version"
)

// Version information, overridden via LDFLAGS by the Makefile for
// release builds.
var (
	Version   = "v1.2.0"
	BuildTime = "unknown"
)

func main() {
	// Set version in the version package, the canonical source for
	// all packages.
	version.Version = Version
	version.BuildTime = BuildTime

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
