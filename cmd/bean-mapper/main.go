// Package main provides the CLI entrypoint for bean-mapper.
//
// bean-mapper lists the available mapping providers and checks
// configuration files before they are deployed with an application.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
