// Package main provides the entry point for the strfind CLI.
package main

import (
	"os"

	"github.com/strfind/strfind/cmd/strfind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
