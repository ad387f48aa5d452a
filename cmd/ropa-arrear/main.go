// Package main is the entry point for the ropa-arrear CLI.
package main

import (
	"os"

	"github.com/ropa/arrear-calculator/cmd/ropa-arrear/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
