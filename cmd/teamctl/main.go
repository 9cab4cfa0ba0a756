// Package main is the teamctl CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
