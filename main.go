// Package main is the entry point for the encounter notification daemon.
package main

import (
	"fmt"
	"os"

	"firestige.xyz/encounter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
