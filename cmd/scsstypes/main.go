// Package main provides the scsstypes CLI for generating CSS module declarations.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// errReported marks failures the run reporter has already printed.
var errReported = errors.New("run failed")

func main() {
	// Optional .env with SCSSTYPES_* overrides
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
