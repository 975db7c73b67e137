// Package main provides the labsite CLI, a headless client for the
// NepalAI Lab site backend. It exposes the content pipeline, the form
// submissions, and the chat assistant as subcommands.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
