// Package main is the entry point for the issue-drafter CLI.
package main

import (
	"fmt"
	"os"

	"github.com/runoshun/issue-drafter/internal/app"
	"github.com/runoshun/issue-drafter/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// The container is opened by the root command once flags are parsed.
	container := &app.Container{}
	defer func() { _ = container.Close() }()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
