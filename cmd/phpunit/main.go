package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CristianLlanos/phpunit/internal/cli"
	"github.com/CristianLlanos/phpunit/internal/cli/commands"
	"github.com/CristianLlanos/phpunit/internal/config"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "phpunit",
		Short:   "PHPUnit-style test instance builder",
		Long:    `Builds executable test instances from declared test classes: inspects constructor shapes, expands data providers into parameterized cases, applies process-isolation and state-backup policies, and degrades every recoverable failure into a diagnostic pseudo-test.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
