package commands

import (
	"github.com/spf13/cobra"

	"github.com/CristianLlanos/phpunit/internal/cli"
	"github.com/CristianLlanos/phpunit/internal/config"
	"github.com/CristianLlanos/phpunit/internal/storage"
	"github.com/CristianLlanos/phpunit/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Build   *BuildCommand
	List    *ListCommand
	Inspect *InspectCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	inspector := ui.NewInspector(cfg)

	return &Commands{
		Build:   NewBuildCommand(cfg, formatter, jsonStorage),
		List:    NewListCommand(cfg, formatter),
		Inspect: NewInspectCommand(cfg, jsonStorage, inspector),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Build command
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build executable tests from the class manifest",
		Long:  "Resolve constructor shapes, expand data providers, and assemble executable test instances for every declared test method",
		RunE:  c.Build.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			if flags.Workers > 0 {
				cfg.Workers = flags.Workers
			}
			return nil
		},
	}
	buildCmd.Flags().StringVarP(&flags.Manifest, "manifest", "m", "", "Path to the class manifest (defaults to phpunit.yaml)")
	buildCmd.Flags().IntVarP(&flags.Workers, "workers", "w", config.DefaultWorkers, "Number of build workers to use")
	buildCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter classes by name pattern (supports wildcards, e.g. '*UserTest' or '*Payment*')")
	buildCmd.Flags().StringVarP(&flags.Group, "group", "g", "", "Only show suites containing tests tagged with this group")
	buildCmd.Flags().BoolVar(&flags.Save, "save", false, "Save the build report to the configured JSON output path")
	rootCmd.AddCommand(buildCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List declared test classes",
		Long:  "Load the class manifest and list all declared classes and test methods without building them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.Manifest, "manifest", "m", "", "Path to the class manifest (defaults to phpunit.yaml)")
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter classes by name pattern (supports wildcards, e.g. '*UserTest' or '*Payment*')")
	rootCmd.AddCommand(listCmd)

	// Inspect command
	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "View build diagnostics interactively",
		Long:  "Display diagnostics and build errors from the last saved build report in an interactive viewer",
		RunE:  c.Inspect.Execute,
	}
	rootCmd.AddCommand(inspectCmd)
}
