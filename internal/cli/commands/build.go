package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CristianLlanos/phpunit/internal/batch"
	"github.com/CristianLlanos/phpunit/internal/builder"
	"github.com/CristianLlanos/phpunit/internal/config"
	"github.com/CristianLlanos/phpunit/internal/domain"
	"github.com/CristianLlanos/phpunit/internal/manifest"
	"github.com/CristianLlanos/phpunit/internal/storage"
	"github.com/CristianLlanos/phpunit/internal/ui"
)

// BuildCommand handles the build command
type BuildCommand struct {
	config    *config.Config
	formatter *ui.Formatter
	storage   storage.Storage
}

// NewBuildCommand creates a new BuildCommand
func NewBuildCommand(cfg *config.Config, formatter *ui.Formatter, st storage.Storage) *BuildCommand {
	return &BuildCommand{
		config:    cfg,
		formatter: formatter,
		storage:   st,
	}
}

// Execute runs the command
func (bc *BuildCommand) Execute(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(bc.config.GetManifestPath())
	if err != nil {
		return err
	}

	reg, resolver := m.Materialize()

	var requests []batch.Request
	for _, className := range reg.Names() {
		if !matchesFilter(className, bc.config.Flags.Filter) {
			continue
		}
		for _, methodName := range resolver.Methods(className) {
			requests = append(requests, batch.Request{ClassName: className, MethodName: methodName})
		}
	}
	if len(requests) == 0 {
		return fmt.Errorf("no test methods declared in %s", bc.config.GetManifestPath())
	}

	pool := batch.NewPool(builder.New(resolver), reg, bc.config.Workers)
	progress := ui.NewProgressBar(len(requests))
	pool.SetProgress(progress.Update)

	startTime := time.Now()
	results := pool.BuildAll(requests)
	progress.Finish()

	if group := bc.config.Flags.Group; group != "" {
		results = filterByGroup(results, group)
	}
	bc.formatter.PrintResults(results)

	if bc.config.Flags.Save {
		if err := bc.storage.Save(results, time.Since(startTime), bc.config.Workers); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	var failed int
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d build(s) failed", failed)
	}
	return nil
}

// filterByGroup keeps results whose test carries at least one child tagged
// with the given group
func filterByGroup(results []batch.Result, group string) []batch.Result {
	var filtered []batch.Result
	for _, result := range results {
		if result.Err != nil {
			filtered = append(filtered, result)
			continue
		}
		if suite, ok := result.Test.(*domain.Suite); ok && len(suite.GroupTests(group)) > 0 {
			filtered = append(filtered, result)
		}
	}
	return filtered
}
