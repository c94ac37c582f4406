package commands

import (
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CristianLlanos/phpunit/internal/config"
	"github.com/CristianLlanos/phpunit/internal/manifest"
	"github.com/CristianLlanos/phpunit/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(lc.config.GetManifestPath())
	if err != nil {
		return err
	}

	reg, resolver := m.Materialize()

	var classes []ui.ClassListing
	for _, className := range reg.Names() {
		if !matchesFilter(className, lc.config.Flags.Filter) {
			continue
		}
		class, _ := reg.Lookup(className)
		classes = append(classes, ui.ClassListing{
			Name:     className,
			Abstract: !class.IsInstantiable(),
			Methods:  resolver.Methods(className),
		})
	}

	if len(classes) == 0 {
		color.Yellow("No test classes found")
		return nil
	}

	lc.formatter.PrintClassList(classes)
	return nil
}

// matchesFilter matches a class name against a wildcard pattern. An empty
// pattern matches everything; a pattern without wildcards is a substring
// match.
func matchesFilter(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if strings.ContainsAny(pattern, "*?") {
		// Fall back to a flexible part match for patterns like "*Payment*"
		parts := strings.Split(pattern, "*")
		hasNonEmptyPart := false
		for _, part := range parts {
			if part == "" {
				continue
			}
			hasNonEmptyPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasNonEmptyPart
	}

	return strings.Contains(name, pattern)
}
