package commands

import (
	"github.com/spf13/cobra"

	"github.com/CristianLlanos/phpunit/internal/config"
	"github.com/CristianLlanos/phpunit/internal/storage"
	"github.com/CristianLlanos/phpunit/internal/ui"
)

// InspectCommand handles the inspect command
type InspectCommand struct {
	config    *config.Config
	storage   storage.Storage
	inspector *ui.Inspector
}

// NewInspectCommand creates a new InspectCommand
func NewInspectCommand(cfg *config.Config, st storage.Storage, inspector *ui.Inspector) *InspectCommand {
	return &InspectCommand{
		config:    cfg,
		storage:   st,
		inspector: inspector,
	}
}

// Execute runs the command
func (ic *InspectCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := ic.storage.Load()
	if err != nil {
		return err
	}
	return ic.inspector.View(report)
}
