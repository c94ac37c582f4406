package storage

import (
	"time"

	"github.com/CristianLlanos/phpunit/internal/batch"
	"github.com/CristianLlanos/phpunit/internal/config"
	"github.com/CristianLlanos/phpunit/internal/domain"
)

// Storage persists and loads build reports (e.g. for the inspect viewer)
type Storage interface {
	Save(results []batch.Result, duration time.Duration, workers int) error
	Load() (*domain.BuildReport, error)
}

// JSONStorage stores build reports in a JSON file under the configured
// output path
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output
// JSON path
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
