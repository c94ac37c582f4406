package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/CristianLlanos/phpunit/internal/batch"
	"github.com/CristianLlanos/phpunit/internal/domain"
)

// Save writes the build outcome to the configured JSON output file
func (s *JSONStorage) Save(results []batch.Result, duration time.Duration, workers int) error {
	report := BuildReport(results, duration, workers)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Load reads the last build report from the configured JSON output file
func (s *JSONStorage) Load() (*domain.BuildReport, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}
	var report domain.BuildReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &report, nil
}

// BuildReport flattens batch results into the persistable report structure
func BuildReport(results []batch.Result, duration time.Duration, workers int) *domain.BuildReport {
	var cases, diagnostics, buildErrors int
	entries := make([]domain.BuildEntry, 0, len(results))

	for _, result := range results {
		if result.Err != nil {
			buildErrors++
			entries = append(entries, domain.BuildEntry{
				Class:  result.Request.ClassName,
				Method: result.Request.MethodName,
				Error:  result.Err.Error(),
			})
			continue
		}

		c, d := domain.Count(result.Test)
		cases += c
		diagnostics += d
		entries = append(entries, entryFor(result.Request, result.Test))
	}

	return &domain.BuildReport{
		Meta: domain.BuildReportMeta{
			Requests:        len(results),
			Cases:           cases,
			Diagnostics:     diagnostics,
			Errors:          buildErrors,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Workers:         workers,
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Entries: entries,
	}
}

func entryFor(req batch.Request, test domain.Test) domain.BuildEntry {
	entry := domain.BuildEntry{
		Class:  req.ClassName,
		Method: req.MethodName,
		Kind:   test.Kind().String(),
		Name:   test.Name(),
	}

	switch v := test.(type) {
	case *domain.Suite:
		entry.Groups = v.Groups()
		for _, child := range v.Tests() {
			entry.Children = append(entry.Children, entryFor(req, child))
		}
	case *domain.Diagnostic:
		entry.Message = v.Message()
	default:
		// Case-like tests embed domain.TestCase, promoting its accessors.
		if c, ok := test.(caseDetails); ok {
			entry.DataKey = c.DataKey()
			entry.RunTestInSeparateProcess = c.RunTestInSeparateProcess()
			entry.RunClassInSeparateProcess = c.RunClassInSeparateProcess()
		}
	}
	return entry
}

type caseDetails interface {
	DataKey() string
	RunTestInSeparateProcess() bool
	RunClassInSeparateProcess() bool
}
