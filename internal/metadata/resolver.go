package metadata

import (
	"github.com/CristianLlanos/phpunit/internal/domain"
)

// BackupSettings carries the tri-state global/static backup flags resolved
// for one test method
type BackupSettings struct {
	BackupGlobals          domain.TriState
	BackupStaticAttributes domain.TriState
}

// Resolver answers metadata queries for declared test methods. Policy
// queries return well-typed defaults and never fail; only ProvidedData has
// failure modes, described by ProviderError.
type Resolver interface {
	BackupSettings(className, methodName string) BackupSettings
	PreserveGlobalState(className, methodName string) domain.TriState
	ProcessIsolation(className, methodName string) bool
	ClassProcessIsolation(className, methodName string) bool
	Groups(className, methodName string) []string
	ProvidedData(className, methodName string) (*domain.DataSet, error)
}

// ProviderErrorKind classifies a data provider failure
type ProviderErrorKind int

const (
	// ProviderInvalid covers every failure that is neither an explicit
	// incomplete nor an explicit skip
	ProviderInvalid ProviderErrorKind = iota
	// ProviderIncomplete marks the test incomplete by provider request
	ProviderIncomplete
	// ProviderSkipped marks the test skipped by provider request
	ProviderSkipped
)

// ProviderError describes a data provider failure. Kind selects the
// diagnostic the builder produces; Message is the optional detail appended
// to the diagnostic's base message.
type ProviderError struct {
	Kind    ProviderErrorKind
	Message string
}

// Error returns a log-friendly description of the failure
func (e *ProviderError) Error() string {
	var base string
	switch e.Kind {
	case ProviderIncomplete:
		base = "data provider marked incomplete"
	case ProviderSkipped:
		base = "data provider marked skipped"
	default:
		base = "data provider failed"
	}
	if e.Message == "" {
		return base
	}
	return base + ": " + e.Message
}
