package builder

import (
	"errors"
	"fmt"

	"github.com/CristianLlanos/phpunit/internal/domain"
	"github.com/CristianLlanos/phpunit/internal/metadata"
	"github.com/CristianLlanos/phpunit/internal/registry"
)

// ErrNoValidTest reports a class that declares no constructor at all; no
// Test can be produced from it and the build call fails.
var ErrNoValidTest = errors.New("no valid test provided")

// Builder assembles executable test instances from declared test methods.
// Build resolves constructor shape, execution policy, and provider data in
// one pass so the runner never has to branch on test shape. A Builder holds
// no state between calls and is safe for concurrent use as long as its
// resolver is.
type Builder struct {
	resolver metadata.Resolver
}

// New creates a Builder backed by the given metadata resolver
func New(resolver metadata.Resolver) *Builder {
	return &Builder{resolver: resolver}
}

// Build produces the executable test for one declared test method.
//
// Non-instantiable classes and every data provider failure come back as
// diagnostic pseudo-tests, never as errors; the only error condition is a
// class without a constructor, reported via ErrNoValidTest.
func (b *Builder) Build(class registry.ClassDescriptor, methodName string) (domain.Test, error) {
	className := class.ClassName()

	if !class.IsInstantiable() {
		return domain.NewWarning(fmt.Sprintf("Cannot instantiate class %q.", className)), nil
	}

	policy := b.resolvePolicy(className, methodName)
	groups := b.resolver.Groups(className, methodName)

	arity, ok := class.ConstructorParameterCount()
	if !ok {
		return nil, fmt.Errorf("%s::%s: %w", className, methodName, ErrNoValidTest)
	}

	// Constructors with zero or one parameter accept at most an optional
	// name; two or more means the method is data-driven.
	if arity >= 2 {
		spec := domain.TestSpec{ClassName: className, MethodName: methodName}
		return b.buildDataProviderSuite(class, spec, policy, groups), nil
	}

	test := class.Instantiate(nil)
	test.SetName(methodName)
	policy.ApplyTo(test)
	return test, nil
}

// resolvePolicy gathers the execution policy for a method; resolver
// contracts guarantee well-typed defaults, so this cannot fail the build
func (b *Builder) resolvePolicy(className, methodName string) domain.ExecutionPolicy {
	backup := b.resolver.BackupSettings(className, methodName)
	return domain.ExecutionPolicy{
		RunTestInSeparateProcess:  b.resolver.ProcessIsolation(className, methodName),
		RunClassInSeparateProcess: b.resolver.ClassProcessIsolation(className, methodName),
		PreserveGlobalState:       b.resolver.PreserveGlobalState(className, methodName),
		BackupGlobals:             backup.BackupGlobals,
		BackupStaticAttributes:    backup.BackupStaticAttributes,
	}
}

// buildDataProviderSuite expands provider data into one parameterized case
// per row, in provider iteration order. Provider failures and empty data
// sets shrink the suite to a single diagnostic child.
func (b *Builder) buildDataProviderSuite(class registry.ClassDescriptor, spec domain.TestSpec, policy domain.ExecutionPolicy, groups []string) *domain.Suite {
	suite := domain.NewSuite(spec.String())

	data, err := b.resolver.ProvidedData(spec.ClassName, spec.MethodName)
	if err != nil {
		suite.AddTest(providerDiagnostic(spec, err), groups)
		return suite
	}

	if data == nil || data.Len() == 0 {
		suite.AddTest(domain.NewWarning(fmt.Sprintf("No tests found in suite %q.", suite.Name())), groups)
		return suite
	}

	for _, key := range data.Keys() {
		args, _ := data.Get(key)
		test := class.Instantiate([]any{spec.MethodName, args, key})
		policy.ApplyTo(test)
		suite.AddTest(test, groups)
	}
	return suite
}

// providerDiagnostic maps a data provider failure to the matching
// diagnostic pseudo-test
func providerDiagnostic(spec domain.TestSpec, err error) domain.Test {
	var perr *metadata.ProviderError
	if !errors.As(err, &perr) {
		perr = &metadata.ProviderError{Kind: metadata.ProviderInvalid, Message: err.Error()}
	}

	switch perr.Kind {
	case metadata.ProviderIncomplete:
		return domain.NewIncomplete(composeMessage(
			fmt.Sprintf("Test for %s marked incomplete by data provider", spec), perr.Message))
	case metadata.ProviderSkipped:
		return domain.NewSkipped(composeMessage(
			fmt.Sprintf("Test for %s skipped by data provider", spec), perr.Message))
	default:
		return domain.NewWarning(composeMessage(
			fmt.Sprintf("The data provider specified for %s is invalid.", spec), perr.Message))
	}
}

// composeMessage appends the failure's own message on a new line when it
// carries one
func composeMessage(base, detail string) string {
	if detail == "" {
		return base
	}
	return base + "\n" + detail
}
