package builder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CristianLlanos/phpunit/internal/domain"
	"github.com/CristianLlanos/phpunit/internal/metadata"
	"github.com/CristianLlanos/phpunit/internal/registry"
)

// stubResolver returns canned metadata for every class and method
type stubResolver struct {
	backup         metadata.BackupSettings
	preserve       domain.TriState
	isolation      bool
	classIsolation bool
	groups         []string
	data           *domain.DataSet
	dataErr        error
}

func (s *stubResolver) BackupSettings(className, methodName string) metadata.BackupSettings {
	return s.backup
}

func (s *stubResolver) PreserveGlobalState(className, methodName string) domain.TriState {
	return s.preserve
}

func (s *stubResolver) ProcessIsolation(className, methodName string) bool {
	return s.isolation
}

func (s *stubResolver) ClassProcessIsolation(className, methodName string) bool {
	return s.classIsolation
}

func (s *stubResolver) Groups(className, methodName string) []string {
	return s.groups
}

func (s *stubResolver) ProvidedData(className, methodName string) (*domain.DataSet, error) {
	return s.data, s.dataErr
}

func testFactory(args []any) domain.Case {
	if len(args) == 3 {
		name, _ := args[0].(string)
		data, _ := args[1].([]any)
		key, _ := args[2].(string)
		return domain.NewParameterizedTestCase(name, data, key)
	}
	return domain.NewTestCase("")
}

func plainClass(name string, arity int) *registry.Class {
	return registry.NewClass(name, arity, testFactory)
}

func TestBuildPlainCase(t *testing.T) {
	tests := []struct {
		name  string
		arity int
	}{
		{"zero-argument constructor", 0},
		{"one-argument constructor", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(&stubResolver{})

			test, err := b.Build(plainClass("UserTest", tt.arity), "testCreate")
			require.NoError(t, err)

			assert.Equal(t, domain.KindPlainCase, test.Kind())
			assert.Equal(t, "testCreate", test.Name())
		})
	}
}

func TestBuildNonInstantiableClass(t *testing.T) {
	b := New(&stubResolver{})

	test, err := b.Build(registry.NewAbstractClass("Foo"), "testAnything")
	require.NoError(t, err)

	d, ok := test.(*domain.Diagnostic)
	require.True(t, ok)
	assert.Equal(t, domain.KindWarning, d.Kind())
	assert.Equal(t, `Cannot instantiate class "Foo".`, d.Message())
}

func TestBuildClassWithoutConstructor(t *testing.T) {
	b := New(&stubResolver{})

	for _, methodName := range []string{"testCreate", "testDelete", "testAnything"} {
		test, err := b.Build(registry.NewConstructorlessClass("BareTest"), methodName)
		assert.Nil(t, test)
		assert.ErrorIs(t, err, ErrNoValidTest)
	}
}

func TestBuildDataProviderSuite(t *testing.T) {
	data := domain.NewDataSet()
	data.Add("admin", []any{"root", true})
	data.Add("guest", []any{"nobody", false})
	data.AddIndexed([]any{"extra", true})

	b := New(&stubResolver{data: data, groups: []string{"users"}})

	test, err := b.Build(plainClass("UserTest", 3), "testCreate")
	require.NoError(t, err)

	suite, ok := test.(*domain.Suite)
	require.True(t, ok)
	assert.Equal(t, "UserTest::testCreate", suite.Name())
	require.Len(t, suite.Tests(), 3)

	expectedKeys := []string{"admin", "guest", "2"}
	expectedData := [][]any{{"root", true}, {"nobody", false}, {"extra", true}}
	for i, child := range suite.Tests() {
		c, ok := child.(*domain.TestCase)
		require.True(t, ok)
		assert.Equal(t, domain.KindParameterizedCase, c.Kind())
		assert.Equal(t, "testCreate", c.Name())
		assert.Equal(t, expectedKeys[i], c.DataKey())
		assert.Equal(t, expectedData[i], c.Data())
	}

	// Every child is tagged with the method's groups
	assert.Len(t, suite.GroupTests("users"), 3)
}

func TestBuildEmptyDataSet(t *testing.T) {
	b := New(&stubResolver{data: domain.NewDataSet()})

	test, err := b.Build(plainClass("UserTest", 2), "testCreate")
	require.NoError(t, err)

	suite, ok := test.(*domain.Suite)
	require.True(t, ok)
	require.Len(t, suite.Tests(), 1)

	d, ok := suite.Tests()[0].(*domain.Diagnostic)
	require.True(t, ok)
	assert.Equal(t, domain.KindWarning, d.Kind())
	assert.Equal(t, `No tests found in suite "UserTest::testCreate".`, d.Message())
}

func TestBuildProviderFailures(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedKind    domain.Kind
		expectedMessage string
	}{
		{
			name:            "incomplete with nested message",
			err:             &metadata.ProviderError{Kind: metadata.ProviderIncomplete, Message: "not written yet"},
			expectedKind:    domain.KindIncomplete,
			expectedMessage: "Test for UserTest::testCreate marked incomplete by data provider\nnot written yet",
		},
		{
			name:            "incomplete without nested message",
			err:             &metadata.ProviderError{Kind: metadata.ProviderIncomplete},
			expectedKind:    domain.KindIncomplete,
			expectedMessage: "Test for UserTest::testCreate marked incomplete by data provider",
		},
		{
			name:            "skipped with nested message",
			err:             &metadata.ProviderError{Kind: metadata.ProviderSkipped, Message: "missing extension"},
			expectedKind:    domain.KindSkipped,
			expectedMessage: "Test for UserTest::testCreate skipped by data provider\nmissing extension",
		},
		{
			name:            "invalid provider",
			err:             &metadata.ProviderError{Kind: metadata.ProviderInvalid, Message: "provider is not static"},
			expectedKind:    domain.KindWarning,
			expectedMessage: "The data provider specified for UserTest::testCreate is invalid.\nprovider is not static",
		},
		{
			name:            "plain error maps to invalid provider",
			err:             errors.New("boom"),
			expectedKind:    domain.KindWarning,
			expectedMessage: "The data provider specified for UserTest::testCreate is invalid.\nboom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(&stubResolver{dataErr: tt.err, groups: []string{"users"}})

			test, err := b.Build(plainClass("UserTest", 2), "testCreate")
			require.NoError(t, err)

			suite, ok := test.(*domain.Suite)
			require.True(t, ok)
			assert.Equal(t, "UserTest::testCreate", suite.Name())
			require.Len(t, suite.Tests(), 1)

			d, ok := suite.Tests()[0].(*domain.Diagnostic)
			require.True(t, ok)
			assert.Equal(t, tt.expectedKind, d.Kind())
			assert.Equal(t, tt.expectedMessage, d.Message())

			// The lone diagnostic still carries the method's groups
			assert.Len(t, suite.GroupTests("users"), 1)
		})
	}
}

func TestBuildAppliesPolicyToPlainCase(t *testing.T) {
	b := New(&stubResolver{
		isolation: true,
		preserve:  domain.TriStateEnabled,
		backup: metadata.BackupSettings{
			BackupGlobals:          domain.TriStateEnabled,
			BackupStaticAttributes: domain.TriStateDisabled,
		},
	})

	test, err := b.Build(plainClass("UserTest", 0), "testCreate")
	require.NoError(t, err)

	c, ok := test.(*domain.TestCase)
	require.True(t, ok)
	assert.True(t, c.RunTestInSeparateProcess())
	assert.Equal(t, domain.TriStateEnabled, c.PreserveGlobalState())
	assert.Equal(t, domain.TriStateEnabled, c.BackupGlobals())
	assert.Equal(t, domain.TriStateDisabled, c.BackupStaticAttributes())
}

func TestBuildAppliesPolicyToEveryParameterizedCase(t *testing.T) {
	data := domain.NewDataSet()
	data.Add("admin", []any{"root"})
	data.Add("guest", []any{"nobody"})

	b := New(&stubResolver{
		data:           data,
		isolation:      true,
		classIsolation: true,
		preserve:       domain.TriStateEnabled,
	})

	test, err := b.Build(plainClass("UserTest", 3), "testCreate")
	require.NoError(t, err)

	suite := test.(*domain.Suite)
	require.Len(t, suite.Tests(), 2)
	for _, child := range suite.Tests() {
		c := child.(*domain.TestCase)
		assert.True(t, c.RunTestInSeparateProcess())
		assert.True(t, c.RunClassInSeparateProcess())
		assert.Equal(t, domain.TriStateEnabled, c.PreserveGlobalState())
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	data := domain.NewDataSet()
	data.Add("admin", []any{"root", true})
	data.Add("guest", []any{"nobody", false})

	resolver := &stubResolver{
		data:      data,
		isolation: true,
		preserve:  domain.TriStateEnabled,
		groups:    []string{"users", "smoke"},
	}
	b := New(resolver)
	class := plainClass("UserTest", 3)

	first, err := b.Build(class, "testCreate")
	require.NoError(t, err)
	second, err := b.Build(class, "testCreate")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
