package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CristianLlanos/phpunit/internal/domain"
)

func plainFactory(args []any) domain.Case {
	return domain.NewTestCase("")
}

func TestNewClass(t *testing.T) {
	c := NewClass("UserTest", 3, plainFactory)

	assert.Equal(t, "UserTest", c.ClassName())
	assert.True(t, c.IsInstantiable())

	arity, ok := c.ConstructorParameterCount()
	assert.True(t, ok)
	assert.Equal(t, 3, arity)
}

func TestNewAbstractClass(t *testing.T) {
	c := NewAbstractClass("AbstractTest")

	assert.False(t, c.IsInstantiable())
}

func TestNewConstructorlessClass(t *testing.T) {
	c := NewConstructorlessClass("BareTest")

	assert.True(t, c.IsInstantiable())

	_, ok := c.ConstructorParameterCount()
	assert.False(t, ok)
}

func TestClassInstantiate(t *testing.T) {
	c := NewClass("UserTest", 0, plainFactory)

	instance := c.Instantiate(nil)
	require.NotNil(t, instance)
	assert.Equal(t, domain.KindPlainCase, instance.Kind())
}

func TestClassInstantiateWithoutFactoryPanics(t *testing.T) {
	c := NewAbstractClass("AbstractTest")

	assert.Panics(t, func() { c.Instantiate(nil) })
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := New()
	reg.Register(NewClass("UserTest", 0, plainFactory))

	c, ok := reg.Lookup("UserTest")
	require.True(t, ok)
	assert.Equal(t, "UserTest", c.ClassName())

	_, ok = reg.Lookup("MissingTest")
	assert.False(t, ok)
}

func TestRegistryDuplicateRegistrationPanics(t *testing.T) {
	reg := New()
	reg.Register(NewClass("UserTest", 0, plainFactory))

	assert.Panics(t, func() {
		reg.Register(NewClass("UserTest", 0, plainFactory))
	})
}

func TestRegistryNamesSorted(t *testing.T) {
	reg := New()
	reg.Register(NewClass("ZebraTest", 0, plainFactory))
	reg.Register(NewClass("AlphaTest", 0, plainFactory))
	reg.Register(NewClass("MikeTest", 0, plainFactory))

	assert.Equal(t, []string{"AlphaTest", "MikeTest", "ZebraTest"}, reg.Names())
}
