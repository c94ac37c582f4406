package registry

import (
	"fmt"
	"sort"

	"github.com/CristianLlanos/phpunit/internal/domain"
)

// Factory constructs a test instance from an ordered argument list. An
// empty list builds a plain instance; a (methodName, data, dataKey) triple
// builds a parameterized one.
type Factory func(args []any) domain.Case

// ClassDescriptor reflects over one registered test class
type ClassDescriptor interface {
	ClassName() string
	IsInstantiable() bool
	// ConstructorParameterCount reports the declared constructor's
	// parameter count; ok is false when the class declares no constructor.
	ConstructorParameterCount() (count int, ok bool)
	Instantiate(args []any) domain.Case
}

// Class is a factory-backed ClassDescriptor
type Class struct {
	name           string
	instantiable   bool
	hasConstructor bool
	arity          int
	factory        Factory
}

// NewClass describes an instantiable test class whose constructor declares
// arity parameters
func NewClass(name string, arity int, factory Factory) *Class {
	return &Class{
		name:           name,
		instantiable:   true,
		hasConstructor: true,
		arity:          arity,
		factory:        factory,
	}
}

// NewAbstractClass describes a class that cannot be instantiated
func NewAbstractClass(name string) *Class {
	return &Class{name: name}
}

// NewConstructorlessClass describes an instantiable class that declares no
// constructor at all
func NewConstructorlessClass(name string) *Class {
	return &Class{name: name, instantiable: true}
}

// ClassName returns the class's name
func (c *Class) ClassName() string {
	return c.name
}

// IsInstantiable reports whether instances of the class can be constructed
func (c *Class) IsInstantiable() bool {
	return c.instantiable
}

// ConstructorParameterCount reports the declared constructor's parameter
// count; ok is false when the class declares no constructor
func (c *Class) ConstructorParameterCount() (int, bool) {
	if !c.hasConstructor {
		return 0, false
	}
	return c.arity, true
}

// Instantiate constructs a test instance through the registered factory.
// Callers must check IsInstantiable and ConstructorParameterCount first.
func (c *Class) Instantiate(args []any) domain.Case {
	if c.factory == nil {
		panic(fmt.Sprintf("test class %q has no registered factory", c.name))
	}
	return c.factory(args)
}

// Registry maps class names to their descriptors
type Registry struct {
	classes map[string]*Class
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{classes: make(map[string]*Class)}
}

// Register adds a class descriptor. Registering the same name twice panics.
func (r *Registry) Register(c *Class) {
	if _, exists := r.classes[c.name]; exists {
		panic(fmt.Sprintf("test class %q already registered", c.name))
	}
	r.classes[c.name] = c
}

// Lookup returns the descriptor registered under name
func (r *Registry) Lookup(name string) (*Class, bool) {
	c, ok := r.classes[name]
	return c, ok
}

// Names returns the registered class names, sorted for consistent output
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
