package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/CristianLlanos/phpunit/internal/domain"
	"github.com/CristianLlanos/phpunit/internal/metadata"
	"github.com/CristianLlanos/phpunit/internal/registry"
)

// Manifest declares the test classes a build run operates on
type Manifest struct {
	Classes []Class `yaml:"classes"`
}

// Class declares one test class: its constructor shape, docblock, test
// methods, and inline data providers
type Class struct {
	Name        string      `yaml:"name"`
	Abstract    bool        `yaml:"abstract"`
	Constructor Constructor `yaml:"constructor"`
	Doc         string      `yaml:"doc"`
	Methods     []Method    `yaml:"methods"`
	Providers   []Provider  `yaml:"providers"`
}

// Constructor describes a class's declared constructor, if any
type Constructor struct {
	Declared   bool `yaml:"declared"`
	Parameters int  `yaml:"parameters"`
}

// Method declares one test method and its docblock
type Method struct {
	Name string `yaml:"name"`
	Doc  string `yaml:"doc"`
}

// Provider declares one inline data provider. Fails simulates a provider
// failure ("incomplete", "skipped", or "invalid") instead of yielding Sets.
type Provider struct {
	Name    string `yaml:"name"`
	Fails   string `yaml:"fails"`
	Message string `yaml:"message"`
	Sets    []Set  `yaml:"sets"`
}

// Set is one inline data row. An empty key means positional.
type Set struct {
	Key  string `yaml:"key"`
	Args []any  `yaml:"args"`
}

// Load reads and validates a manifest file
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates manifest YAML
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	classes := make(map[string]bool)
	for _, c := range m.Classes {
		if c.Name == "" {
			return fmt.Errorf("manifest: class with empty name")
		}
		if classes[c.Name] {
			return fmt.Errorf("manifest: duplicate class %q", c.Name)
		}
		classes[c.Name] = true

		methods := make(map[string]bool)
		for _, meth := range c.Methods {
			if meth.Name == "" {
				return fmt.Errorf("manifest: class %q has a method with empty name", c.Name)
			}
			if methods[meth.Name] {
				return fmt.Errorf("manifest: duplicate method %s::%s", c.Name, meth.Name)
			}
			methods[meth.Name] = true
		}

		providers := make(map[string]bool)
		for _, p := range c.Providers {
			if p.Name == "" {
				return fmt.Errorf("manifest: class %q has a provider with empty name", c.Name)
			}
			if providers[p.Name] {
				return fmt.Errorf("manifest: duplicate provider %s::%s", c.Name, p.Name)
			}
			providers[p.Name] = true

			switch p.Fails {
			case "", "incomplete", "skipped", "invalid":
			default:
				return fmt.Errorf("manifest: provider %s::%s has unknown failure mode %q", c.Name, p.Name, p.Fails)
			}
		}
	}
	return nil
}

// Materialize populates a class registry and a docblock resolver from the
// manifest so the builder can operate on it
func (m *Manifest) Materialize() (*registry.Registry, *metadata.DocblockResolver) {
	reg := registry.New()
	res := metadata.NewDocblockResolver()

	for _, c := range m.Classes {
		reg.Register(descriptorFor(c))
		res.AddClass(c.Name, c.Doc)
		for _, meth := range c.Methods {
			res.AddMethod(c.Name, meth.Name, meth.Doc)
		}
		for _, p := range c.Providers {
			res.AddProvider(c.Name, p.Name, providerFunc(p))
		}
	}
	return reg, res
}

func descriptorFor(c Class) *registry.Class {
	switch {
	case c.Abstract:
		return registry.NewAbstractClass(c.Name)
	case !c.Constructor.Declared:
		return registry.NewConstructorlessClass(c.Name)
	default:
		return registry.NewClass(c.Name, c.Constructor.Parameters, genericFactory)
	}
}

// genericFactory builds manifest-declared instances. The CLI has no
// compiled-in test classes, so every case is a bare TestCase.
func genericFactory(args []any) domain.Case {
	if len(args) == 3 {
		name, _ := args[0].(string)
		data, _ := args[1].([]any)
		key, _ := args[2].(string)
		return domain.NewParameterizedTestCase(name, data, key)
	}
	return domain.NewTestCase("")
}

func providerFunc(p Provider) metadata.ProviderFunc {
	return func() (*domain.DataSet, error) {
		switch p.Fails {
		case "incomplete":
			return nil, &metadata.ProviderError{Kind: metadata.ProviderIncomplete, Message: p.Message}
		case "skipped":
			return nil, &metadata.ProviderError{Kind: metadata.ProviderSkipped, Message: p.Message}
		case "invalid":
			return nil, &metadata.ProviderError{Kind: metadata.ProviderInvalid, Message: p.Message}
		}

		ds := domain.NewDataSet()
		for _, set := range p.Sets {
			if set.Key != "" {
				ds.Add(set.Key, set.Args)
			} else {
				ds.AddIndexed(set.Args)
			}
		}
		return ds, nil
	}
}
