package ui

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/CristianLlanos/phpunit/internal/batch"
	"github.com/CristianLlanos/phpunit/internal/config"
	"github.com/CristianLlanos/phpunit/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// ClassListing is one manifest class prepared for display
type ClassListing struct {
	Name     string
	Abstract bool
	Methods  []string
}

// PrintClassList prints the declared classes and their test methods as a tree
func (f *Formatter) PrintClassList(classes []ClassListing) {
	color.Green("Found %d test class(es):\n", len(classes))

	for i, class := range classes {
		isLastClass := i == len(classes)-1

		marker := ""
		if class.Abstract {
			marker = " " + color.RedString("[abstract]")
		}
		if isLastClass {
			color.Cyan("└── %s%s", class.Name, marker)
		} else {
			color.Cyan("├── %s%s", class.Name, marker)
		}

		if len(class.Methods) == 0 {
			fmt.Printf("%s%s\n", branchPrefix(isLastClass, true), color.RedString("(no test methods declared)"))
			continue
		}
		for j, method := range class.Methods {
			isLastMethod := j == len(class.Methods)-1
			fmt.Printf("%s%s\n", branchPrefix(isLastClass, isLastMethod), color.YellowString(method))
		}
	}
}

func branchPrefix(isLastParent, isLastChild bool) string {
	switch {
	case isLastParent && isLastChild:
		return "    └── "
	case isLastParent:
		return "    ├── "
	case isLastChild:
		return "│   └── "
	default:
		return "│   ├── "
	}
}

// PrintResults prints each build outcome as a tree, followed by a summary
func (f *Formatter) PrintResults(results []batch.Result) {
	var cases, diagnostics, buildErrors int

	for _, result := range results {
		if result.Err != nil {
			buildErrors++
			color.Red("✗ %s::%s: %v", result.Request.ClassName, result.Request.MethodName, result.Err)
			continue
		}

		c, d := domain.Count(result.Test)
		cases += c
		diagnostics += d
		f.printTest(result.Test, "")
	}

	fmt.Println()
	if buildErrors > 0 {
		color.Red("✗ %d build(s) failed", buildErrors)
	}
	if diagnostics > 0 {
		color.Yellow("! %d diagnostic test(s) produced", diagnostics)
	}
	color.Green("✓ %d test case(s) built", cases)
}

func (f *Formatter) printTest(test domain.Test, prefix string) {
	switch v := test.(type) {
	case *domain.Suite:
		color.Cyan("%s%s", prefix, v.Name())
		children := v.Tests()
		for i, child := range children {
			if i == len(children)-1 {
				f.printChild(child, prefix+"└── ")
			} else {
				f.printChild(child, prefix+"├── ")
			}
		}
	default:
		f.printChild(test, prefix)
	}
}

func (f *Formatter) printChild(test domain.Test, prefix string) {
	switch v := test.(type) {
	case *domain.Suite:
		f.printTest(v, prefix)
	case *domain.Diagnostic:
		color.Red("%s%s: %s", prefix, v.Name(), firstLine(v.Message()))
	default:
		if key := dataKeyOf(test); key != "" {
			color.Yellow("%s%s with data set %q", prefix, test.Name(), key)
		} else {
			color.Green("%s%s", prefix, test.Name())
		}
	}
}

func dataKeyOf(test domain.Test) string {
	if c, ok := test.(interface{ DataKey() string }); ok {
		return c.DataKey()
	}
	return ""
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
