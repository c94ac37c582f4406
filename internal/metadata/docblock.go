package metadata

import (
	"fmt"
	"regexp"

	"github.com/CristianLlanos/phpunit/internal/domain"
)

// ProviderFunc produces the data set a @dataProvider annotation refers to
type ProviderFunc func() (*domain.DataSet, error)

// Annotation patterns, matched against raw docblock text. The surrounding
// comment syntax (/** ... */, leading asterisks) does not matter.
var (
	backupGlobalsPattern       = regexp.MustCompile(`@backupGlobals\s+(enabled|disabled)`)
	backupStaticsPattern       = regexp.MustCompile(`@backupStaticAttributes\s+(enabled|disabled)`)
	preserveGlobalStatePattern = regexp.MustCompile(`@preserveGlobalState\s+(enabled|disabled)`)
	runInSeparateProcess       = regexp.MustCompile(`@runInSeparateProcess\b`)
	runTestsInSeparateProcs    = regexp.MustCompile(`@runTestsInSeparateProcesses\b`)
	runClassInSeparateProcess  = regexp.MustCompile(`@runClassInSeparateProcess\b`)
	groupPattern               = regexp.MustCompile(`@group\s+(\S+)`)
	dataProviderPattern        = regexp.MustCompile(`@dataProvider\s+(\S+)`)
)

// DocblockResolver resolves test metadata by parsing PHP-style docblock
// annotations registered per class and method. Method-level backup and
// preserve-global-state annotations override class-level ones; groups are
// merged.
type DocblockResolver struct {
	classes map[string]*classEntry
}

type classEntry struct {
	doc       string
	methods   map[string]string
	order     []string
	providers map[string]ProviderFunc
}

// NewDocblockResolver creates an empty DocblockResolver
func NewDocblockResolver() *DocblockResolver {
	return &DocblockResolver{classes: make(map[string]*classEntry)}
}

// AddClass registers a class-level docblock
func (r *DocblockResolver) AddClass(className, doc string) {
	r.class(className).doc = doc
}

// AddMethod registers a test method and its docblock
func (r *DocblockResolver) AddMethod(className, methodName, doc string) {
	entry := r.class(className)
	if _, exists := entry.methods[methodName]; !exists {
		entry.order = append(entry.order, methodName)
	}
	entry.methods[methodName] = doc
}

// AddProvider registers the data provider function a method's
// @dataProvider annotation refers to
func (r *DocblockResolver) AddProvider(className, providerName string, fn ProviderFunc) {
	r.class(className).providers[providerName] = fn
}

// Methods returns a class's test methods in declaration order
func (r *DocblockResolver) Methods(className string) []string {
	entry, ok := r.classes[className]
	if !ok {
		return nil
	}
	return entry.order
}

func (r *DocblockResolver) class(className string) *classEntry {
	entry, ok := r.classes[className]
	if !ok {
		entry = &classEntry{
			methods:   make(map[string]string),
			providers: make(map[string]ProviderFunc),
		}
		r.classes[className] = entry
	}
	return entry
}

func (r *DocblockResolver) docs(className, methodName string) (classDoc, methodDoc string) {
	entry, ok := r.classes[className]
	if !ok {
		return "", ""
	}
	return entry.doc, entry.methods[methodName]
}

// triState reads an enabled/disabled annotation, method docblock first
func triState(pattern *regexp.Regexp, methodDoc, classDoc string) domain.TriState {
	for _, doc := range []string{methodDoc, classDoc} {
		if m := pattern.FindStringSubmatch(doc); m != nil {
			return domain.TriStateOf(m[1] == "enabled")
		}
	}
	return domain.TriStateUnset
}

// BackupSettings resolves the backup-globals and backup-static-attributes
// annotations for a method
func (r *DocblockResolver) BackupSettings(className, methodName string) BackupSettings {
	classDoc, methodDoc := r.docs(className, methodName)
	return BackupSettings{
		BackupGlobals:          triState(backupGlobalsPattern, methodDoc, classDoc),
		BackupStaticAttributes: triState(backupStaticsPattern, methodDoc, classDoc),
	}
}

// PreserveGlobalState resolves the preserve-global-state annotation for a
// method
func (r *DocblockResolver) PreserveGlobalState(className, methodName string) domain.TriState {
	classDoc, methodDoc := r.docs(className, methodName)
	return triState(preserveGlobalStatePattern, methodDoc, classDoc)
}

// ProcessIsolation reports whether the method runs in a separate process,
// either by its own annotation or a class-wide one
func (r *DocblockResolver) ProcessIsolation(className, methodName string) bool {
	classDoc, methodDoc := r.docs(className, methodName)
	return runInSeparateProcess.MatchString(methodDoc) ||
		runTestsInSeparateProcs.MatchString(classDoc)
}

// ClassProcessIsolation reports whether the whole class runs in a separate
// process
func (r *DocblockResolver) ClassProcessIsolation(className, methodName string) bool {
	classDoc, _ := r.docs(className, methodName)
	return runClassInSeparateProcess.MatchString(classDoc)
}

// Groups returns the method's group tags: class-level groups first, then
// method-level ones, deduplicated in declaration order
func (r *DocblockResolver) Groups(className, methodName string) []string {
	classDoc, methodDoc := r.docs(className, methodName)

	seen := make(map[string]bool)
	var groups []string
	for _, doc := range []string{classDoc, methodDoc} {
		for _, m := range groupPattern.FindAllStringSubmatch(doc, -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				groups = append(groups, m[1])
			}
		}
	}
	return groups
}

// ProvidedData locates the method's @dataProvider annotation and invokes
// the registered provider function. Failures are reported as
// ProviderError values.
func (r *DocblockResolver) ProvidedData(className, methodName string) (*domain.DataSet, error) {
	entry, ok := r.classes[className]
	if !ok {
		return nil, &ProviderError{
			Kind:    ProviderInvalid,
			Message: fmt.Sprintf("unknown test class %s", className),
		}
	}

	methodDoc, ok := entry.methods[methodName]
	if !ok {
		return nil, &ProviderError{
			Kind:    ProviderInvalid,
			Message: fmt.Sprintf("unknown test method %s::%s", className, methodName),
		}
	}

	m := dataProviderPattern.FindStringSubmatch(methodDoc)
	if m == nil {
		return nil, &ProviderError{
			Kind:    ProviderInvalid,
			Message: fmt.Sprintf("no data provider declared for %s::%s", className, methodName),
		}
	}

	fn, ok := entry.providers[m[1]]
	if !ok {
		return nil, &ProviderError{
			Kind:    ProviderInvalid,
			Message: fmt.Sprintf("data provider %s is not registered", m[1]),
		}
	}

	data, err := fn()
	if err != nil {
		if perr, ok := err.(*ProviderError); ok {
			return nil, perr
		}
		return nil, &ProviderError{Kind: ProviderInvalid, Message: err.Error()}
	}
	return data, nil
}
