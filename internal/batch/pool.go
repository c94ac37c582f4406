package batch

import (
	"fmt"
	"sync"

	"github.com/CristianLlanos/phpunit/internal/builder"
	"github.com/CristianLlanos/phpunit/internal/domain"
	"github.com/CristianLlanos/phpunit/internal/registry"
)

// Request identifies one build: a registered class and a method name
type Request struct {
	ClassName  string
	MethodName string
}

// Result pairs a request with its build outcome. Err is set when the class
// is unknown or the build raised the fatal no-valid-test condition.
type Result struct {
	Request Request
	Test    domain.Test
	Err     error
}

// ProgressFunc receives running totals after each completed build
type ProgressFunc func(done, cases, diagnostics int)

// Pool builds many requests concurrently. The builder holds no state
// between calls, so all workers share one instance.
type Pool struct {
	builder  *builder.Builder
	registry *registry.Registry
	workers  int
	progress ProgressFunc
}

// NewPool creates a Pool with the given number of workers
func NewPool(b *builder.Builder, reg *registry.Registry, workers int) *Pool {
	return &Pool{
		builder:  b,
		registry: reg,
		workers:  workers,
	}
}

// SetProgress sets the progress callback for the pool
func (p *Pool) SetProgress(progress ProgressFunc) {
	p.progress = progress
}

// BuildAll builds every request, preserving input order in the results
func (p *Pool) BuildAll(requests []Request) []Result {
	if len(requests) == 0 {
		return nil
	}

	workers := p.workers
	if workers <= 0 {
		workers = 1
	}

	results := make([]Result, len(requests))
	jobs := make(chan int, len(requests))
	for i := range requests {
		jobs <- i
	}
	close(jobs)

	var mu sync.Mutex
	var done, cases, diagnostics int

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = p.buildOne(requests[i])

				mu.Lock()
				done++
				c, d := domain.Count(results[i].Test)
				cases += c
				diagnostics += d
				if p.progress != nil {
					p.progress(done, cases, diagnostics)
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return results
}

func (p *Pool) buildOne(req Request) Result {
	class, ok := p.registry.Lookup(req.ClassName)
	if !ok {
		return Result{Request: req, Err: fmt.Errorf("unknown test class %q", req.ClassName)}
	}

	test, err := p.builder.Build(class, req.MethodName)
	return Result{Request: req, Test: test, Err: err}
}
