package scanrunner

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"leadfair/internal/domain"
)

// Analyzer performs the website scan for a task.
type Analyzer interface {
	Analyze(ctx context.Context, rawURL string) *domain.WebsiteAnalysis
}

// Runner owns background website scans, one per session key. A scan is
// fire-and-forget at trigger time; the handle is retained so lead submission
// can await it later. The one-shot guard lives here: a second Start for the
// same key is a no-op.
type Runner struct {
	analyzer Analyzer
	sem      chan struct{}
	log      *zap.Logger

	mu    sync.Mutex
	tasks map[string]*task
}

type task struct {
	cancel context.CancelFunc
	done   chan struct{}
	result *domain.WebsiteAnalysis
}

func New(analyzer Analyzer, concurrency int, log *zap.Logger) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{
		analyzer: analyzer,
		sem:      make(chan struct{}, concurrency),
		log:      log,
		tasks:    make(map[string]*task),
	}
}

// Start launches a background scan for key. Returns false when a scan for
// this key was already triggered; the original task keeps running.
func (r *Runner) Start(key, rawURL string) bool {
	r.mu.Lock()
	if _, exists := r.tasks[key]; exists {
		r.mu.Unlock()
		return false
	}
	ctx, cancel := context.WithCancel(context.Background())
	t := &task{cancel: cancel, done: make(chan struct{})}
	r.tasks[key] = t
	r.mu.Unlock()

	go func() {
		defer close(t.done)
		select {
		case r.sem <- struct{}{}:
			defer func() { <-r.sem }()
		case <-ctx.Done():
			return
		}
		t.result = r.analyzer.Analyze(ctx, rawURL)
	}()

	r.log.Info("scan task started", zap.String("key", key))
	return true
}

// Started reports whether a scan was ever triggered for key.
func (r *Runner) Started(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.tasks[key]
	return ok
}

// Done reports whether the scan for key has finished, usable result or not.
func (r *Runner) Done(key string) bool {
	r.mu.Lock()
	t, exists := r.tasks[key]
	r.mu.Unlock()
	if !exists {
		return false
	}
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Result returns the finished scan for key without blocking. ok is false
// when no scan was triggered or it is still in flight.
func (r *Runner) Result(key string) (*domain.WebsiteAnalysis, bool) {
	r.mu.Lock()
	t, exists := r.tasks[key]
	r.mu.Unlock()
	if !exists {
		return nil, false
	}
	select {
	case <-t.done:
		return t.result, t.result != nil
	default:
		return nil, false
	}
}

// Await blocks until the scan for key finishes or ctx expires. ok is false
// when no scan exists, the scan produced nothing usable, or the wait was cut
// short.
func (r *Runner) Await(ctx context.Context, key string) (*domain.WebsiteAnalysis, bool) {
	r.mu.Lock()
	t, exists := r.tasks[key]
	r.mu.Unlock()
	if !exists {
		return nil, false
	}
	select {
	case <-t.done:
		return t.result, t.result != nil
	case <-ctx.Done():
		return nil, false
	}
}

// Drop cancels and forgets the scan for key. Called on session teardown so
// an abandoned session does not leak its in-flight scan.
func (r *Runner) Drop(key string) {
	r.mu.Lock()
	t, exists := r.tasks[key]
	if exists {
		delete(r.tasks, key)
	}
	r.mu.Unlock()
	if exists {
		t.cancel()
	}
}
