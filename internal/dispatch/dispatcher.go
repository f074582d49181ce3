// Package dispatch runs backend calls off the UI thread and posts their
// results back onto it. Every request belongs to a Scope tied to a screen's
// lifetime: cancelling the scope cancels in-flight contexts and guarantees
// that no result is delivered afterwards, even if the underlying HTTP
// request completes.
package dispatch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Task is one unit of background work, typically a single API call.
type Task func(ctx context.Context) (any, error)

// Dispatcher runs tasks on goroutines under the configured timeout and
// marshals completions back through the post function (fyne.Do in the app).
type Dispatcher struct {
	timeout time.Duration
	post    func(func())
	logger  *zap.Logger

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

// New creates a dispatcher. post must execute the given function on the UI
// thread; tests pass a direct invoker.
func New(timeout time.Duration, post func(func()), logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		timeout: timeout,
		post:    post,
		logger:  logger,
		cancels: make(map[string]context.CancelFunc),
	}
}

// ActiveCount returns the number of requests currently in flight.
func (d *Dispatcher) ActiveCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.cancels)
}

// CancelAll cancels every in-flight request across all scopes.
func (d *Dispatcher) CancelAll() {
	d.mu.Lock()
	cancels := make([]context.CancelFunc, 0, len(d.cancels))
	for _, cancel := range d.cancels {
		cancels = append(cancels, cancel)
	}
	d.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

func (d *Dispatcher) register(id string, cancel context.CancelFunc) {
	d.mu.Lock()
	d.cancels[id] = cancel
	d.mu.Unlock()
}

func (d *Dispatcher) unregister(id string) {
	d.mu.Lock()
	delete(d.cancels, id)
	d.mu.Unlock()
}

// Scope groups the requests issued by one screen. A cancelled scope stays
// cancelled; screens create a fresh scope on every activation.
type Scope struct {
	dispatcher *Dispatcher

	mu        sync.Mutex
	cancelled bool
	ids       map[string]context.CancelFunc
}

// NewScope creates a request scope tied to a screen lifetime.
func (d *Dispatcher) NewScope() *Scope {
	return &Scope{
		dispatcher: d,
		ids:        make(map[string]context.CancelFunc),
	}
}

// Go runs the task in the background. Exactly one of onResult and onErr is
// invoked via the dispatcher's post function, unless the scope was
// cancelled first, in which case neither runs.
func (s *Scope) Go(task Task, onResult func(any), onErr func(error)) {
	s.mu.Lock()
	if s.cancelled {
		s.mu.Unlock()
		return
	}

	id := uuid.New().String()
	ctx, cancel := context.WithTimeout(context.Background(), s.dispatcher.timeout)
	s.ids[id] = cancel
	s.mu.Unlock()

	s.dispatcher.register(id, cancel)

	go func() {
		defer cancel()

		result, err := task(ctx)

		s.dispatcher.unregister(id)
		s.mu.Lock()
		delete(s.ids, id)
		dropped := s.cancelled
		s.mu.Unlock()

		if dropped {
			s.dispatcher.logger.Debug("dropping result for cancelled scope",
				zap.String("request_id", id))
			return
		}

		s.dispatcher.post(func() {
			// The scope may have been cancelled between the completion
			// above and this callback running on the UI thread.
			s.mu.Lock()
			dropped := s.cancelled
			s.mu.Unlock()
			if dropped {
				return
			}

			if err != nil {
				if onErr != nil {
					onErr(err)
				}
				return
			}
			if onResult != nil {
				onResult(result)
			}
		})
	}()
}

// Cancel cancels all in-flight requests of the scope and suppresses
// delivery of their results. The scope cannot be reused afterwards.
func (s *Scope) Cancel() {
	s.mu.Lock()
	if s.cancelled {
		s.mu.Unlock()
		return
	}
	s.cancelled = true
	cancels := make([]context.CancelFunc, 0, len(s.ids))
	for id, cancel := range s.ids {
		cancels = append(cancels, cancel)
		delete(s.ids, id)
	}
	s.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

// Cancelled reports whether the scope has been cancelled.
func (s *Scope) Cancelled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelled
}
