package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// directPost runs posted callbacks inline, standing in for fyne.Do.
func directPost(fn func()) { fn() }

func newTestDispatcher(timeout time.Duration) *Dispatcher {
	return New(timeout, directPost, zap.NewNop())
}

func TestScope_DeliversResult(t *testing.T) {
	dispatcher := newTestDispatcher(time.Second)
	scope := dispatcher.NewScope()

	done := make(chan any, 1)
	scope.Go(
		func(ctx context.Context) (any, error) { return "payload", nil },
		func(result any) { done <- result },
		func(err error) { t.Errorf("unexpected error: %v", err) },
	)

	select {
	case result := <-done:
		assert.Equal(t, "payload", result)
	case <-time.After(time.Second):
		t.Fatal("result was not delivered")
	}
}

func TestScope_DeliversError(t *testing.T) {
	dispatcher := newTestDispatcher(time.Second)
	scope := dispatcher.NewScope()

	wantErr := errors.New("backend exploded")
	done := make(chan error, 1)
	scope.Go(
		func(ctx context.Context) (any, error) { return nil, wantErr },
		func(result any) { t.Errorf("unexpected result: %v", result) },
		func(err error) { done <- err },
	)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, wantErr)
	case <-time.After(time.Second):
		t.Fatal("error was not delivered")
	}
}

func TestScope_CancelSuppressesDelivery(t *testing.T) {
	dispatcher := newTestDispatcher(time.Second)
	scope := dispatcher.NewScope()

	started := make(chan struct{})
	finished := make(chan struct{})
	var delivered sync.Map

	scope.Go(
		func(ctx context.Context) (any, error) {
			close(started)
			<-ctx.Done()
			return "late result", nil
		},
		func(result any) { delivered.Store("result", result) },
		func(err error) { delivered.Store("error", err) },
	)

	<-started
	scope.Cancel()

	// Give the worker time to observe cancellation and (incorrectly) try
	// to deliver.
	go func() {
		time.Sleep(100 * time.Millisecond)
		close(finished)
	}()
	<-finished

	_, hasResult := delivered.Load("result")
	_, hasError := delivered.Load("error")
	assert.False(t, hasResult, "cancelled scope must not receive results")
	assert.False(t, hasError, "cancelled scope must not receive errors")
	assert.True(t, scope.Cancelled())
}

func TestScope_GoAfterCancelIsNoop(t *testing.T) {
	dispatcher := newTestDispatcher(time.Second)
	scope := dispatcher.NewScope()
	scope.Cancel()

	ran := make(chan struct{}, 1)
	scope.Go(
		func(ctx context.Context) (any, error) {
			ran <- struct{}{}
			return nil, nil
		},
		nil, nil,
	)

	select {
	case <-ran:
		t.Fatal("task must not run on a cancelled scope")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestScope_TaskSeesTimeout(t *testing.T) {
	dispatcher := newTestDispatcher(50 * time.Millisecond)
	scope := dispatcher.NewScope()

	done := make(chan error, 1)
	scope.Go(
		func(ctx context.Context) (any, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Second):
				return "too late", nil
			}
		},
		func(result any) { t.Errorf("unexpected result: %v", result) },
		func(err error) { done <- err },
	)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("timeout error was not delivered")
	}
}

func TestDispatcher_CancelAll(t *testing.T) {
	dispatcher := newTestDispatcher(time.Second)

	var started sync.WaitGroup
	var finished sync.WaitGroup
	for i := 0; i < 3; i++ {
		scope := dispatcher.NewScope()
		started.Add(1)
		finished.Add(1)
		scope.Go(
			func(ctx context.Context) (any, error) {
				started.Done()
				<-ctx.Done()
				finished.Done()
				return nil, ctx.Err()
			},
			nil, nil,
		)
	}

	started.Wait()
	require.Equal(t, 3, dispatcher.ActiveCount())

	dispatcher.CancelAll()
	finished.Wait()

	// Workers unregister as they wind down.
	deadline := time.After(time.Second)
	for dispatcher.ActiveCount() != 0 {
		select {
		case <-deadline:
			t.Fatal("dispatcher did not drain after CancelAll")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestScope_ResultsDeliveredViaPost(t *testing.T) {
	var posted int
	var mu sync.Mutex
	post := func(fn func()) {
		mu.Lock()
		posted++
		mu.Unlock()
		fn()
	}

	dispatcher := New(time.Second, post, zap.NewNop())
	scope := dispatcher.NewScope()

	done := make(chan struct{}, 1)
	scope.Go(
		func(ctx context.Context) (any, error) { return nil, nil },
		func(any) { done <- struct{}{} },
		nil,
	)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("result was not delivered")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, posted, "every delivery goes through the UI post hook")
}
