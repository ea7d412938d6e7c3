package dashboard

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/domain"
)

// Controller drives one mounted dashboard.
type Controller struct {
	fetcher Fetcher

	mu        sync.Mutex
	stats     FetchState[domain.StatSummary]
	run       FetchState[domain.OrchestrationRun]
	mounted   bool
	unmounted bool
	cancel    context.CancelFunc
	observers []func(View)

	done     chan struct{}
	doneOnce sync.Once
}

// NewController creates an unmounted controller.
func NewController(fetcher Fetcher) *Controller {
	return &Controller{
		fetcher: fetcher,
		done:    make(chan struct{}),
	}
}

// Subscribe registers fn to receive the view after every state change.
// fn runs with the controller lock held and must not call back into the
// controller.
func (c *Controller) Subscribe(fn func(View)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// Mount starts the fetch sequence. Only the first call has an effect, and
// a controller that was unmounted cannot be mounted again.
func (c *Controller) Mount(ctx context.Context) {
	c.mu.Lock()
	if c.mounted || c.unmounted {
		c.mu.Unlock()
		return
	}
	c.mounted = true
	ctx, c.cancel = context.WithCancel(ctx)
	c.mu.Unlock()

	go c.sequence(ctx)
}

// Unmount discards every result that has not been published yet and
// cancels the in-flight fetch.
func (c *Controller) Unmount() {
	c.mu.Lock()
	if c.unmounted {
		c.mu.Unlock()
		return
	}
	c.unmounted = true
	cancel, mounted := c.cancel, c.mounted
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if !mounted {
		c.finish()
	}
}

// Done is closed once the controller will issue no further fetches:
// both resources resolved, stats failed, or the controller was unmounted.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// View returns the current state and the values derived from it.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return NewView(c.stats, c.run)
}

type result[T any] struct {
	data *T
	err  error
}

// spawn runs fn on its own goroutine and delivers the outcome on the
// returned channel. The channel is buffered so an abandoned fetch does not
// leak its goroutine.
func spawn[T any](ctx context.Context, fn func(context.Context) (*T, error)) <-chan result[T] {
	ch := make(chan result[T], 1)
	go func() {
		data, err := fn(ctx)
		ch <- result[T]{data: data, err: err}
	}()
	return ch
}

func (c *Controller) sequence(ctx context.Context) {
	defer c.finish()

	var stats result[domain.StatSummary]
	select {
	case stats = <-spawn(ctx, c.fetcher.FetchStats):
	case <-ctx.Done():
		return
	}
	if ctx.Err() != nil || !c.publishStats(stats) {
		return
	}

	runID := stats.data.ActiveRunID
	var run result[domain.OrchestrationRun]
	select {
	case run = <-spawn(ctx, func(ctx context.Context) (*domain.OrchestrationRun, error) {
		return c.fetcher.FetchRun(ctx, runID)
	}):
	case <-ctx.Done():
		return
	}
	// A fetch that lost the race with cancellation is dropped.
	if ctx.Err() != nil {
		return
	}
	c.publishRun(run)
}

// publishStats records the stats outcome and reports whether the run
// fetch may start.
func (c *Controller) publishStats(res result[domain.StatSummary]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unmounted {
		return false
	}

	if res.err != nil || res.data == nil {
		msg := errorMessage(res.err, MsgStatsFailed)
		log.Warn().Err(res.err).Str("message", msg).Msg("stats fetch failed")
		c.stats = failed[domain.StatSummary](msg)
		c.notifyLocked()
		return false
	}

	c.stats = succeeded(res.data)
	c.notifyLocked()
	return true
}

func (c *Controller) publishRun(res result[domain.OrchestrationRun]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unmounted {
		return
	}

	if res.err != nil || res.data == nil {
		msg := errorMessage(res.err, MsgRunFailed)
		log.Warn().Err(res.err).Str("message", msg).Msg("run fetch failed")
		c.run = failed[domain.OrchestrationRun](msg)
		c.notifyLocked()
		return
	}

	c.run = succeeded(res.data)
	c.notifyLocked()
}

func (c *Controller) notifyLocked() {
	if len(c.observers) == 0 {
		return
	}
	v := NewView(c.stats, c.run)
	for _, fn := range c.observers {
		fn(v)
	}
}

func (c *Controller) finish() {
	c.doneOnce.Do(func() { close(c.done) })
}
