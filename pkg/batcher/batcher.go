// Package batcher buffers items and hands them to a flush callback in
// size- or time-bounded batches, with flushes rate limited.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once the batcher has been stopped.
var ErrStopped = errors.New("batcher stopped")

// Options controls when a batch is flushed.
type Options struct {
	// Size is the number of items that triggers a flush.
	Size int
	// Interval flushes a partial batch after this much time.
	Interval time.Duration
	// RPS caps flushes per second.
	RPS int
}

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flush   func(context.Context, []T) error
	itemsCh chan T
	opts    Options
	rl      ratelimit.Limiter
	logger  *zap.Logger

	mu      sync.Mutex
	errs    []error
	flushed int

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher. Non-positive options fall back to a batch of one
// item, a one second interval and an unlimited flush rate.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, opts Options) *Batcher[T] {
	if opts.Size < 1 {
		opts.Size = 1
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	rl := ratelimit.NewUnlimited()
	if opts.RPS > 0 {
		rl = ratelimit.New(opts.RPS)
	}

	return &Batcher[T]{
		logger:  logger,
		flush:   flush,
		itemsCh: make(chan T, opts.Size*2),
		opts:    opts,
		rl:      rl,
		stop:    make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes whatever is buffered, waits for the loop to exit and returns
// every flush error seen since Start.
func (b *Batcher[T]) Stop() error {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()

	b.mu.Lock()
	defer b.mu.Unlock()
	return errors.Join(b.errs...)
}

// Flushed reports how many items were handed to the callback successfully.
func (b *Batcher[T]) Flushed() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flushed
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.opts.Interval)
	defer ticker.Stop()

	buf := make([]T, 0, b.opts.Size)

	flush := func() {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		err := b.flush(ctx, buf)

		b.mu.Lock()
		if err != nil {
			b.errs = append(b.errs, err)
		} else {
			b.flushed += len(buf)
		}
		b.mu.Unlock()

		if err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = make([]T, 0, b.opts.Size)
	}

	drain := func() {
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.opts.Size {
					flush()
				}
			default:
				flush()
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return

		case <-b.stop:
			drain()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.opts.Size {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}
