package aggregate_feed_usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"newsdeck/domain"
	"newsdeck/utils/logger"
)

// WatchRequest is the input of a refresh stream.
type WatchRequest struct {
	Sources         []domain.FeedSource
	Keywords        []string
	RefreshInterval time.Duration
}

type cycleResult struct {
	generation uint64
	items      []*domain.NewsItem
	err        error
}

// Watcher is one consumer's refresh stream. It publishes a loading result and
// then the cycle result immediately, and again RefreshInterval after each
// cycle completes. Update restarts the cycle at once. The results channel is
// closed when the watch context is done.
type Watcher struct {
	usecase *AggregateFeedUsecase
	out     chan domain.AggregationResult
	signal  chan struct{}

	mu       sync.Mutex
	pending  *WatchRequest
	inflight sync.WaitGroup

	// generation is owned by the run goroutine.
	generation uint64
	published  uint64
}

// Watch starts a refresh stream for req and returns its results channel.
func (u *AggregateFeedUsecase) Watch(ctx context.Context, req WatchRequest) <-chan domain.AggregationResult {
	return u.NewWatcher(ctx, req).Results()
}

// NewWatcher starts a refresh stream bound to ctx.
func (u *AggregateFeedUsecase) NewWatcher(ctx context.Context, req WatchRequest) *Watcher {
	req.RefreshInterval = u.ClampInterval(req.RefreshInterval)
	w := &Watcher{
		usecase: u,
		out:     make(chan domain.AggregationResult),
		signal:  make(chan struct{}, 1),
	}
	go w.run(ctx, req)
	return w
}

func (w *Watcher) Results() <-chan domain.AggregationResult {
	return w.out
}

// Update replaces the sources and keywords and restarts the cycle,
// cancelling any refresh in flight. Only the latest update is kept.
func (w *Watcher) Update(sources []domain.FeedSource, keywords []string) {
	w.mu.Lock()
	w.pending = &WatchRequest{
		Sources:  append([]domain.FeedSource(nil), sources...),
		Keywords: append([]string(nil), keywords...),
	}
	w.mu.Unlock()

	select {
	case w.signal <- struct{}{}:
	default:
	}
}

func (w *Watcher) takePending(current WatchRequest) WatchRequest {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending == nil {
		return current
	}
	next := *w.pending
	next.RefreshInterval = current.RefreshInterval
	w.pending = nil
	return next
}

func (w *Watcher) run(ctx context.Context, req WatchRequest) {
	defer close(w.out)
	defer w.inflight.Wait()

	var items []*domain.NewsItem
	for {
		w.generation++
		gen := w.generation

		if !w.emit(ctx, domain.AggregationResult{Items: items, Loading: true, Generation: gen}) {
			return
		}

		cycleCtx, cancel := context.WithCancel(ctx)
		done := make(chan cycleResult, 1)
		w.inflight.Add(1)
		go func(req WatchRequest) {
			defer w.inflight.Done()
			got, err := w.usecase.Aggregate(cycleCtx, req.Sources, req.Keywords)
			done <- cycleResult{generation: gen, items: got, err: err}
		}(req)

		restarted := false
		select {
		case <-ctx.Done():
			cancel()
			return
		case <-w.signal:
			cancel()
			req = w.takePending(req)
			restarted = true
		case res := <-done:
			cancel()
			if !w.publish(ctx, res, &items) {
				return
			}
		}
		if restarted {
			continue
		}

		timer := time.NewTimer(req.RefreshInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-w.signal:
			timer.Stop()
			req = w.takePending(req)
		case <-timer.C:
		}
	}
}

// publish emits res unless a newer generation was already published. A failed
// cycle keeps the previous items and carries the aggregate error message.
func (w *Watcher) publish(ctx context.Context, res cycleResult, items *[]*domain.NewsItem) bool {
	if res.generation <= w.published {
		return true
	}

	result := domain.AggregationResult{Generation: res.generation, UpdatedAt: time.Now().UTC()}
	if res.err != nil {
		if errors.Is(res.err, context.Canceled) && ctx.Err() != nil {
			return false
		}
		logger.FromContext(ctx).ErrorContext(ctx, "aggregation cycle failed", "generation", res.generation, "error", res.err)
		msg := AggregateErrorMessage
		result.Error = &msg
		result.Items = *items
	} else {
		*items = res.items
		result.Items = res.items
	}

	w.published = res.generation
	return w.emit(ctx, result)
}

func (w *Watcher) emit(ctx context.Context, result domain.AggregationResult) bool {
	if result.Items == nil {
		result.Items = []*domain.NewsItem{}
	}
	select {
	case w.out <- result:
		return true
	case <-ctx.Done():
		return false
	}
}
