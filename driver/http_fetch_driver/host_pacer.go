package http_fetch_driver

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// hostPacer keeps requests to one host at least interval apart. A zero
// interval never blocks.
type hostPacer struct {
	interval time.Duration

	mu     sync.Mutex
	byHost map[string]*rate.Limiter
}

func newHostPacer(interval time.Duration) *hostPacer {
	return &hostPacer{interval: interval, byHost: make(map[string]*rate.Limiter)}
}

func (p *hostPacer) wait(ctx context.Context, host string) error {
	if p == nil || p.interval <= 0 {
		return ctx.Err()
	}
	return p.limiterFor(host).Wait(ctx)
}

func (p *hostPacer) limiterFor(host string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	l, ok := p.byHost[host]
	if !ok {
		l = rate.NewLimiter(rate.Every(p.interval), 1)
		p.byHost[host] = l
	}
	return l
}
