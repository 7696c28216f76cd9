package job

import (
	"context"
	"time"

	"newsdeck/domain"
	"newsdeck/utils/logger"
)

// OsintRefresher refreshes the OSINT cache.
type OsintRefresher interface {
	Refresh(ctx context.Context) (*domain.OsintFeed, error)
}

// OsintWarmJob keeps the OSINT cache populated so /api/osint rarely waits on
// the mirrors. interval <= 0 disables it.
func OsintWarmJob(refresher OsintRefresher, interval, timeout time.Duration) Job {
	return Job{
		Name:     "osint-warm",
		Interval: interval,
		Timeout:  timeout,
		Fn: func(ctx context.Context) error {
			feed, err := refresher.Refresh(ctx)
			if err != nil {
				return err
			}
			logger.Logger.InfoContext(ctx, "osint cache warmed", "items", len(feed.Items), "origin", string(feed.Origin))
			return nil
		},
	}
}
