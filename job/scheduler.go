package job

import (
	"context"
	"sync"
	"time"

	"newsdeck/utils/logger"
	"newsdeck/utils/metrics"
)

// Job defines a periodic background job.
type Job struct {
	Name     string
	Interval time.Duration
	Timeout  time.Duration
	Fn       func(ctx context.Context) error
}

// JobScheduler runs periodic jobs until its context is cancelled.
type JobScheduler struct {
	jobs []Job
	wg   sync.WaitGroup
}

func NewJobScheduler() *JobScheduler {
	return &JobScheduler{}
}

// Add registers a job. Jobs with a non-positive interval are ignored.
func (s *JobScheduler) Add(j Job) {
	if j.Interval <= 0 {
		logger.Logger.Info("job disabled", "job", j.Name)
		return
	}
	s.jobs = append(s.jobs, j)
}

// Start launches every registered job. Each runs immediately, then every
// Interval.
func (s *JobScheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.runJob(ctx, j)
	}
}

func (s *JobScheduler) runJob(ctx context.Context, j Job) {
	defer s.wg.Done()

	s.executeJob(ctx, j)

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Logger.InfoContext(ctx, "job stopping", "job", j.Name)
			return
		case <-ticker.C:
			s.executeJob(ctx, j)
		}
	}
}

func (s *JobScheduler) executeJob(ctx context.Context, j Job) {
	if ctx.Err() != nil {
		return
	}

	jobCtx := ctx
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		jobCtx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}

	start := time.Now()
	if err := j.Fn(jobCtx); err != nil {
		metrics.JobRunsTotal.WithLabelValues(j.Name, metrics.StatusError).Inc()
		logger.Logger.ErrorContext(ctx, "job failed", "job", j.Name, "error", err)
		return
	}
	metrics.JobRunsTotal.WithLabelValues(j.Name, metrics.StatusSuccess).Inc()
	logger.Logger.DebugContext(ctx, "job completed", "job", j.Name, "duration_ms", time.Since(start).Milliseconds())
}

// Shutdown blocks until all running jobs return.
func (s *JobScheduler) Shutdown() {
	s.wg.Wait()
}
