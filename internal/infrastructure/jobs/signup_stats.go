package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"bootcamp-signup.backend/pkg/logger"
)

type signupCounter interface {
	Count(ctx context.Context) (int64, error)
}

type storedSignupsGauge interface {
	SetStoredSignups(n int64)
}

// SignupStatsJob periodically publishes the number of stored signups
type SignupStatsJob struct {
	repo     signupCounter
	gauge    storedSignupsGauge
	interval time.Duration
	stop     chan struct{}
}

func NewSignupStatsJob(repo signupCounter, gauge storedSignupsGauge, interval time.Duration) *SignupStatsJob {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SignupStatsJob{
		repo:     repo,
		gauge:    gauge,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start refreshes once immediately, then on every tick until ctx is
// cancelled or Stop is called.
func (j *SignupStatsJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting signup stats job", zap.Duration("interval", j.interval))

	j.refresh(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Signup stats job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Signup stats job stopped")
			return
		case <-ticker.C:
			j.refresh(ctx)
		}
	}
}

func (j *SignupStatsJob) Stop() {
	close(j.stop)
}

func (j *SignupStatsJob) refresh(ctx context.Context) {
	count, err := j.repo.Count(ctx)
	if err != nil {
		logger.Error(ctx, "Error counting stored signups", zap.Error(err))
		return
	}
	j.gauge.SetStoredSignups(count)
}
