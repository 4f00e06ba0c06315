package airport

import (
	"context"
	"time"

	"flightservice/pkg/logger"
)

type Refresher interface {
	Refresh(ctx context.Context) (int, error)
}

// Job refreshes the airport table on a fixed interval until its context ends.
type Job struct {
	refresher  Refresher
	interval   time.Duration
	runOnStart bool
	logger     logger.Logger
}

func NewJob(r Refresher, interval time.Duration, runOnStart bool, log logger.Logger) *Job {
	return &Job{
		refresher:  r,
		interval:   interval,
		runOnStart: runOnStart,
		logger:     log,
	}
}

func (j *Job) Run(ctx context.Context) {
	j.logger.Info("airport refresh job started", logger.Field{Key: "interval", Value: j.interval})

	if j.runOnStart {
		j.runOnce(ctx)
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("airport refresh job stopped")
			return
		case <-ticker.C:
			j.runOnce(ctx)
		}
	}
}

func (j *Job) runOnce(ctx context.Context) {
	start := time.Now()
	n, err := j.refresher.Refresh(ctx)
	if err != nil {
		j.logger.Error("airport refresh failed", logger.Field{Key: "err", Value: err})
		return
	}
	j.logger.Info("airport refresh finished",
		logger.Field{Key: "count", Value: n},
		logger.Field{Key: "elapsed", Value: time.Since(start)},
	)
}
