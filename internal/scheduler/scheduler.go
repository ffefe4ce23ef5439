package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/dtroode/mermory-server/internal/logger"
)

// Pruner drops study sessions that have been idle for longer than ttl.
type Pruner interface {
	PruneIdle(ttl time.Duration) int
}

// Scheduler runs periodic housekeeping jobs.
type Scheduler struct {
	scheduler *gocron.Scheduler
	logger    *logger.Logger
}

// New creates a scheduler that prunes idle sessions every interval.
func New(pruner Pruner, interval, ttl time.Duration, logger *logger.Logger) (*Scheduler, error) {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	_, err := s.Every(interval).Do(func() {
		n := pruner.PruneIdle(ttl)
		logger.Debug("idle session prune finished", "pruned", n)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule session pruning: %w", err)
	}

	return &Scheduler{scheduler: s, logger: logger}, nil
}

// Start begins running jobs in the background.
func (s *Scheduler) Start() {
	s.scheduler.StartAsync()
	s.logger.Info("scheduler started", "jobs", len(s.scheduler.Jobs()))
}

// Stop terminates all jobs.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}
