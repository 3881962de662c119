package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var (
	ErrSchedulerInit = errors.New("jobs: failed to create scheduler")
	ErrRegisterJob   = errors.New("jobs: failed to register job")
)

// SessionCleaner deletes session rows past their expiry
type SessionCleaner interface {
	CleanupExpired(ctx context.Context) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler runs the periodic housekeeping of the service
type Scheduler struct {
	inner  gocron.Scheduler
	logger Logger
}

func NewScheduler(logger Logger) (*Scheduler, error) {
	inner, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchedulerInit, err)
	}
	return &Scheduler{inner: inner, logger: logger}, nil
}

// RegisterSessionCleanup removes expired sessions every interval, starting right away.
// A run still in progress when the next one is due is skipped.
func (s *Scheduler) RegisterSessionCleanup(cleaner SessionCleaner, interval, timeout time.Duration) error {
	job, err := s.inner.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(CleanupSessions, cleaner, timeout, s.logger),
		gocron.WithName("session-cleanup"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("%w: session-cleanup: %v", ErrRegisterJob, err)
	}

	s.logger.Info("Job %s registered (id=%s, every %s)", job.Name(), job.ID(), interval)
	return nil
}

func (s *Scheduler) Start() {
	s.inner.Start()
	s.logger.Info("Scheduler started with %d jobs", len(s.inner.Jobs()))
}

// Shutdown waits for running jobs to return
func (s *Scheduler) Shutdown() error {
	return s.inner.Shutdown()
}

// CleanupSessions is one run of the session cleanup job
func CleanupSessions(cleaner SessionCleaner, timeout time.Duration, logger Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	removed, err := cleaner.CleanupExpired(ctx)
	if err != nil {
		logger.Error("session-cleanup: %v", err)
		return
	}
	if removed > 0 {
		logger.Info("session-cleanup: removed %d expired sessions", removed)
	}
}
