package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liandro13/method-passion-site/pkg/logger"
)

type fakeCleaner struct {
	calls   atomic.Int32
	removed int64
	err     error
}

func (f *fakeCleaner) CleanupExpired(ctx context.Context) (int64, error) {
	f.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("cleanup must run with a deadline")
	}
	return f.removed, f.err
}

func TestCleanupSessions_CallsCleaner(t *testing.T) {
	cleaner := &fakeCleaner{removed: 3}

	CleanupSessions(cleaner, time.Second, logger.NewNop())

	assert.Equal(t, int32(1), cleaner.calls.Load())
}

func TestCleanupSessions_ErrorIsSwallowed(t *testing.T) {
	cleaner := &fakeCleaner{err: errors.New("db down")}

	assert.NotPanics(t, func() {
		CleanupSessions(cleaner, time.Second, logger.NewNop())
	})
	assert.Equal(t, int32(1), cleaner.calls.Load())
}

func TestScheduler_RunsCleanupImmediately(t *testing.T) {
	s, err := NewScheduler(logger.NewNop())
	require.NoError(t, err)

	cleaner := &fakeCleaner{}
	require.NoError(t, s.RegisterSessionCleanup(cleaner, time.Hour, time.Second))

	s.Start()
	defer func() {
		require.NoError(t, s.Shutdown())
	}()

	assert.Eventually(t, func() bool {
		return cleaner.calls.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)
}
