package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedule_RejectsInvalidExpression(t *testing.T) {
	s := New(time.UTC)
	err := s.Schedule("not a cron spec", Job{Name: "noop", Run: func(context.Context) error { return nil }})
	assert.Error(t, err)
}

func TestSchedule_AcceptsStandardExpression(t *testing.T) {
	s := New(time.UTC)
	err := s.Schedule("0 9 * * *", Job{Name: "daily", Run: func(context.Context) error { return nil }})
	assert.NoError(t, err)
}

func TestScheduler_RunsJob(t *testing.T) {
	s := New(time.UTC)
	var runs atomic.Int32
	err := s.Schedule("@every 100ms", Job{
		Name: "tick",
		Run: func(context.Context) error {
			runs.Add(1)
			return nil
		},
	})
	assert.NoError(t, err)

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, 2*time.Second, 50*time.Millisecond)
}
