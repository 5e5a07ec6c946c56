// Package scheduler runs jobs on a cron schedule in a fixed timezone.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"famgo/mogoherald/logger"
	"famgo/mogoherald/pkg/errors"
)

// Job is a named unit of scheduled work
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Scheduler wraps a cron runner. Job panics are recovered and logged so a
// single bad run never takes the process down.
type Scheduler struct {
	cron *cron.Cron
	log  *logger.Logger
}

// New creates a scheduler evaluating cron expressions in loc
func New(loc *time.Location) *Scheduler {
	log := logger.ForComponent("scheduler")
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.Recover(cron.DefaultLogger)),
		),
		log: log,
	}
}

// Schedule registers a job on a standard 5-field cron expression
func (s *Scheduler) Schedule(spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		started := time.Now()
		s.log.Info().Str("job", job.Name).Msg("job started")
		if err := job.Run(context.Background()); err != nil {
			s.log.Error().Err(err).Str("job", job.Name).Msg("job failed")
			return
		}
		s.log.Info().
			Str("job", job.Name).
			Dur("elapsed", time.Since(started)).
			Msg("job finished")
	})
	if err != nil {
		return errors.NewConfiguration("invalid cron expression: "+spec, err)
	}
	return nil
}

// Start begins running scheduled jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for any running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
