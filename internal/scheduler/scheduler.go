// Package scheduler runs the periodic fetch cycle behind the watch command.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler wraps robfig/cron around a fetch cycle.
type Scheduler struct {
	cron *cron.Cron
	spec string // cron spec, e.g. "@every 6h"
	run  func(context.Context)
}

// New creates a Scheduler that fires every intervalHours hours.
func New(intervalHours int, run func(context.Context)) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLogger(cron.DefaultLogger)),
		spec: fmt.Sprintf("@every %dh", intervalHours),
		run:  run,
	}
}

// Start registers the job and starts the scheduler. Also runs one cycle
// immediately so there is no empty wait before the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] started, spec: %s", s.spec)

	go s.run(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] stopped")
}
