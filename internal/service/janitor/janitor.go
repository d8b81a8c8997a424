// Package janitor provides a scheduled job removing expired decode history.
package janitor

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Pruner is satisfied by decoder.Processor.
type Pruner interface {
	Prune(ctx context.Context) (int64, error)
}

// Janitor runs Pruner on a cron schedule.
type Janitor struct {
	cron    *cron.Cron
	pruner  Pruner
	timeout time.Duration
}

// NewJanitor validates the schedule and registers the prune job.
func NewJanitor(pruner Pruner, schedule string) (*Janitor, error) {
	j := &Janitor{
		cron:    cron.New(),
		pruner:  pruner,
		timeout: 30 * time.Second,
	}
	if _, err := j.cron.AddFunc(schedule, j.RunOnce); err != nil {
		return nil, err
	}
	return j, nil
}

// RunOnce prunes expired history once.
func (j *Janitor) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	pruned, err := j.pruner.Prune(ctx)
	if err != nil {
		log.Println("Janitor:", err)
		return
	}
	log.Println("Janitor: pruned", pruned, "history records")
}

// Start starts the scheduler in its own goroutine and stops it once ctx is done.
func (j *Janitor) Start(ctx context.Context) {
	j.cron.Start()
	go func() {
		<-ctx.Done()
		<-j.cron.Stop().Done()
		log.Println("Janitor stopped")
	}()
}
