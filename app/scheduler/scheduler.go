package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

var _ SchedulerInterface = (*Scheduler)(nil)

// Scheduler runs full pipeline passes on a fixed interval. A single worker
// consumes the queue, so passes never overlap: the store and the generated
// site are only ever written by one run at a time. The queue holds at most
// one pending request; triggering while a run is already queued is a no-op
// at the caller's expense.
type Scheduler struct {
	runner   PipelineRunner
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	runQueue chan struct{}
}

func NewScheduler(runner PipelineRunner, interval time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		runner:   runner,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		runQueue: make(chan struct{}, 1),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.worker()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				if err := s.TriggerRun(); err != nil {
					slog.Debug("Scheduled run skipped", "error", err)
				}
			}
		}
	}()

	slog.Info("Scheduler started", "interval", s.interval.String())
}

// Stop cancels the scheduler context and waits for in-flight work. The
// queue is left open so a late TriggerRun fails cleanly instead of
// panicking on a closed channel.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

// TriggerRun requests a pipeline pass. Returns an error if one is already
// queued or the scheduler is shutting down.
func (s *Scheduler) TriggerRun() error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
	}

	select {
	case s.runQueue <- struct{}{}:
		return nil
	default:
		return fmt.Errorf("a run is already queued")
	}
}

func (s *Scheduler) worker() {
	defer s.wg.Done()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-s.runQueue:
			s.executeRun()
		}
	}
}

func (s *Scheduler) executeRun() {
	runCtx, cancel := context.WithTimeout(s.ctx, 10*time.Minute)
	defer cancel()

	started := time.Now()

	if _, err := s.runner.Run(runCtx); err != nil {
		slog.Error("Scheduled run failed", "error", err, "elapsed", time.Since(started).Round(time.Millisecond).String())
		return
	}

	slog.Debug("Scheduled run finished", "elapsed", time.Since(started).Round(time.Millisecond).String())
}
