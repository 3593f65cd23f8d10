package workers

import (
	"chat-sync/contract"
	"chat-sync/errors"
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

// RestartHook is told about every crash, before the worker is restarted.
// attempt starts at 1 for the first crash of a worker.
type RestartHook func(worker string, attempt int, err error)

// Supervisor keeps the session workers alive. A worker that panics or
// returns an error is restarted after restartInterval; one that returns
// nil is done for good. Canceling the parent context stops everything.
type Supervisor struct {
	Cancel          context.CancelFunc
	wg              sync.WaitGroup
	log             *slog.Logger
	workers         []contract.Worker
	restartInterval time.Duration
	onRestart       RestartHook
}

func NewSupervisor(log *slog.Logger, restartInterval time.Duration) *Supervisor {
	return &Supervisor{log: log, restartInterval: restartInterval}
}

// OnRestart installs hook. It must be called before Run.
func (s *Supervisor) OnRestart(hook RestartHook) *Supervisor {
	s.onRestart = hook
	return s
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Run starts every added worker and blocks until all of them are done.
// Stop only cancels the workers of this supervisor, not the parent.
func (s *Supervisor) Run(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.Cancel = cancel
	defer cancel()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.supervise(ctx, worker)
	}()
}

func (s *Supervisor) supervise(ctx context.Context, worker contract.Worker) {
	name := contract.GetWorkerName(worker)
	s.log.Info("Worker started", "name", name)

	for attempt := 1; ; attempt++ {
		err := s.runGuarded(ctx, name, worker)
		switch {
		case err == nil:
			s.log.Info("Worker finished", "name", name)
			return
		case ctx.Err() != nil:
			s.log.Info("Worker stopped", "name", name)
			return
		}

		s.log.Warn("Worker crashed, restarting", "name", name, "attempt", attempt, "error", err)
		if s.onRestart != nil {
			s.onRestart(name, attempt, err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.restartInterval):
		}
	}
}

// runGuarded turns a panic of the worker into ErrWorkerPanic.
func (s *Supervisor) runGuarded(ctx context.Context, name string, worker contract.Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Debug("Worker panic", "name", name, "stack", string(debug.Stack()))
			err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
		}
	}()
	return worker.Run(ctx)
}

func (s *Supervisor) Stop() {
	if s.Cancel != nil {
		s.Cancel()
	}
}
