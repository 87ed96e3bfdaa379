// Package worker runs background jobs decoupled from the request path.
package worker

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// TriageRunner executes one triage pass for a ticket.
type TriageRunner interface {
	RunTriage(ctx context.Context, ticketID string) error
}

// TriageQueue decouples ticket creation from triage execution: creation
// enqueues the ticket id and returns immediately; worker goroutines
// consume and run the pipeline. Jobs are single-pass and never retried;
// a failed run leaves the ticket open for manual follow-up.
type TriageQueue struct {
	runner TriageRunner
	logger *zap.Logger
	jobs   chan string
	wg     sync.WaitGroup
}

// NewTriageQueue builds a queue with the given buffer size.
func NewTriageQueue(runner TriageRunner, logger *zap.Logger, buffer int) *TriageQueue {
	if buffer <= 0 {
		buffer = 64
	}
	return &TriageQueue{
		runner: runner,
		logger: logger,
		jobs:   make(chan string, buffer),
	}
}

// Start launches the worker goroutines. They run until ctx is
// cancelled; Wait blocks until in-flight jobs finish.
func (q *TriageQueue) Start(ctx context.Context, workers int) {
	if workers <= 0 {
		workers = 2
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.consume(ctx)
	}
	q.logger.Info("triage queue started", zap.Int("workers", workers), zap.Int("buffer", cap(q.jobs)))
}

// Dispatch enqueues a ticket for triage without blocking the caller.
// When the buffer is full the job is dropped and logged; the ticket
// stays open and can be re-triaged manually.
func (q *TriageQueue) Dispatch(ticketID string) {
	select {
	case q.jobs <- ticketID:
	default:
		q.logger.Error("triage queue full, dropping job", zap.String("ticket_id", ticketID))
	}
}

// Wait blocks until all workers have exited.
func (q *TriageQueue) Wait() {
	q.wg.Wait()
}

func (q *TriageQueue) consume(ctx context.Context) {
	defer q.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case ticketID := <-q.jobs:
			if err := q.runner.RunTriage(ctx, ticketID); err != nil {
				// Failure is already audited by the pipeline; the
				// ticket keeps its prior status.
				q.logger.Error("triage run failed", zap.Error(err), zap.String("ticket_id", ticketID))
			}
		}
	}
}
