package worker

import (
	"context"
	"sync"
	"time"

	"github.com/sproutly/sproutly/internal/logger"
)

// Job is a unit of background work.
type Job interface {
	Run(context.Context) error
	Name() string
}

// Pool runs jobs from a bounded queue on a fixed set of goroutines.
type Pool struct {
	jobs    chan Job
	wg      sync.WaitGroup
	workers int
	cancel  context.CancelFunc
	log     *logger.Logger
}

// NewPool creates a pool with the given worker count and queue size.
func NewPool(workers, queueSize int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 16
	}
	return &Pool{
		jobs:    make(chan Job, queueSize),
		workers: workers,
		log:     logger.Default().WithPrefix("worker-pool"),
	}
}

// Start launches the workers. They run until the context is cancelled or the
// pool is stopped.
func (p *Pool) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.log.Info("starting %d workers", p.workers)

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run(ctx, i+1)
	}
}

func (p *Pool) run(ctx context.Context, id int) {
	defer p.wg.Done()
	log := p.log.WithField("worker_id", id)
	log.Debug("worker started")

	for {
		select {
		case <-ctx.Done():
			log.Debug("worker shutting down")
			return
		case job := <-p.jobs:
			if job == nil {
				log.Debug("worker shutting down (queue closed)")
				return
			}
			jobLog := log.WithField("job", job.Name())
			start := time.Now()
			if err := job.Run(logger.NewContext(ctx, jobLog)); err != nil {
				jobLog.Error("job failed after %v: %v", time.Since(start), err)
			} else {
				jobLog.Info("job completed in %v", time.Since(start))
			}
		}
	}
}

// Stop cancels running jobs, drains the queue, and waits for workers.
func (p *Pool) Stop() {
	p.log.Info("stopping worker pool")
	if p.cancel != nil {
		p.cancel()
	}
	close(p.jobs)
	p.wg.Wait()
	p.log.Info("worker pool stopped")
}

// Submit queues a job for execution.
func (p *Pool) Submit(job Job) {
	p.log.Debug("submitting job: %s", job.Name())
	p.jobs <- job
}

// QueueSize reports the number of jobs waiting in the queue.
func (p *Pool) QueueSize() int {
	return len(p.jobs)
}
