// Package worker provides goroutine pool management.
//
// Naked goroutines are forbidden in the codebase. All concurrency must
// go through a Worker Pool with context propagation.
package worker

import (
	"context"
	"errors"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"iou-platform.io/iou/internal/pkg/logger"
)

// ErrPoolClosed is returned when submitting to a closed pool.
var ErrPoolClosed = errors.New("worker pool is closed")

// Task is a context-aware task function.
type Task func(ctx context.Context)

// Pool wraps ants.Pool with context-aware submission.
type Pool struct {
	pool *ants.Pool
	name string
}

// Pools is the Worker pool collection.
// Ingest runs the per-object analysis pipeline; Analysis runs rule
// evaluation fan-out and graph recomputation steps.
type Pools struct {
	Ingest   *Pool
	Analysis *Pool

	// serviceCtx is the service lifecycle context for detached tasks
	serviceCtx    context.Context
	serviceCancel context.CancelFunc
}

// PoolConfig contains Worker Pool configuration.
type PoolConfig struct {
	IngestPoolSize   int
	AnalysisPoolSize int
}

// DefaultPoolConfig returns default configuration.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		IngestPoolSize:   100,
		AnalysisPoolSize: 50,
	}
}

// NewPools creates Worker pool collection.
func NewPools(ctx context.Context, cfg PoolConfig) (*Pools, error) {
	// Create service lifecycle context for detached tasks
	serviceCtx, serviceCancel := context.WithCancel(ctx)

	// Unified panic recovery
	panicHandler := func(p interface{}) {
		logger.Error("Worker panic recovered",
			zap.Any("panic", p),
			zap.Stack("stack"),
		)
	}

	ingestAnts, err := ants.NewPool(cfg.IngestPoolSize,
		ants.WithPanicHandler(panicHandler),
		ants.WithNonblocking(false),
		ants.WithExpiryDuration(10*time.Second), // Purge idle workers (ants best practice)
	)
	if err != nil {
		serviceCancel()
		return nil, err
	}

	analysisAnts, err := ants.NewPool(cfg.AnalysisPoolSize,
		ants.WithPanicHandler(panicHandler),
		ants.WithNonblocking(false),
		ants.WithExpiryDuration(30*time.Second), // Analysis tasks are longer-lived
	)
	if err != nil {
		ingestAnts.Release()
		serviceCancel()
		return nil, err
	}

	return &Pools{
		Ingest:        &Pool{pool: ingestAnts, name: "ingest"},
		Analysis:      &Pool{pool: analysisAnts, name: "analysis"},
		serviceCtx:    serviceCtx,
		serviceCancel: serviceCancel,
	}, nil
}

// Submit submits a context-aware task.
// The task receives the caller's context and SHOULD check ctx.Done() at blocking points.
// If context is already cancelled, returns ctx.Err() immediately without submitting.
func (p *Pool) Submit(ctx context.Context, task Task) error {
	// Fast path: check if context is already cancelled
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	return p.pool.Submit(func() {
		// Check context again inside worker (may have been cancelled while queued)
		select {
		case <-ctx.Done():
			logger.Debug("Task skipped: context cancelled",
				zap.String("pool", p.name),
				zap.Error(ctx.Err()),
			)
			return
		default:
		}
		task(ctx)
	})
}

// SubmitDetached submits a detached background task.
// Detached tasks use the service lifecycle context instead of a request context.
// Use this for long-running background work that should survive request cancellation
// but still respect graceful shutdown.
func (p *Pools) SubmitDetached(poolName string, task Task) error {
	var pool *Pool
	switch poolName {
	case "ingest":
		pool = p.Ingest
	case "analysis":
		pool = p.Analysis
	default:
		pool = p.Ingest
	}

	return pool.pool.Submit(func() {
		// Check service context
		select {
		case <-p.serviceCtx.Done():
			logger.Debug("Detached task skipped: service shutting down",
				zap.String("pool", poolName),
			)
			return
		default:
		}
		task(p.serviceCtx)
	})
}

// Shutdown gracefully shuts down all pools with a timeout.
// Cancels service context first, then waits for running tasks (max 30s).
func (p *Pools) Shutdown() {
	// Signal all detached tasks to stop
	p.serviceCancel()

	// Release pools with timeout (ants best practice: avoid infinite wait)
	const shutdownTimeout = 30 * time.Second
	if err := p.Ingest.pool.ReleaseTimeout(shutdownTimeout); err != nil {
		logger.Warn("Ingest pool shutdown timeout", zap.Error(err))
	}
	if err := p.Analysis.pool.ReleaseTimeout(shutdownTimeout); err != nil {
		logger.Warn("Analysis pool shutdown timeout", zap.Error(err))
	}
}

// Metrics returns pool metrics for observability.
func (p *Pools) Metrics() map[string]interface{} {
	return map[string]interface{}{
		"ingest": map[string]int{
			"running": p.Ingest.pool.Running(),
			"free":    p.Ingest.pool.Free(),
			"cap":     p.Ingest.pool.Cap(),
		},
		"analysis": map[string]int{
			"running": p.Analysis.pool.Running(),
			"free":    p.Analysis.pool.Free(),
			"cap":     p.Analysis.pool.Cap(),
		},
	}
}
