package benchengine

import (
	"context"
	"sync"
	"time"

	"gitlab.com/codebench-2025.net/internal/config"
	"gitlab.com/codebench-2025.net/internal/core/ports/primary"
	"gitlab.com/codebench-2025.net/internal/core/ports/secondary"
	"gitlab.com/codebench-2025.net/internal/core/services/execute"
	"gitlab.com/codebench-2025.net/internal/domain"
)

// BenchEngine drains queued comparison runs in the background. Each claimed
// run goes through the comparator and its verdict is written back to the
// repository.
type BenchEngine struct {
	cfg        *config.BenchEngineCfg
	runRepo    secondary.RunRepository
	comparator execute.IComparisonService
	logger     primary.Logger
}

func NewBenchEngine(
	cfg *config.BenchEngineCfg,
	runRepo secondary.RunRepository,
	comparator execute.IComparisonService,
	logger primary.Logger,
) *BenchEngine {
	return &BenchEngine{
		cfg:        cfg,
		runRepo:    runRepo,
		comparator: comparator,
		logger:     logger,
	}
}

// Start launches the polling loop. It returns immediately; the loop stops
// when ctx is cancelled.
func (e *BenchEngine) Start(ctx context.Context) {
	ticker := time.NewTicker(e.cfg.PollInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				e.ProcessPendingRuns(ctx)
			}
		}
	}()
}

// ProcessPendingRuns claims the current batch of pending runs and executes
// them on a small worker pool.
func (e *BenchEngine) ProcessPendingRuns(ctx context.Context) {
	pending, err := e.runRepo.GetPendingRuns(ctx, 100)
	if err != nil {
		e.logger.Error("Failed to get pending runs", "error", err)
		return
	}
	if len(pending) == 0 {
		return
	}

	runCh := make(chan *domain.Run, len(pending))
	for _, run := range pending {
		runCh <- run
	}
	close(runCh)

	var wg sync.WaitGroup
	wg.Add(e.cfg.WorkerSize)
	for i := 0; i < e.cfg.WorkerSize; i++ {
		go func() {
			defer wg.Done()
			for run := range runCh {
				e.executeRun(ctx, run)
			}
		}()
	}
	wg.Wait()

	e.logger.Info("Processed pending runs", "count", len(pending))
}

func (e *BenchEngine) executeRun(ctx context.Context, run *domain.Run) {
	if run.Kind != domain.RunKindComparison {
		e.logger.Error("Unexpected run kind in queue", "runId", run.ID, "kind", run.Kind)
		run.Status = domain.RunStatusFailed
		if err := e.runRepo.SaveRun(ctx, run); err != nil {
			e.logger.Error("Failed to mark run failed", "runId", run.ID, "error", err)
		}
		return
	}

	now := time.Now()
	run.Status = domain.RunStatusRunning
	run.StartedAt = &now
	if err := e.runRepo.SaveRun(ctx, run); err != nil {
		e.logger.Error("Failed to claim run", "runId", run.ID, "error", err)
		return
	}

	e.logger.Info("Executing comparison run", "runId", run.ID)
	run.Comparison = e.comparator.Compare(ctx, run.PythonSource, run.CSource)

	completed := time.Now()
	run.Status = domain.RunStatusCompleted
	run.CompletedAt = &completed
	if err := e.runRepo.SaveRun(ctx, run); err != nil {
		e.logger.Error("Failed to save run result", "runId", run.ID, "error", err)
	}
}
