package execute

import (
	"context"
	"fmt"
	"strings"

	"gitlab.com/codebench-2025.net/internal/config"
	"gitlab.com/codebench-2025.net/internal/core/ports/primary"
	"gitlab.com/codebench-2025.net/internal/domain"
	"gitlab.com/codebench-2025.net/internal/sandbox"
)

var _ Executor = (*CompilerExecutor)(nil)

// CompilerExecutor compiles C source with gcc and runs the produced binary.
// Compilation and execution are each bounded by the configured timeout, so
// the worst case wall time is twice the budget.
type CompilerExecutor struct {
	cfg       *config.ExecutorConfig
	workspace *sandbox.Workspace
	runner    *sandbox.Runner
	logger    primary.Logger
}

func NewCompilerExecutor(
	cfg *config.ExecutorConfig,
	workspace *sandbox.Workspace,
	runner *sandbox.Runner,
	logger primary.Logger,
) *CompilerExecutor {
	return &CompilerExecutor{
		cfg:       cfg,
		workspace: workspace,
		runner:    runner,
		logger:    logger,
	}
}

func (e *CompilerExecutor) Language() string {
	return "C"
}

// Execute compiles the source and, on a clean compile, runs the binary.
// Both the source file and the binary artifact are released independently on
// every exit path; failing to remove one does not stop removal of the other.
func (e *CompilerExecutor) Execute(ctx context.Context, source string) domain.ExecutionResult {
	if strings.TrimSpace(source) == "" {
		return domain.ExecutionResult{Stderr: "Error: No C code provided.", ExitCode: -1}
	}

	srcPath, err := e.workspace.Acquire(source, ".c")
	if err != nil {
		e.logger.Error("Failed to acquire scratch file", "error", err)
		return domain.ExecutionResult{
			Stderr:   fmt.Sprintf("Error executing C code: %v", err),
			ExitCode: -1,
		}
	}
	// The artifact path is derived from the source path, never invented,
	// so cleanup can always find it.
	binPath := strings.TrimSuffix(srcPath, ".c")
	defer e.workspace.Release(srcPath)
	defer e.workspace.Release(binPath)

	comp := e.runner.Run(ctx, []string{e.cfg.GCCPath, srcPath, "-o", binPath}, e.cfg.TimeoutSeconds)
	switch comp.State {
	case domain.RunStateTimedOut:
		return domain.ExecutionResult{Stderr: comp.Stderr, ExitCode: -1}
	case domain.RunStateToolMissing:
		return domain.ExecutionResult{
			Stderr:   "Error: GCC compiler not found. Please install GCC to compile C code.",
			ExitCode: -1,
		}
	case domain.RunStateLaunchFail:
		return domain.ExecutionResult{
			Stderr:   fmt.Sprintf("Error executing C code: %v", comp.Err),
			ExitCode: -1,
		}
	}
	if comp.ExitCode != 0 {
		// No execution happens after a failed compile; the binary was
		// never produced.
		return domain.ExecutionResult{
			Stderr:   fmt.Sprintf("Compilation error:\n%s", comp.Stderr),
			ExitCode: -1,
		}
	}

	run := e.runner.Run(ctx, []string{binPath}, e.cfg.TimeoutSeconds)
	switch run.State {
	case domain.RunStateCompleted:
		return domain.ExecutionResult{
			Stdout:         run.Stdout,
			Stderr:         run.Stderr,
			ElapsedSeconds: run.ElapsedSeconds,
			ExitCode:       run.ExitCode,
		}
	case domain.RunStateTimedOut:
		return domain.ExecutionResult{Stderr: run.Stderr, ExitCode: -1}
	default:
		return domain.ExecutionResult{
			Stderr:   fmt.Sprintf("Error executing C code: %v", run.Err),
			ExitCode: -1,
		}
	}
}
