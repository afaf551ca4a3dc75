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

var _ Executor = (*InterpreterExecutor)(nil)

// InterpreterExecutor runs Python source through the configured interpreter.
// The binary that executes the scratch file is always the one from the
// injected config, so the executor cannot drift from the interpreter it
// claims to use.
type InterpreterExecutor struct {
	cfg       *config.ExecutorConfig
	workspace *sandbox.Workspace
	runner    *sandbox.Runner
	logger    primary.Logger
}

func NewInterpreterExecutor(
	cfg *config.ExecutorConfig,
	workspace *sandbox.Workspace,
	runner *sandbox.Runner,
	logger primary.Logger,
) *InterpreterExecutor {
	return &InterpreterExecutor{
		cfg:       cfg,
		workspace: workspace,
		runner:    runner,
		logger:    logger,
	}
}

func (e *InterpreterExecutor) Language() string {
	return "Python"
}

// Execute writes the source to a scratch file, runs the interpreter on it
// and returns the captured outcome. The scratch file is released on every
// exit path.
func (e *InterpreterExecutor) Execute(ctx context.Context, source string) domain.ExecutionResult {
	if strings.TrimSpace(source) == "" {
		return domain.ExecutionResult{Stderr: "Error: No Python code provided.", ExitCode: -1}
	}

	path, err := e.workspace.Acquire(source, ".py")
	if err != nil {
		e.logger.Error("Failed to acquire scratch file", "error", err)
		return domain.ExecutionResult{
			Stderr:   fmt.Sprintf("Error executing Python code: %v", err),
			ExitCode: -1,
		}
	}
	defer e.workspace.Release(path)

	out := e.runner.Run(ctx, []string{e.cfg.PythonPath, path}, e.cfg.TimeoutSeconds)
	return e.resultFrom(out)
}

func (e *InterpreterExecutor) resultFrom(out sandbox.Output) domain.ExecutionResult {
	switch out.State {
	case domain.RunStateCompleted:
		return domain.ExecutionResult{
			Stdout:         out.Stdout,
			Stderr:         out.Stderr,
			ElapsedSeconds: out.ElapsedSeconds,
			ExitCode:       out.ExitCode,
		}
	case domain.RunStateTimedOut:
		return domain.ExecutionResult{Stderr: out.Stderr, ExitCode: -1}
	case domain.RunStateToolMissing:
		return domain.ExecutionResult{
			Stderr:   fmt.Sprintf("Error: %s not found. Please install it to run Python code.", e.cfg.PythonPath),
			ExitCode: -1,
		}
	default:
		return domain.ExecutionResult{
			Stderr:   fmt.Sprintf("Error executing Python code: %v", out.Err),
			ExitCode: -1,
		}
	}
}
