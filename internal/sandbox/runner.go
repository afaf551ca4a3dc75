package sandbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"time"

	"gitlab.com/codebench-2025.net/internal/core/ports/primary"
	"gitlab.com/codebench-2025.net/internal/domain"
)

// Output is what a single process invocation produced.
//
// ElapsedSeconds is 0.0 for every state except Completed. On a timeout the
// time already consumed is discarded together with the captured streams;
// consumers rely on that convention.
type Output struct {
	Stdout         string
	Stderr         string
	ElapsedSeconds float64
	// ExitCode is -1 when the process never ran
	ExitCode int
	State    domain.RunState
	// Err carries launch-time detail for ToolMissing/LaunchFailed
	Err error
}

// Runner spawns external programs with a wall-clock budget. It never touches
// the workspace; callers pass fully resolved argument vectors and there is no
// shell interpretation in between.
type Runner struct {
	logger primary.Logger
}

func NewRunner(logger primary.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes argv with the given budget and classifies the terminal state.
// A non-zero exit code is still Completed; the exit code is recorded, not
// interpreted. The process is killed once the budget is exceeded.
func (r *Runner) Run(ctx context.Context, argv []string, timeoutSec int) Output {
	out := Output{ExitCode: -1, State: domain.RunStateLaunchFail}
	if len(argv) == 0 {
		out.Err = errors.New("empty command line")
		return out
	}
	if timeoutSec <= 0 {
		out.Err = fmt.Errorf("invalid timeout %d", timeoutSec)
		return out
	}

	runCtx, cancel := context.WithTimeout(ctx, time.Duration(timeoutSec)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Cancel = func() error {
		return cmd.Process.Kill()
	}

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start).Seconds()

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		// Whatever the process wrote before the kill is dropped and the
		// elapsed time is reported as zero. Inherited behavior, kept for
		// compatibility with existing consumers.
		r.logger.Debug("Process killed by wall-clock budget", "command", argv[0], "timeoutSec", timeoutSec)
		out.State = domain.RunStateTimedOut
		out.Stderr = fmt.Sprintf("Error: Code execution timed out after %d seconds.", timeoutSec)
		return out
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		out.State = domain.RunStateCompleted
		out.Stdout = stdout.String()
		out.Stderr = stderr.String()
		out.ElapsedSeconds = elapsed
		out.ExitCode = cmd.ProcessState.ExitCode()
	case errors.As(err, &exitErr):
		out.State = domain.RunStateCompleted
		out.Stdout = stdout.String()
		out.Stderr = stderr.String()
		out.ElapsedSeconds = elapsed
		out.ExitCode = exitErr.ExitCode()
	case errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist):
		out.State = domain.RunStateToolMissing
		out.Err = err
	default:
		out.State = domain.RunStateLaunchFail
		out.Err = err
	}
	return out
}
