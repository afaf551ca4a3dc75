package domain

// RunState classifies how a spawned process terminated.
type RunState string

const (
	// RunStateCompleted means the process ran to completion. The exit code is
	// recorded but not inspected here: a non-zero exit is still Completed.
	RunStateCompleted   RunState = "COMPLETED"
	RunStateTimedOut    RunState = "TIMED_OUT"
	RunStateToolMissing RunState = "TOOL_MISSING"
	RunStateLaunchFail  RunState = "LAUNCH_FAILED"
)

// ExecutionResult is the outcome of a single execution attempt. It is built
// once and never mutated afterwards.
//
// ElapsedSeconds is 0.0 whenever execution did not actually happen (empty
// input, compilation failure, timeout, missing tool). That zero is a
// "not applicable" sentinel, not a measured duration.
type ExecutionResult struct {
	Stdout         string  `json:"output"`
	Stderr         string  `json:"error"`
	ElapsedSeconds float64 `json:"time"`
	// ExitCode is the raw process exit code, -1 when no process ran.
	// Success() deliberately ignores it; callers that want a stricter
	// predicate can combine both signals.
	ExitCode int `json:"exit_code"`
}

// Success reports whether the execution is considered successful. The
// predicate is stderr-emptiness, not the exit code: a program that exits
// non-zero without writing to stderr still counts as successful. This
// matches the historical behavior consumers depend on.
func (r ExecutionResult) Success() bool {
	return r.Stderr == ""
}
