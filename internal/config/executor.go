package config

import (
	"os"
	"strconv"
)

// ExecutorConfig carries everything the language executors need. It is built
// once at startup and injected; the executors never read process-wide state
// themselves.
type ExecutorConfig struct {
	// TimeoutSeconds bounds each phase (compilation and execution are bounded
	// separately, so a compiled run may take up to twice this budget).
	TimeoutSeconds int
	PythonPath     string
	GCCPath        string
	// WorkDir is where transient source files and binaries live. Empty means
	// the system temp dir.
	WorkDir string
}

func NewExecutorConfig() *ExecutorConfig {
	timeoutSec := os.Getenv("EXECUTOR_TIMEOUT_SEC")
	varInt, err := strconv.Atoi(timeoutSec)
	if err != nil || varInt <= 0 {
		varInt = 10
	}
	pythonPath := os.Getenv("PYTHON_PATH")
	if pythonPath == "" {
		pythonPath = "python3"
	}
	gccPath := os.Getenv("GCC_PATH")
	if gccPath == "" {
		gccPath = "gcc"
	}
	return &ExecutorConfig{
		TimeoutSeconds: varInt,
		PythonPath:     pythonPath,
		GCCPath:        gccPath,
		WorkDir:        os.Getenv("EXECUTOR_WORK_DIR"),
	}
}
