// Package sandbox owns the scratch files and the child processes behind the
// language executors.
package sandbox

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"gitlab.com/codebench-2025.net/internal/core/ports/primary"
)

// Workspace hands out uniquely named scratch files for submitted source text.
// Names come from uuid, so concurrent callers never collide. A file belongs
// to the call that acquired it; release it on every exit path.
type Workspace struct {
	dir    string
	logger primary.Logger
}

// NewWorkspace creates a workspace rooted at dir. An empty dir means the
// system temp directory.
func NewWorkspace(dir string, logger primary.Logger) (*Workspace, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create workspace dir: %w", err)
	}
	return &Workspace{
		dir:    dir,
		logger: logger,
	}, nil
}

func (w *Workspace) Dir() string {
	return w.dir
}

// Acquire writes sourceText to a fresh scratch file and returns its path.
// The file is readable and writable only by the current process.
func (w *Workspace) Acquire(sourceText, suffix string) (string, error) {
	path := filepath.Join(w.dir, uuid.New().String()+suffix)
	if err := os.WriteFile(path, []byte(sourceText), 0o600); err != nil {
		return "", fmt.Errorf("failed to write scratch file: %w", err)
	}
	return path, nil
}

// Release removes the file if it is still present. Cleanup never fails the
// caller: a removal error must not mask whatever the execution itself
// produced, so it is only logged.
func (w *Workspace) Release(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		w.logger.Warn("Failed to remove scratch file", "path", path, "error", err)
	}
}
