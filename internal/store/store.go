// Package store wraps the pass command line client. It invokes pass show
// with a caller-supplied environment and validates on disk that the
// requested entry exists before spawning the subprocess.
package store

import (
	"context"

	pgherrors "github.com/systmms/pass-git-helper/internal/errors"
	"github.com/systmms/pass-git-helper/internal/logging"
	"github.com/systmms/pass-git-helper/pkg/exec"
)

// Store reads entries through the pass binary.
type Store struct {
	logger   *logging.Logger
	executor exec.CommandExecutor
}

// New creates a store using the real pass binary.
func New(logger *logging.Logger) *Store {
	return NewWithExecutor(logger, exec.DefaultExecutor())
}

// NewWithExecutor creates a store with a custom command executor.
// This is primarily used for testing.
func NewWithExecutor(logger *logging.Logger, executor exec.CommandExecutor) *Store {
	return &Store{
		logger:   logger,
		executor: executor,
	}
}

// Show returns the raw decrypted content of the named entry. The given
// environment becomes the subprocess environment verbatim, so the caller
// controls PASSWORD_STORE_DIR and friends; nil keeps the ambient one.
func (s *Store) Show(ctx context.Context, target string, env []string) ([]byte, error) {
	s.logger.Debug("Requesting entry %q from pass", target)

	stdout, stderr, err := s.executor.Execute(ctx, env, "pass", "show", target)
	if err != nil {
		return nil, pgherrors.PassError(target, err, string(stderr))
	}
	return stdout, nil
}
