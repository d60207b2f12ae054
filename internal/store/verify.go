package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	pgherrors "github.com/systmms/pass-git-helper/internal/errors"
)

// Sentinel errors for the two ways on-disk validation can fail. Callers
// can distinguish them with errors.Is.
var (
	ErrEntryNotFound = errors.New("no password store entry")
	ErrEntryNotFile  = errors.New("password store entry is not a file")
)

const storeDirVar = "PASSWORD_STORE_DIR"

// DefaultDir returns the store location pass assumes when
// PASSWORD_STORE_DIR is unset.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".password-store"), nil
}

// DirFromEnv returns the store directory the given subprocess environment
// would make pass use: the PASSWORD_STORE_DIR value when set and
// non-empty, the default location otherwise.
func DirFromEnv(env []string) (string, error) {
	for _, entry := range env {
		if value, ok := strings.CutPrefix(entry, storeDirVar+"="); ok && value != "" {
			return value, nil
		}
	}
	return DefaultDir()
}

// VerifyEntry checks that target exists as a regular .gpg file below the
// store directory. Running this before pass produces clearer errors than
// the pass CLI output and avoids a pointless gpg invocation.
func (s *Store) VerifyEntry(dir, target string) error {
	path := filepath.Join(dir, target+".gpg")
	s.logger.Debug("Verifying entry file %s", path)

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return pgherrors.UserError{
			Message:    fmt.Sprintf("Unable to retrieve '%s' from pass", target),
			Details:    fmt.Sprintf("no entry file at %s", path),
			Suggestion: "Check the entry name with 'pass ls' and the password_store_dir of the matched section",
			Err:        ErrEntryNotFound,
		}
	case err != nil:
		return pgherrors.UserError{
			Message: fmt.Sprintf("Unable to retrieve '%s' from pass", target),
			Details: fmt.Sprintf("cannot inspect entry file %s: %v", path, err),
			Err:     err,
		}
	case !info.Mode().IsRegular():
		return pgherrors.UserError{
			Message:    fmt.Sprintf("Unable to retrieve '%s' from pass", target),
			Details:    fmt.Sprintf("%s exists but is not a regular file", path),
			Suggestion: "The target probably names a folder of entries, not an entry",
			Err:        ErrEntryNotFile,
		}
	}
	return nil
}
