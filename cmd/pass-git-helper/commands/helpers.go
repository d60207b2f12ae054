package commands

import (
	"errors"
	"os"

	"github.com/systmms/pass-git-helper/internal/config"
)

// SkipEnvVar disables all processing when present in the environment,
// regardless of its value. Callers use it to bypass this helper
// conditionally, e.g. inside automation that brings its own credentials.
const SkipEnvVar = "PASS_GIT_HELPER_SKIP"

// ErrSkipped is returned when the skip variable is set. The process must
// exit unsuccessfully without producing any output, so main treats this
// error as silent.
var ErrSkipped = errors.New("processing skipped by request")

// checkSkip enforces the skip variable before any input is consumed.
func checkSkip(cfg *config.Config) error {
	if _, ok := os.LookupEnv(SkipEnvVar); !ok {
		return nil
	}
	cfg.Logger.Debug("Skipping processing as requested via %s", SkipEnvVar)
	return ErrSkipped
}
