package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/systmms/pass-git-helper/internal/config"
	pgherrors "github.com/systmms/pass-git-helper/internal/errors"
)

// NewStoreCommand accepts the store action of the git credential API
// without implementing it. pass entries are managed with pass itself.
func NewStoreCommand(cfg *config.Config) *cobra.Command {
	return newUnsupportedCommand(cfg, "store", "Accept and ignore a credential store request")
}

// NewEraseCommand accepts the erase action without implementing it.
func NewEraseCommand(cfg *config.Config) *cobra.Command {
	return newUnsupportedCommand(cfg, "erase", "Accept and ignore a credential erase request")
}

func newUnsupportedCommand(cfg *config.Config, action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunUnsupported(cfg, cmd, action)
		},
	}
}

// RunUnsupported reports an action as unsupported after draining the
// request. Git invents new credential actions over time, so the root
// command routes every unknown action here instead of rejecting it as a
// usage error.
func RunUnsupported(cfg *config.Config, cmd *cobra.Command, action string) error {
	if err := checkSkip(cfg); err != nil {
		return err
	}

	// Drain the request so the caller never sees a broken pipe.
	if _, err := io.Copy(io.Discard, cmd.InOrStdin()); err != nil {
		return err
	}

	return pgherrors.UserError{
		Message:    fmt.Sprintf("Action '%s' is currently not supported", action),
		Suggestion: "Manage entries with pass directly; this helper only answers get requests",
	}
}
