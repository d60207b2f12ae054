package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/systmms/pass-git-helper/internal/config"
	"github.com/systmms/pass-git-helper/internal/protocol"
	"github.com/systmms/pass-git-helper/internal/resolve"
	"github.com/systmms/pass-git-helper/internal/store"
	"github.com/systmms/pass-git-helper/pkg/exec"
)

// NewGetCommand answers credential requests, the only action of the git
// credential API this helper implements.
func NewGetCommand(cfg *config.Config) *cobra.Command {
	return NewGetCommandWithExecutor(cfg, exec.DefaultExecutor())
}

// NewGetCommandWithExecutor creates the get command with a custom command
// executor. This is primarily used for testing.
func NewGetCommandWithExecutor(cfg *config.Config, executor exec.CommandExecutor) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Answer a credential request from the matching pass entry",
		Long: `Read a git credential API request from stdin, look up the pass entry
configured for its host in the mapping file and answer with the
password, and possibly username, extracted from that entry.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkSkip(cfg); err != nil {
				return err
			}

			request, err := protocol.ParseRequest(cmd.InOrStdin())
			if err != nil {
				return err
			}

			if err := cfg.Load(); err != nil {
				return err
			}

			passStore := store.NewWithExecutor(cfg.Logger, executor)
			resolver := resolve.New(cfg.Mapping, passStore, cfg.Logger, os.Environ())
			return resolver.Resolve(cmd.Context(), request, cmd.OutOrStdout())
		},
	}
}
