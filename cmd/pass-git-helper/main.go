package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"

	"github.com/systmms/pass-git-helper/cmd/pass-git-helper/commands"
	"github.com/systmms/pass-git-helper/internal/config"
	"github.com/systmms/pass-git-helper/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Wipe locked plaintext buffers even when the process is interrupted
	// mid-resolution.
	memguard.CatchInterrupt()
	defer memguard.Purge()

	if err := run(); err != nil {
		if !errors.Is(err, commands.ErrSkipped) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		memguard.SafeExit(1)
	}
}

func run() error {
	// Global flags
	var (
		mappingFile string
		debug       bool
		noColor     bool
	)

	// Create config placeholder
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:   "pass-git-helper",
		Short: "Git credential helper using pass as the data source",
		Long: `pass-git-helper answers git credential requests from entries of the
pass password store, selected through a user-defined mapping of hosts
to entry names.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		// Stdout belongs to the credential protocol and failures are
		// reported once by main, so cobra stays quiet.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Update config with parsed values
			cfg.MappingPath = mappingFile
			cfg.Logger = logging.New(debug, noColor)
		},
		// Actions without a dedicated command are still valid credential
		// API calls and must be answered, not treated as CLI misuse.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return commands.RunUnsupported(cfg, cmd, args[0])
		},
	}

	rootCmd.PersistentFlags().StringVarP(&mappingFile, "mapping", "m", "",
		"A mapping file specifying how hosts map to pass entries, overriding the default from the XDG config locations")
	rootCmd.PersistentFlags().BoolVarP(&debug, "logging", "l", false,
		"Print debug messages on stderr; might include sensitive information")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Add commands
	rootCmd.AddCommand(
		commands.NewGetCommand(cfg),
		commands.NewStoreCommand(cfg),
		commands.NewEraseCommand(cfg),
	)

	return rootCmd.Execute()
}
