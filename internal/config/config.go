// Package config holds the runtime configuration shared by all commands
// and locates the mapping file in the XDG config locations.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"

	pgherrors "github.com/systmms/pass-git-helper/internal/errors"
	"github.com/systmms/pass-git-helper/internal/logging"
	"github.com/systmms/pass-git-helper/internal/mapping"
)

// Well-known mapping file location below the XDG config directories.
const (
	AppName         = "pass-git-helper"
	MappingFileName = "git-pass-mapping.ini"
)

// Config is filled with flag values before command execution; the mapping
// itself is loaded on demand via Load.
type Config struct {
	// MappingPath is the file named with --mapping. Empty means the XDG
	// config locations are searched.
	MappingPath string
	Logger      *logging.Logger
	Mapping     *mapping.Mapping
}

// Load parses the mapping file. An explicit --mapping path takes
// precedence; otherwise the XDG config locations are searched for
// pass-git-helper/git-pass-mapping.ini.
func (c *Config) Load() error {
	path := c.MappingPath
	if path == "" {
		found, err := xdg.SearchConfigFile(filepath.Join(AppName, MappingFileName))
		if err != nil {
			return pgherrors.UserError{
				Message:    "No mapping configured so far at any XDG config location",
				Suggestion: fmt.Sprintf("Please create %s or name a file with --mapping", DefaultPath()),
				Err:        err,
			}
		}
		path = found
	}

	m, err := mapping.Load(path, c.Logger)
	if err != nil {
		return err
	}

	c.Mapping = m
	return nil
}

// DefaultPath returns the canonical mapping file location inside the
// user's XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, MappingFileName)
}
