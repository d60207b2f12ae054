package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/systmms/pass-git-helper/internal/mapping"
)

const (
	storeDirKey = "password_store_dir"
	storeDirVar = "PASSWORD_STORE_DIR"
)

// BuildEnvironment derives the pass subprocess environment from an
// ambient snapshot: a copy with PASSWORD_STORE_DIR replaced when the
// section configures a non-empty password_store_dir. The snapshot itself
// is never mutated, so repeated resolutions start from the same state.
func BuildEnvironment(section *mapping.Section, ambient []string) ([]string, error) {
	envMap := environMap(ambient)

	if dir, ok := section.Get(storeDirKey); ok && dir != "" {
		expanded, err := expandHome(dir)
		if err != nil {
			return nil, err
		}
		envMap[storeDirVar] = expanded
	}

	return flattenEnv(envMap), nil
}

func environMap(env []string) map[string]string {
	envMap := make(map[string]string, len(env))
	for _, entry := range env {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) == 2 {
			envMap[parts[0]] = parts[1]
		}
	}
	return envMap
}

func flattenEnv(envMap map[string]string) []string {
	result := make([]string, 0, len(envMap))
	for key, value := range envMap {
		result = append(result, fmt.Sprintf("%s=%s", key, value))
	}

	// Sort for consistent ordering (helps with debugging)
	sort.Strings(result)

	return result
}

// expandHome resolves a leading ~ in the configured store directory the
// way a shell would have.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding ~ in %s: %w", storeDirKey, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
