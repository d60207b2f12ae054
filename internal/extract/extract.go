// Package extract implements the strategies that pull passwords and
// usernames out of decoded pass entries. Which strategy runs is selected
// per mapping section; each strategy reads its own configuration keys,
// qualified by a _password or _username suffix.
package extract

import (
	"github.com/systmms/pass-git-helper/internal/mapping"
)

// Option suffixes separating password configuration from username
// configuration within one mapping section.
const (
	SuffixPassword = "_password"
	SuffixUsername = "_username"
)

// Extractor produces a single value from a pass entry.
//
// Extract returns false when the entry carries no value at all for this
// extractor. An empty string with true means the value exists but is
// empty; callers suppress it from output either way.
type Extractor interface {
	// Configure reads the extractor's options from the mapping section,
	// keeping its construction defaults for absent keys.
	Configure(section *mapping.Section) error
	Extract(entryName string, lines []string) (string, bool)
}
