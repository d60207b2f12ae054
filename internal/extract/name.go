package extract

import (
	"strings"

	"github.com/systmms/pass-git-helper/internal/mapping"
)

// EntryName ignores the entry content and returns the final path segment
// of the pass entry name. Useful for stores organized as host/username.
type EntryName struct{}

func (EntryName) Configure(*mapping.Section) error {
	return nil
}

func (EntryName) Extract(entryName string, _ []string) (string, bool) {
	return entryName[strings.LastIndex(entryName, "/")+1:], true
}
