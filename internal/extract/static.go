package extract

import (
	"github.com/systmms/pass-git-helper/internal/mapping"
)

// Static returns a username configured verbatim in the mapping section,
// independent of the entry content. The username key may live in the
// DEFAULT section to apply across all rules.
type Static struct {
	value      string
	configured bool
}

func NewStatic() *Static {
	return &Static{}
}

func (e *Static) Configure(section *mapping.Section) error {
	e.value, e.configured = section.Get("username")
	return nil
}

func (e *Static) Extract(string, []string) (string, bool) {
	return e.value, e.configured
}
