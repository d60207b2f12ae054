package mapping

import (
	"fmt"
	"strings"

	pgherrors "github.com/systmms/pass-git-helper/internal/errors"
)

// FindSection returns the first section whose pattern matches the header.
// File order decides ties. Headers carrying a protocol prefix get a second
// chance: when nothing matches the full header, the protocol is stripped
// and the search runs again, so protocol-agnostic mappings keep working
// for protocol-qualified requests. The two passes are never merged; a
// protocol-qualified pattern always beats a bare one.
func (m *Mapping) FindSection(header string) (*Section, error) {
	section, err := m.findSection(header)
	if err == nil {
		return section, nil
	}

	bare := stripProtocol(header)
	if bare == header {
		return nil, err
	}
	return m.findSection(bare)
}

func (m *Mapping) findSection(header string) (*Section, error) {
	m.logger.Debug("Searching mapping to match against header %q", header)

	for _, section := range m.sections {
		if section.Matches(header) {
			m.logger.Debug("Section %q matches requested header %q", section.Pattern, header)
			return section, nil
		}
	}

	return nil, pgherrors.UserError{
		Message:    fmt.Sprintf("No mapping section in %v matches request %q", m.Patterns(), header),
		Suggestion: "Add a section with a pattern matching this host to the mapping file",
	}
}

func stripProtocol(header string) string {
	if _, rest, found := strings.Cut(header, "://"); found {
		return rest
	}
	return header
}
