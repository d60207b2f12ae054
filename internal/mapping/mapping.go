// Package mapping loads the INI file that maps credential request headers
// to pass entry names. Section names are glob patterns, section keys
// configure the target template and the extraction strategies, and the
// DEFAULT section supplies values inherited by every other section.
package mapping

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
	"gopkg.in/ini.v1"

	pgherrors "github.com/systmms/pass-git-helper/internal/errors"
	"github.com/systmms/pass-git-helper/internal/logging"
)

// loadOptions keep the mapping format lenient: keys are case-insensitive
// and # or ; inside values are data, not comments. Section names keep
// their case because they are glob patterns.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment: true,
	InsensitiveKeys:     true,
}

// Mapping is a parsed mapping configuration: the sections in file order
// plus the defaults they all inherit. It is read-only after loading.
type Mapping struct {
	sections []*Section
	defaults map[string]string
	logger   *logging.Logger
}

// Section is a single mapping rule. Pattern is the glob from the section
// header; key lookups fall back to the DEFAULT section of the same file.
type Section struct {
	Pattern string

	matcher    glob.Glob
	subMatcher glob.Glob
	keys       map[string]string
	defaults   map[string]string
}

// Load reads and parses the mapping file at path.
func Load(path string, logger *logging.Logger) (*Mapping, error) {
	logger.Debug("Parsing mapping file %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pgherrors.UserError{
			Message:    fmt.Sprintf("Unable to read mapping file '%s'", path),
			Suggestion: "Check that the file exists and is readable",
			Err:        err,
		}
	}
	return Parse(data, logger)
}

// Parse parses mapping configuration from raw INI data. Sections with a
// pattern that does not compile are kept but never match; a warning points
// the user at the offending pattern.
func Parse(data []byte, logger *logging.Logger) (*Mapping, error) {
	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, pgherrors.UserError{
			Message: fmt.Sprintf("Unable to parse mapping file: %v", err),
			Err:     err,
		}
	}

	mapping := &Mapping{
		defaults: file.Section(ini.DefaultSection).KeysHash(),
		logger:   logger,
	}

	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}

		matcher, err := glob.Compile(section.Name())
		if err != nil {
			logger.Warn("Section %q has an invalid pattern and will never match: %v",
				section.Name(), err)
			matcher = nil
		}
		var subMatcher glob.Glob
		if matcher != nil {
			// Cannot fail when the base pattern compiled.
			subMatcher, _ = glob.Compile(section.Name() + "/*")
		}

		mapping.sections = append(mapping.sections, &Section{
			Pattern:    section.Name(),
			matcher:    matcher,
			subMatcher: subMatcher,
			keys:       section.KeysHash(),
			defaults:   mapping.defaults,
		})
	}

	return mapping, nil
}

// Patterns returns the section patterns in file order.
func (m *Mapping) Patterns() []string {
	patterns := make([]string, len(m.sections))
	for i, section := range m.sections {
		patterns[i] = section.Pattern
	}
	return patterns
}

// Sections returns the sections in file order.
func (m *Mapping) Sections() []*Section {
	return m.sections
}

// Matches reports whether the section pattern matches the header. Two
// fallbacks widen the verbatim match: the header is also tried with a
// trailing slash so that patterns like "mysite.com/*" cover requests
// without a path, and the pattern also covers every subpath of itself so
// that "mysite.com" still matches "mysite.com/org/repo.git".
func (s *Section) Matches(header string) bool {
	if s.matcher == nil {
		return false
	}
	if s.matcher.Match(header) || s.matcher.Match(header+"/") {
		return true
	}
	return s.subMatcher.Match(header)
}

// Get returns the value for key, falling back to the DEFAULT section. Key
// names are lower-case.
func (s *Section) Get(key string) (string, bool) {
	if value, ok := s.keys[key]; ok {
		return value, true
	}
	value, ok := s.defaults[key]
	return value, ok
}

// GetString returns the value for key or fallback when the key is absent
// from both the section and the defaults.
func (s *Section) GetString(key, fallback string) string {
	if value, ok := s.Get(key); ok {
		return value
	}
	return fallback
}

// GetInt returns the integer value for key or fallback when absent. A
// present but non-numeric value is a configuration error.
func (s *Section) GetInt(key string, fallback int) (int, error) {
	raw, ok := s.Get(key)
	if !ok {
		return fallback, nil
	}

	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, pgherrors.ConfigError{
			Field:      key,
			Value:      raw,
			Message:    "must be an integer",
			Suggestion: fmt.Sprintf("Use a plain number, e.g. %s = 1", key),
		}
	}
	return value, nil
}
