package extract

import (
	"fmt"
	"regexp"

	pgherrors "github.com/systmms/pass-git-helper/internal/errors"
	"github.com/systmms/pass-git-helper/internal/mapping"
)

// RegexSearch scans the entry lines for the first one matching a pattern
// anchored at the line start and returns the content of its single capture
// group.
type RegexSearch struct {
	pattern *regexp.Regexp
	suffix  string
}

// NewRegexSearch creates the extractor with a default pattern. The pattern
// must contain exactly one capture group; anything else is rejected right
// away instead of at extraction time.
func NewRegexSearch(pattern, suffix string) (*RegexSearch, error) {
	compiled, err := compileSearch("regex"+suffix, pattern)
	if err != nil {
		return nil, err
	}
	return &RegexSearch{
		pattern: compiled,
		suffix:  suffix,
	}, nil
}

func compileSearch(field, pattern string) (*regexp.Regexp, error) {
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return nil, pgherrors.ConfigError{
			Field:   field,
			Value:   pattern,
			Message: fmt.Sprintf("invalid regular expression: %v", err),
		}
	}
	if compiled.NumSubexp() != 1 {
		return nil, pgherrors.ConfigError{
			Field:      field,
			Value:      pattern,
			Message:    "must contain a single capture group for the value to return",
			Suggestion: "Wrap the part of the line to extract in parentheses",
		}
	}
	return compiled, nil
}

func (e *RegexSearch) Configure(section *mapping.Section) error {
	raw, ok := section.Get("regex" + e.suffix)
	if !ok {
		return nil
	}

	compiled, err := compileSearch("regex"+e.suffix, raw)
	if err != nil {
		return err
	}
	e.pattern = compiled
	return nil
}

// Extract returns the capture group of the first line the pattern matches
// from its start. The scan stops at that line even if the group did not
// participate in the match.
func (e *RegexSearch) Extract(_ string, lines []string) (string, bool) {
	for _, line := range lines {
		idx := e.pattern.FindStringSubmatchIndex(line)
		if idx == nil || idx[0] != 0 {
			continue
		}
		if idx[2] < 0 {
			return "", false
		}
		return line[idx[2]:idx[3]], true
	}
	return "", false
}
