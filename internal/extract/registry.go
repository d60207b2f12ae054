package extract

import (
	"fmt"

	pgherrors "github.com/systmms/pass-git-helper/internal/errors"
)

// Strategy names selectable via the password_extractor and
// username_extractor mapping keys.
const (
	StrategySpecificLine = "specific_line"
	StrategyRegexSearch  = "regex_search"
	StrategyEntryName    = "entry_name"
	StrategyStatic       = "static"
)

// DefaultStrategy applies when a section does not select an extractor:
// line 0 for the password, line 1 for the username.
const DefaultStrategy = StrategySpecificLine

// Default patterns for the regex_search strategy, following the common
// "key: value" layout of multi-line pass entries.
const (
	defaultPasswordRegex = `^password: +(.*)$`
	defaultUsernameRegex = `^username: +(.*)$`
)

// NewPasswordExtractor returns a fresh password extractor for the given
// strategy name. Fresh instances keep configuration from one resolution
// from leaking into the next.
func NewPasswordExtractor(strategy string) (Extractor, error) {
	switch strategy {
	case StrategySpecificLine:
		return NewSpecificLine(0, 0, SuffixPassword), nil
	case StrategyRegexSearch:
		return mustRegexSearch(defaultPasswordRegex, SuffixPassword), nil
	case StrategyEntryName:
		return EntryName{}, nil
	default:
		return nil, unknownStrategy("password", strategy)
	}
}

// NewUsernameExtractor returns a fresh username extractor for the given
// strategy name.
func NewUsernameExtractor(strategy string) (Extractor, error) {
	switch strategy {
	case StrategySpecificLine:
		return NewSpecificLine(1, 0, SuffixUsername), nil
	case StrategyRegexSearch:
		return mustRegexSearch(defaultUsernameRegex, SuffixUsername), nil
	case StrategyEntryName:
		return EntryName{}, nil
	case StrategyStatic:
		return NewStatic(), nil
	default:
		return nil, unknownStrategy("username", strategy)
	}
}

func unknownStrategy(qualifier, name string) error {
	return pgherrors.ConfigError{
		Message: fmt.Sprintf("%s_extractor of type '%s' does not exist", qualifier, name),
	}
}

func mustRegexSearch(pattern, suffix string) *RegexSearch {
	extractor, err := NewRegexSearch(pattern, suffix)
	if err != nil {
		panic(err)
	}
	return extractor
}
