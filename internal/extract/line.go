package extract

import (
	"github.com/systmms/pass-git-helper/internal/mapping"
)

// SpecificLine extracts a fixed zero-based line from the entry and drops a
// configured number of leading characters, e.g. a "password: " prefix.
type SpecificLine struct {
	line   int
	skip   int
	suffix string
}

// NewSpecificLine creates the extractor with its default line index and
// skip count. Both can be overridden per section via the line{suffix} and
// skip{suffix} keys.
func NewSpecificLine(line, skip int, suffix string) *SpecificLine {
	return &SpecificLine{
		line:   line,
		skip:   skip,
		suffix: suffix,
	}
}

func (e *SpecificLine) Configure(section *mapping.Section) error {
	line, err := section.GetInt("line"+e.suffix, e.line)
	if err != nil {
		return err
	}
	skip, err := section.GetInt("skip"+e.suffix, e.skip)
	if err != nil {
		return err
	}

	e.line = line
	e.skip = skip
	return nil
}

// Extract returns the configured line with the prefix dropped. A line
// index outside the entry means absence; skipping past the end of the
// line yields an empty value. The skip counts characters, not bytes.
func (e *SpecificLine) Extract(_ string, lines []string) (string, bool) {
	if e.line < 0 || e.line >= len(lines) {
		return "", false
	}

	runes := []rune(lines[e.line])
	if e.skip >= len(runes) {
		return "", true
	}
	if e.skip <= 0 {
		return string(runes), true
	}
	return string(runes[e.skip:]), true
}
