package resolve

import (
	"fmt"
	"strings"

	pgherrors "github.com/systmms/pass-git-helper/internal/errors"
	"github.com/systmms/pass-git-helper/internal/mapping"
	"github.com/systmms/pass-git-helper/internal/protocol"
)

// BuildTarget renders the section's target template for the request.
// ${host} is always filled in; ${path}, ${username} and ${protocol} only
// when the request carries the field, leaving the placeholder verbatim
// otherwise.
func BuildTarget(section *mapping.Section, request protocol.Request) (string, error) {
	target, ok := section.Get("target")
	if !ok {
		return "", pgherrors.ConfigError{
			Field:      "target",
			Message:    fmt.Sprintf("section '%s' does not define a pass entry", section.Pattern),
			Suggestion: "Add a target key naming the pass entry, e.g. target = dev/${host}",
		}
	}

	target = strings.ReplaceAll(target, "${host}", request[protocol.FieldHost])
	for _, field := range []string{protocol.FieldPath, protocol.FieldUsername, protocol.FieldProtocol} {
		if value, ok := request[field]; ok {
			target = strings.ReplaceAll(target, "${"+field+"}", value)
		}
	}
	return target, nil
}
