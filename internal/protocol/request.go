// Package protocol implements the line-based key=value exchange of the git
// credential API: parsing requests from stdin and formatting responses for
// stdout.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	pgherrors "github.com/systmms/pass-git-helper/internal/errors"
	"github.com/systmms/pass-git-helper/internal/logging"
)

// Recognized request fields. Unrecognized fields are kept verbatim so that
// future protocol additions pass through untouched.
const (
	FieldHost     = "host"
	FieldProtocol = "protocol"
	FieldPath     = "path"
	FieldUsername = "username"
	FieldPassword = "password"
)

// Request holds the key=value pairs of one credential request. It is built
// once from stdin and read-only afterwards.
type Request map[string]string

// ParseRequest reads a credential request until EOF. Blank lines are
// skipped to be a bit resilient against protocol hiccups; any other line
// that is not key=value is a fatal protocol violation.
func ParseRequest(r io.Reader) (Request, error) {
	request := make(Request)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, pgherrors.UserError{
				Message:    fmt.Sprintf("Invalid credential request line %q", line),
				Suggestion: "Requests must consist of key=value lines as defined by the git credential API",
			}
		}
		request[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, pgherrors.UserError{
			Message: "Failed to read the credential request",
			Err:     err,
		}
	}

	return request, nil
}

// Has reports whether the request carries the given field.
func (r Request) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// String renders the request for diagnostics with keys in stable order. A
// password field, sent when the remote URL embeds credentials, is redacted
// so debug logs stay safe to share.
func (r Request) String() string {
	keys := make([]string, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		value := r[key]
		if key == FieldPassword {
			value = logging.Secret(value).String()
		}
		pairs = append(pairs, key+"="+value)
	}
	return "{" + strings.Join(pairs, " ") + "}"
}

// CanonicalHeader derives the string matched against mapping section
// patterns: host, with /path appended when the request has a path, and a
// protocol:// prefix when it has a protocol.
func (r Request) CanonicalHeader() (string, error) {
	host, ok := r[FieldHost]
	if !ok {
		return "", pgherrors.UserError{
			Message:    "Request lacks host entry",
			Details:    "cannot query the password store without a host",
			Suggestion: "Check that the caller speaks the git credential API",
		}
	}

	header := host
	if path, ok := r[FieldPath]; ok {
		header = header + "/" + path
	}
	if protocol, ok := r[FieldProtocol]; ok {
		header = protocol + "://" + header
	}
	return header, nil
}
