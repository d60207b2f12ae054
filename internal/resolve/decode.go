package resolve

import (
	"fmt"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	pgherrors "github.com/systmms/pass-git-helper/internal/errors"
)

// DefaultEncoding is assumed for entries of sections without an encoding
// key.
const DefaultEncoding = "UTF-8"

// Decode converts raw entry bytes to text using an IANA character set
// name such as UTF-8 or LATIN1.
func Decode(raw []byte, encodingName string) (string, error) {
	enc, err := ianaindex.IANA.Encoding(encodingName)
	if err != nil || enc == nil {
		return "", pgherrors.ConfigError{
			Field:      "encoding",
			Value:      encodingName,
			Message:    "unknown text encoding",
			Suggestion: "Use an IANA character set name such as UTF-8 or LATIN1",
		}
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return "", pgherrors.UserError{
			Message: fmt.Sprintf("Unable to decode the pass entry as %s", encodingName),
			Err:     err,
		}
	}
	return string(decoded), nil
}
