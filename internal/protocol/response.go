package protocol

import (
	"fmt"
	"io"
)

// Credential is the outcome of a resolution. Empty strings mean the
// corresponding attribute was not extracted and must not be answered.
type Credential struct {
	Password string
	Username string
}

// WriteResponse emits the key=value answer lines for cred. The password is
// written whenever one was extracted. The username is only written when one
// was extracted and the request did not already carry a username: answering
// in that case would override what the caller asked for.
func WriteResponse(w io.Writer, cred Credential, req Request) error {
	if cred.Password != "" {
		if _, err := fmt.Fprintf(w, "password=%s\n", cred.Password); err != nil {
			return fmt.Errorf("writing password response: %w", err)
		}
	}
	if cred.Username != "" && !req.Has(FieldUsername) {
		if _, err := fmt.Fprintf(w, "username=%s\n", cred.Username); err != nil {
			return fmt.Errorf("writing username response: %w", err)
		}
	}
	return nil
}
