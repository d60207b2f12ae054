package errors

import (
	"fmt"
	"strings"
)

// UserError represents an error that should be shown to the user with helpful context
type UserError struct {
	Message    string
	Suggestion string
	Details    string
	Err        error
}

func (e UserError) Error() string {
	var parts []string

	if e.Message != "" {
		parts = append(parts, e.Message)
	} else if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	if e.Details != "" {
		parts = append(parts, "\n  Details: "+e.Details)
	}

	if e.Suggestion != "" {
		parts = append(parts, "\n  💡 Try: "+e.Suggestion)
	}

	return strings.Join(parts, "")
}

func (e UserError) Unwrap() error {
	return e.Err
}

// ConfigError represents a mapping configuration error with helpful context
type ConfigError struct {
	Field      string
	Value      interface{}
	Message    string
	Suggestion string
}

func (e ConfigError) Error() string {
	msg := "Configuration error"
	if e.Field != "" {
		msg += fmt.Sprintf(" in field '%s'", e.Field)
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	msg += ": " + e.Message

	if e.Suggestion != "" {
		msg += "\n  💡 " + e.Suggestion
	}

	return msg
}

// CommandError represents a command execution error
type CommandError struct {
	Command    string
	ExitCode   int
	Message    string
	Suggestion string
}

func (e CommandError) Error() string {
	msg := fmt.Sprintf("Command '%s' failed", e.Command)
	if e.ExitCode != 0 {
		msg += fmt.Sprintf(" (exit code: %d)", e.ExitCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}

	if e.Suggestion != "" {
		msg += "\n  💡 " + e.Suggestion
	}

	return msg
}

// PassError enhances failures of the pass invocation with context. The
// message deliberately starts with "Unable to retrieve" since callers
// grepping stderr rely on that prefix.
func PassError(target string, err error, stderr string) error {
	return UserError{
		Message:    fmt.Sprintf("Unable to retrieve '%s' from pass", target),
		Suggestion: passSuggestion(err, stderr),
		Details:    strings.TrimSpace(stderr),
		Err:        err,
	}
}

// passSuggestion returns helpful suggestions based on the pass failure mode
func passSuggestion(err error, stderr string) string {
	out := stderr
	if err != nil {
		out += " " + err.Error()
	}

	if strings.Contains(out, "not in the password store") {
		return "Check the entry name with 'pass ls' or 'pass find <keyword>'"
	}
	if strings.Contains(out, "gpg: decryption failed") || strings.Contains(out, "No secret key") {
		return "Check that the GPG key for this store is available and unlocked"
	}
	if strings.Contains(out, "executable file not found") || strings.Contains(out, "command not found") {
		return "Install pass: https://www.passwordstore.org/"
	}
	if strings.Contains(out, "password store is empty") {
		return "Initialize the store with 'pass init <gpg-key-id>'"
	}

	return "Run the same 'pass show' invocation manually to inspect the failure"
}

// WrapCommandNotFound wraps command not found errors with helpful suggestions
func WrapCommandNotFound(command string, err error) error {
	suggestions := map[string]string{
		"pass": "Install pass: https://www.passwordstore.org/ (brew install pass, apt install pass, etc.)",
		"gpg":  "Install GnuPG from https://gnupg.org/",
		"git":  "Install Git from https://git-scm.com/",
	}

	suggestion := suggestions[command]
	if suggestion == "" {
		suggestion = fmt.Sprintf("Make sure '%s' is installed and in your PATH", command)
	}

	return CommandError{
		Command:    command,
		Message:    "command not found",
		Suggestion: suggestion,
	}
}
