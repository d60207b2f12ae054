// Package resolve orchestrates a single credential resolution: match the
// request against the mapping, build the pass target and subprocess
// environment, fetch the entry and extract the answer.
package resolve

import (
	"context"
	"io"
	"strings"

	"github.com/systmms/pass-git-helper/internal/extract"
	"github.com/systmms/pass-git-helper/internal/logging"
	"github.com/systmms/pass-git-helper/internal/mapping"
	"github.com/systmms/pass-git-helper/internal/protocol"
	"github.com/systmms/pass-git-helper/internal/secure"
	"github.com/systmms/pass-git-helper/internal/store"
)

// Resolver answers credential requests from the mapping and the password
// store. The ambient environment is captured once at construction and
// treated as immutable.
type Resolver struct {
	mapping *mapping.Mapping
	store   *store.Store
	logger  *logging.Logger
	ambient []string
}

// New creates a resolver. ambient is the environment snapshot used as the
// base for every pass invocation, usually os.Environ().
func New(m *mapping.Mapping, s *store.Store, logger *logging.Logger, ambient []string) *Resolver {
	return &Resolver{
		mapping: m,
		store:   s,
		logger:  logger,
		ambient: ambient,
	}
}

// Resolve handles one get request and writes the protocol answer to out.
// Extractors are created fresh on every call, so a resolver can serve
// requests for different sections without state bleeding over.
func (r *Resolver) Resolve(ctx context.Context, request protocol.Request, out io.Writer) error {
	r.logger.Debug("Resolving request %v", request)

	header, err := request.CanonicalHeader()
	if err != nil {
		return err
	}

	section, err := r.mapping.FindSection(header)
	if err != nil {
		return err
	}

	passwordExtractor, err := configureExtractor(section, extract.NewPasswordExtractor, "password_extractor")
	if err != nil {
		return err
	}
	usernameExtractor, err := configureExtractor(section, extract.NewUsernameExtractor, "username_extractor")
	if err != nil {
		return err
	}

	target, err := BuildTarget(section, request)
	if err != nil {
		return err
	}
	env, err := BuildEnvironment(section, r.ambient)
	if err != nil {
		return err
	}

	dir, err := store.DirFromEnv(env)
	if err != nil {
		return err
	}
	if err := r.store.VerifyEntry(dir, target); err != nil {
		return err
	}

	raw, err := r.store.Show(ctx, target, env)
	if err != nil {
		return err
	}

	// Seal the plaintext; raw is wiped by the enclave.
	buffer := secure.NewBuffer(raw)
	defer buffer.Destroy()

	opened, err := buffer.Open()
	if err != nil {
		return err
	}
	defer opened.Destroy()

	entry, err := Decode(opened.Bytes(), section.GetString("encoding", DefaultEncoding))
	if err != nil {
		return err
	}
	lines := splitLines(entry)

	password, _ := passwordExtractor.Extract(target, lines)
	username, _ := usernameExtractor.Extract(target, lines)

	credential := protocol.Credential{
		Password: password,
		Username: username,
	}
	return protocol.WriteResponse(out, credential, request)
}

func configureExtractor(
	section *mapping.Section,
	create func(string) (extract.Extractor, error),
	selector string,
) (extract.Extractor, error) {
	extractor, err := create(section.GetString(selector, extract.DefaultStrategy))
	if err != nil {
		return nil, err
	}
	if err := extractor.Configure(section); err != nil {
		return nil, err
	}
	return extractor, nil
}

// splitLines splits the decoded entry into lines, accepting both LF and
// CRLF endings and ignoring the newline terminating the final line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
