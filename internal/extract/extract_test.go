package extract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/systmms/pass-git-helper/internal/logging"
	"github.com/systmms/pass-git-helper/internal/mapping"
)

// section builds a single mapping section from raw INI key lines,
// optionally preceded by a [DEFAULT] block.
func section(t *testing.T, body string) *mapping.Section {
	t.Helper()

	m, err := mapping.Parse([]byte(body), logging.New(false, true))
	require.NoError(t, err)
	require.NotEmpty(t, m.Sections())
	return m.Sections()[0]
}
