package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/pass-git-helper/internal/logging"
	"github.com/systmms/pass-git-helper/internal/store"
	"github.com/systmms/pass-git-helper/pkg/exec"
)

func testLogger() *logging.Logger {
	return logging.New(false, true)
}

func TestShow(t *testing.T) {
	t.Parallel()

	mock := exec.NewMockCommandExecutor()
	mock.AddOutputResponse("pass show dev/mysite", []byte("narf\nzort\n"))
	s := store.NewWithExecutor(testLogger(), mock)

	content, err := s.Show(context.Background(), "dev/mysite", nil)

	require.NoError(t, err)
	assert.Equal(t, []byte("narf\nzort\n"), content)
	mock.AssertCallCount(t, "pass", 1)

	calls := mock.GetCalls("pass")
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"show", "dev/mysite"}, calls[0].Args)
}

func TestShowPassesEnvironment(t *testing.T) {
	t.Parallel()

	mock := exec.NewMockCommandExecutor()
	mock.AddOutputResponse("pass show dev/mysite", []byte("narf\n"))
	s := store.NewWithExecutor(testLogger(), mock)

	env := []string{"HOME=/home/user", "PASSWORD_STORE_DIR=/work/store"}
	_, err := s.Show(context.Background(), "dev/mysite", env)

	require.NoError(t, err)
	calls := mock.GetCalls("pass")
	require.Len(t, calls, 1)
	assert.Equal(t, env, calls[0].Env)
}

func TestShowFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		stderr         string
		wantSuggestion string
	}{
		{
			name:           "entry missing",
			stderr:         "Error: dev/mysite is not in the password store.",
			wantSuggestion: "pass ls",
		},
		{
			name:           "gpg cannot decrypt",
			stderr:         "gpg: decryption failed: No secret key",
			wantSuggestion: "GPG key",
		},
		{
			name:           "other failure",
			stderr:         "something unexpected",
			wantSuggestion: "pass show",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := exec.NewMockCommandExecutor()
			mock.AddErrorResponse("pass show dev/mysite", tt.stderr, 1)
			s := store.NewWithExecutor(testLogger(), mock)

			_, err := s.Show(context.Background(), "dev/mysite", nil)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "Unable to retrieve 'dev/mysite' from pass")
			assert.Contains(t, err.Error(), tt.wantSuggestion)
		})
	}
}
