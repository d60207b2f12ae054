package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/pass-git-helper/internal/extract"
)

func TestEntryNameExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		entryName string
		want      string
	}{
		{name: "nested entry", entryName: "dev/mysite", want: "mysite"},
		{name: "deeply nested entry", entryName: "dev/git/mysite", want: "mysite"},
		{name: "top level entry", entryName: "mysite", want: "mysite"},
		{name: "trailing slash yields empty value", entryName: "dev/", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, found := extract.EntryName{}.Extract(tt.entryName, []string{"ignored"})

			assert.True(t, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntryNameIgnoresConfiguration(t *testing.T) {
	t.Parallel()

	sec := section(t, "[mysite.com]\ntarget = x\nline_username = 3\n")

	require.NoError(t, extract.EntryName{}.Configure(sec))
}
