package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/pass-git-helper/internal/extract"
)

func TestStaticExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		config    string
		want      string
		wantFound bool
	}{
		{
			name:      "configured username",
			config:    "[mysite.com]\ntarget = x\nusername = zort\n",
			want:      "zort",
			wantFound: true,
		},
		{
			name:      "username inherited from defaults",
			config:    "[DEFAULT]\nusername = shared\n\n[mysite.com]\ntarget = x\n",
			want:      "shared",
			wantFound: true,
		},
		{
			name:      "unconfigured username is absent",
			config:    "[mysite.com]\ntarget = x\n",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			extractor := extract.NewStatic()
			require.NoError(t, extractor.Configure(section(t, tt.config)))

			got, found := extractor.Extract("dev/mysite", []string{"password-line"})

			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}
