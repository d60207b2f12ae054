package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/pass-git-helper/internal/extract"
)

func TestNewPasswordExtractor(t *testing.T) {
	t.Parallel()

	t.Run("default strategy takes the first line", func(t *testing.T) {
		t.Parallel()

		extractor, err := extract.NewPasswordExtractor(extract.DefaultStrategy)
		require.NoError(t, err)

		got, found := extractor.Extract("dev/mysite", []string{"narf", "zort"})

		assert.True(t, found)
		assert.Equal(t, "narf", got)
	})

	t.Run("regex search uses the password pattern", func(t *testing.T) {
		t.Parallel()

		extractor, err := extract.NewPasswordExtractor(extract.StrategyRegexSearch)
		require.NoError(t, err)

		got, found := extractor.Extract("dev/mysite", []string{
			"username: zort",
			"password: narf",
		})

		assert.True(t, found)
		assert.Equal(t, "narf", got)
	})

	t.Run("entry name is available for passwords", func(t *testing.T) {
		t.Parallel()

		_, err := extract.NewPasswordExtractor(extract.StrategyEntryName)
		require.NoError(t, err)
	})

	t.Run("static is not a password strategy", func(t *testing.T) {
		t.Parallel()

		_, err := extract.NewPasswordExtractor(extract.StrategyStatic)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "password_extractor of type 'static' does not exist")
	})

	t.Run("unknown strategy names the identifier", func(t *testing.T) {
		t.Parallel()

		_, err := extract.NewPasswordExtractor("doesntexist")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "password_extractor of type 'doesntexist' does not exist")
	})
}

func TestNewUsernameExtractor(t *testing.T) {
	t.Parallel()

	t.Run("default strategy takes the second line", func(t *testing.T) {
		t.Parallel()

		extractor, err := extract.NewUsernameExtractor(extract.DefaultStrategy)
		require.NoError(t, err)

		got, found := extractor.Extract("dev/mysite", []string{"narf", "zort"})

		assert.True(t, found)
		assert.Equal(t, "zort", got)
	})

	t.Run("regex search uses the username pattern", func(t *testing.T) {
		t.Parallel()

		extractor, err := extract.NewUsernameExtractor(extract.StrategyRegexSearch)
		require.NoError(t, err)

		got, found := extractor.Extract("dev/mysite", []string{
			"password: narf",
			"username: zort",
		})

		assert.True(t, found)
		assert.Equal(t, "zort", got)
	})

	t.Run("static returns the configured username", func(t *testing.T) {
		t.Parallel()

		extractor, err := extract.NewUsernameExtractor(extract.StrategyStatic)
		require.NoError(t, err)
		require.NoError(t, extractor.Configure(section(t, "[mysite.com]\ntarget = x\nusername = zort\n")))

		got, found := extractor.Extract("dev/mysite", []string{"narf"})

		assert.True(t, found)
		assert.Equal(t, "zort", got)
	})

	t.Run("unknown strategy names the identifier", func(t *testing.T) {
		t.Parallel()

		_, err := extract.NewUsernameExtractor("doesntexist")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "username_extractor of type 'doesntexist' does not exist")
	})
}

func TestExtractorsAreFreshInstances(t *testing.T) {
	t.Parallel()

	first, err := extract.NewUsernameExtractor(extract.StrategySpecificLine)
	require.NoError(t, err)
	second, err := extract.NewUsernameExtractor(extract.StrategySpecificLine)
	require.NoError(t, err)

	// Configuring one instance must not affect the other.
	require.NoError(t, first.Configure(section(t, "[mysite.com]\ntarget = x\nline_username = 0\n")))

	got, found := second.Extract("dev/mysite", []string{"narf", "zort"})
	require.True(t, found)
	assert.Equal(t, "zort", got)

	got, found = first.Extract("dev/mysite", []string{"narf", "zort"})
	require.True(t, found)
	assert.Equal(t, "narf", got)
}
