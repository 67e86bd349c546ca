package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".classcss.yaml")
	configContent := `
verbose: true
color: true

convert:
  max-input-length: 5000
  highlight: false
  output: json
  stylesheet:
    - "assets/**/*.css"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.True(t, k.Bool("color"))
	assert.Equal(t, 5000, k.Int("convert.max-input-length"))
	assert.False(t, k.Bool("convert.highlight"))
	assert.Equal(t, "json", k.String("convert.output"))
	assert.Equal(t, []string{"assets/**/*.css"}, k.Strings("convert.stylesheet"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.classcss.yaml"))

	config := buildConvertConfig()
	assert.Equal(t, 10000, config.MaxInputLength)
	assert.True(t, config.EnableSyntaxHighlighting)
	assert.Empty(t, sheetPatterns())
}

func TestEnvOverridesFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".classcss.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("convert:\n  output: text\n"), 0644))

	t.Setenv("CLASSCSS_CONVERT_OUTPUT", "json")
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "json", k.String("convert.output"))
}

func TestBuildConvertConfigFromFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".classcss.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
convert:
  max-input-length: 2000
  debounce-ms: 150
  highlight: false
`), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildConvertConfig()
	assert.Equal(t, 2000, config.MaxInputLength)
	assert.Equal(t, 150, config.DebounceMs)
	assert.False(t, config.EnableSyntaxHighlighting)
}

func TestGetWithFallbackPrecedence(t *testing.T) {
	resetKoanf()
	require.NoError(t, k.Set("output", "flag-value"))
	require.NoError(t, k.Set("convert.output", "file-value"))

	assert.Equal(t, "flag-value", getStringWithFallback("output", "convert.output", "default"))
	assert.Equal(t, "file-value", getStringWithFallback("missing", "convert.output", "default"))
	assert.Equal(t, "default", getStringWithFallback("missing", "also-missing", "default"))
}
