package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.False(t, cfg.EnhancedOutput)
	assert.True(t, cfg.UseColors)
	assert.True(t, cfg.UnicodeSymbols)
	assert.False(t, cfg.ShowSuccessDetails)
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"1", true},
		{"yes", true},
		{"YES", true},
		{"on", true},
		{"  on  ", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"off", false},
		{"", false},
		{"banana", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Truthy(tt.value), "value %q", tt.value)
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("unset leaves base alone", func(t *testing.T) {
		cfg := FromEnv(Default())
		assert.Equal(t, Default(), cfg)
	})

	t.Run("enhanced output", func(t *testing.T) {
		t.Setenv(EnvEnhancedOutput, "tRuE")
		cfg := FromEnv(Default())
		assert.True(t, cfg.EnhancedOutput)
	})

	t.Run("no color negates", func(t *testing.T) {
		t.Setenv(EnvNoColor, "1")
		cfg := FromEnv(Default())
		assert.False(t, cfg.UseColors)
	})

	t.Run("ascii output disables unicode", func(t *testing.T) {
		t.Setenv(EnvASCIIOutput, "yes")
		cfg := FromEnv(Default())
		assert.False(t, cfg.UnicodeSymbols)
	})

	t.Run("show success", func(t *testing.T) {
		t.Setenv(EnvShowSuccess, "on")
		cfg := FromEnv(Default())
		assert.True(t, cfg.ShowSuccessDetails)
	})

	t.Run("set but falsy still overrides", func(t *testing.T) {
		t.Setenv(EnvNoColor, "false")
		cfg := FromEnv(Default())
		assert.True(t, cfg.UseColors)
	})
}

func TestLoadFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".restrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enhancedOutput: true\nuseColors: false\n"), 0o644))

	cfg, err := LoadFile(path, Default())
	require.NoError(t, err)
	assert.True(t, cfg.EnhancedOutput)
	assert.False(t, cfg.UseColors)
	// Keys absent from the file keep the base value.
	assert.True(t, cfg.UnicodeSymbols)
}

func TestLoadFileJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rest.config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"showSuccessDetails": true}`), 0o644))

	cfg, err := LoadFile(path, Default())
	require.NoError(t, err)
	assert.True(t, cfg.ShowSuccessDetails)
}

func TestLoadFileMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".restrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\tnot yaml"), 0o644))

	_, err := LoadFile(path, Default())
	assert.Error(t, err)
}

func TestDiscover(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		cfg, path, err := Discover(t.TempDir(), Default())
		require.NoError(t, err)
		assert.Empty(t, path)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("finds restrc", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, ".restrc.yml")
		require.NoError(t, os.WriteFile(file, []byte("enhancedOutput: true\n"), 0o644))

		cfg, path, err := Discover(dir, Default())
		require.NoError(t, err)
		assert.Equal(t, file, path)
		assert.True(t, cfg.EnhancedOutput)
	})

	t.Run("yaml wins over json", func(t *testing.T) {
		dir := t.TempDir()
		yamlFile := filepath.Join(dir, ".restrc.yaml")
		jsonFile := filepath.Join(dir, ".restrc.json")
		require.NoError(t, os.WriteFile(yamlFile, []byte("showSuccessDetails: true\n"), 0o644))
		require.NoError(t, os.WriteFile(jsonFile, []byte(`{"showSuccessDetails": false}`), 0o644))

		cfg, path, err := Discover(dir, Default())
		require.NoError(t, err)
		assert.Equal(t, yamlFile, path)
		assert.True(t, cfg.ShowSuccessDetails)
	})
}

func TestGlobalSetAndUpdate(t *testing.T) {
	t.Cleanup(Reset)

	Set(Default())
	assert.Equal(t, Default(), Current())

	Update(func(c *Config) { c.EnhancedOutput = true })
	assert.True(t, Current().EnhancedOutput)
	assert.True(t, Current().UseColors)
}
