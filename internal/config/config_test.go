package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "https://api.todos.example.com", cfg.APIBaseURL)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, filepath.Join(home, ".td", "tasks.toml"), cfg.TasksPath)
	assert.Equal(t, filepath.Join(home, ".td", "credentials"), cfg.CredentialsPath)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ".td")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	content := "environment = \"staging\"\n\n[api]\nbase_url = \"https://todos.staging.example.com\"\nkey = \"file-key\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o600))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "https://todos.staging.example.com", cfg.APIBaseURL)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "staging", cfg.Environment)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TD_API_BASE_URL", "https://todos.env.example.com")
	t.Setenv("TD_API_KEY", "env-key")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "https://todos.env.example.com", cfg.APIBaseURL)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestLoadMalformedConfigFileFails(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ".td")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("not toml ["), 0o600))

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}
