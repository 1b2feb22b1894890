package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName    = "config"
	configType    = "toml"
	configDirName = ".td"
	envPrefix     = "TD"

	keyAPIBaseURL      = "api.base_url"
	keyAPIKey          = "api.key"
	keyEnvironment     = "environment"
	keyTasksPath       = "tasks.path"
	keyCredentialsPath = "credentials.path"

	defaultBaseURL     = "https://api.todos.example.com"
	defaultEnvironment = "development"
	tasksFileName      = "tasks.toml"
	credentialsDirName = "credentials"
)

// Config is the environment-provided application configuration. A
// missing API key only disables the static service header; bearer-token
// auth is unaffected.
type Config struct {
	APIBaseURL      string
	APIKey          string
	Environment     string
	TasksPath       string
	CredentialsPath string
}

// Load resolves configuration from ~/.td/config.toml overlaid with
// TD_* environment variables. A missing config file is fine; defaults
// cover everything but still go through validation.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, configDirName)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(configDir)

	cfg.SetDefault(keyAPIBaseURL, defaultBaseURL)
	cfg.SetDefault(keyEnvironment, defaultEnvironment)
	cfg.SetDefault(keyTasksPath, filepath.Join(configDir, tasksFileName))
	cfg.SetDefault(keyCredentialsPath, filepath.Join(configDir, credentialsDirName))

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		APIBaseURL:      cfg.GetString(keyAPIBaseURL),
		APIKey:          cfg.GetString(keyAPIKey),
		Environment:     cfg.GetString(keyEnvironment),
		TasksPath:       cfg.GetString(keyTasksPath),
		CredentialsPath: cfg.GetString(keyCredentialsPath),
	}

	if loaded.APIBaseURL == "" {
		return Config{}, errors.New("api base url is empty")
	}
	if loaded.TasksPath == "" {
		return Config{}, errors.New("tasks path is empty")
	}
	if loaded.CredentialsPath == "" {
		return Config{}, errors.New("credentials path is empty")
	}

	return loaded, nil
}
