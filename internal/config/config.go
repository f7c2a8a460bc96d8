package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config selects the backend and carries its credentials. With Local set
// (or no config file at all) everything lives in an embedded sqlite
// database and no account is needed.
type Config struct {
	BackendURL string `yaml:"backend_url"`
	AnonKey    string `yaml:"anon_key"`
	Bucket     string `yaml:"bucket"` // storage bucket for logo uploads
	Local      bool   `yaml:"local"`
	DBPath     string `yaml:"db_path"`
	UploadsDir string `yaml:"uploads_dir"`
}

// GetConfigPath returns the config file location, honouring the
// LISTO_CONFIG environment variable
func GetConfigPath() (string, error) {
	if custom := os.Getenv("LISTO_CONFIG"); custom != "" {
		return custom, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "", fmt.Errorf("failed to determine home directory: %w", homeErr)
		}
		return filepath.Join(homeDir, ".listo", "config.yaml"), nil
	}
	return filepath.Join(configDir, "listo", "config.yaml"), nil
}

// Load reads the config file. A missing file is not an error: it yields
// the default local-mode config.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return defaultConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file (%s): %w", configPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.DBPath = expandHomeDir(cfg.DBPath)
	cfg.UploadsDir = expandHomeDir(cfg.UploadsDir)
	applyDefaults(&cfg)
	return &cfg, nil
}

func defaultConfig() (*Config, error) {
	cfg := Config{Local: true}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.BackendURL == "" {
		cfg.Local = true
	}
	if cfg.Bucket == "" {
		cfg.Bucket = "branding"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(home, ".listo", "listo.db")
	}
	if cfg.UploadsDir == "" {
		cfg.UploadsDir = filepath.Join(home, ".listo", "uploads")
	}
}

// Expand `~` to the home directory
func expandHomeDir(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// sessionPath is where the access token from `listo login` lives
func sessionPath() (string, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(configPath), "session"), nil
}

// SaveSession persists the access token next to the config file
func SaveSession(token string) error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0600)
}

// LoadSession returns the saved access token, or "" when not logged in
func LoadSession() string {
	path, err := sessionPath()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
