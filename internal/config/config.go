package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	defaultAPIBaseURL = "http://localhost:8032"

	configPathEnv = "PINECTL_CONFIG"
)

type Config struct {
	mu sync.RWMutex

	FilePath string `yaml:"-"`

	APIBaseURL string `yaml:"api_base_url"`

	APIKey string `yaml:"api_key,omitempty"`

	Username string `yaml:"username,omitempty"`

	// Sent with every request.
	Headers map[string]string `yaml:"headers,omitempty"`
}

func ConfigFilePath() (string, error) {
	if path := os.Getenv(configPathEnv); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".pinepods", "pinectl", "config.yaml"), nil
}

func Default(path string) *Config {
	return &Config{
		FilePath:   path,
		APIBaseURL: defaultAPIBaseURL,
	}
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return Default(path), nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open config file: %s", err)
	}
	defer file.Close()

	var cfg Config
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config from YAML: %s", err)
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}
	cfg.APIBaseURL = strings.TrimSuffix(cfg.APIBaseURL, "/")

	cfg.FilePath = path

	return &cfg, nil
}

// MergeHeaders returns the configured headers overlaid with overrides.
func (c *Config) MergeHeaders(overrides map[string]string) map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	headers := make(map[string]string, len(c.Headers)+len(overrides))
	for k, v := range c.Headers {
		headers[k] = v
	}
	for k, v := range overrides {
		headers[k] = v
	}
	return headers
}

func (c *Config) Dump() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(c.FilePath), 0o700); err != nil {
		return fmt.Errorf("unable to create config directory: %s", err)
	}

	file, err := os.OpenFile(c.FilePath+".tmp", os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("unable to open config file: %s", err)
	}
	defer file.Close()

	if err := yaml.NewEncoder(file).Encode(c); err != nil {
		return fmt.Errorf("unable to encode config to YAML: %s", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("unable to close config file: %s", err)
	}

	if err := os.Rename(c.FilePath+".tmp", c.FilePath); err != nil {
		return fmt.Errorf("unable to rename config file: %s", err)
	}

	return nil
}
