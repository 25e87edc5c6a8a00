// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultKnowledgeBasePath is where the analyze command looks for the knowledge base document.
	DefaultKnowledgeBasePath = "data/knowledge_base.json"
	// DefaultPredictURL is the prediction endpoint the smoke suite exercises.
	DefaultPredictURL = "http://localhost:8000/predict"
	// defaultRequestTimeout is the default timeout for HTTP requests.
	defaultRequestTimeout = 10 * time.Second
)

// Config represents the top-level application configuration.
type Config struct {
	KnowledgeBasePath string `json:"knowledgeBase,omitempty" mapstructure:"knowledgeBase"`
	PredictURL        string `json:"predictUrl,omitempty" mapstructure:"predictUrl"`
	TimeoutSeconds    int    `json:"timeout,omitempty" mapstructure:"timeout"`
	CasesPath         string `json:"cases,omitempty" mapstructure:"cases"`
	Strict            bool   `json:"strict" mapstructure:"strict"`
	Debug             bool   `json:"debug" mapstructure:"debug"`
	LogFile           string `json:"logFile,omitempty" mapstructure:"logFile"`
	ConfigPath        string `json:"-" mapstructure:"-"`
}

// Default returns a configuration equivalent to running with no config file.
func Default() Config {
	return Config{
		KnowledgeBasePath: DefaultKnowledgeBasePath,
		PredictURL:        DefaultPredictURL,
		TimeoutSeconds:    int(defaultRequestTimeout.Seconds()),
	}
}

// RequestTimeout returns the timeout duration for HTTP requests, falling back to the default if not specified.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// KnowledgeBase returns the knowledge base path, applying the default if not set.
func (c Config) KnowledgeBase() string {
	if path := strings.TrimSpace(c.KnowledgeBasePath); path != "" {
		return path
	}
	return DefaultKnowledgeBasePath
}

// Endpoint returns the prediction endpoint URL, applying the default if not set.
func (c Config) Endpoint() string {
	if url := strings.TrimSpace(c.PredictURL); url != "" {
		return url
	}
	return DefaultPredictURL
}

// LogFilePath returns the path to the application log file, or empty when file logging is disabled.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}

// Load reads the application configuration from the specified path. A missing
// file at the default path is not an error; the tools run on defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = int(defaultRequestTimeout.Seconds())
	}

	return config, nil
}
