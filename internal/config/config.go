package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "litbuilder.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"

	// DefaultEntry is the default descriptor file.
	DefaultEntry = "page.json"
)

// Config represents the complete litbuilder.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Entry is the descriptor file (JSON or YAML) compiled by build
	// and served by the preview server.
	Entry string `json:"entry,omitempty"`

	// Title is the page title used for the document shell.
	Title string `json:"title,omitempty"`

	// Lang is the html lang attribute.
	Lang string `json:"lang,omitempty"`

	// Output is the build output directory.
	Output string `json:"output,omitempty"`

	// StyleSheets are stylesheet paths linked from the document head.
	StyleSheets []string `json:"styleSheets,omitempty"`

	// Dev contains preview server configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// Publish contains S3 publish configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// DevConfig contains preview server configuration.
type DevConfig struct {
	// Port is the preview server port.
	Port int `json:"port,omitempty"`

	// Host is the preview server host.
	Host string `json:"host,omitempty"`
}

// PublishConfig contains S3 publish configuration.
type PublishConfig struct {
	// Bucket is the target S3 bucket.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the key prefix for uploaded objects.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region.
	Region string `json:"region,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Entry:  DefaultEntry,
		Output: DefaultOutput,
		Dev: DevConfig{
			Port: DefaultPort,
			Host: DefaultHost,
		},
	}
}

// Load reads litbuilder.json from the given directory.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	cfg.configPath = path

	return cfg, nil
}

// LoadFromWorkingDir loads the config from the current working directory,
// falling back to defaults when no config file exists.
func LoadFromWorkingDir() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Path returns the path the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills zero-valued fields after unmarshaling.
func (c *Config) applyDefaults() {
	if c.Entry == "" {
		c.Entry = DefaultEntry
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
}

// Validate checks the config for values that cannot work.
func (c *Config) Validate() error {
	if c.Dev.Port < 0 || c.Dev.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Dev.Port)
	}
	if c.Entry == "" {
		return fmt.Errorf("config: entry must not be empty")
	}
	return nil
}
