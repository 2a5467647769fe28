package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server" json:"server"`
	Seed   SeedConfig   `yaml:"seed" json:"seed"`
	Static StaticConfig `yaml:"static" json:"static"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

type SeedConfig struct {
	Enabled        *bool  `yaml:"enabled" json:"enabled"`
	URL            string `yaml:"url" json:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds"`
}

type StaticConfig struct {
	Dir string `yaml:"dir" json:"dir"`
}

func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.Server.Addr) == "" {
		c.Server.Addr = ":8080"
	}
	if c.Seed.Enabled == nil {
		enabled := true
		c.Seed.Enabled = &enabled
	}
	if strings.TrimSpace(c.Seed.URL) == "" {
		c.Seed.URL = "https://jsonplaceholder.typicode.com/todos?_limit=5"
	}
	if c.Seed.TimeoutSeconds <= 0 {
		c.Seed.TimeoutSeconds = 10
	}
	if strings.TrimSpace(c.Static.Dir) == "" {
		c.Static.Dir = "static"
	}
}

func (c *Config) SeedEnabled() bool {
	return c.Seed.Enabled != nil && *c.Seed.Enabled
}

func (c *Config) SeedTimeout() time.Duration {
	return time.Duration(c.Seed.TimeoutSeconds) * time.Second
}

// Load reads the yaml config at path. A missing file is not an error: the
// service boots on defaults with zero configuration.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	return &c, nil
}

// UseDiskStaticByEnv reports whether static files should be served from disk
// instead of the embedded copies, for frontend iteration.
func UseDiskStaticByEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TICKLIST_DEV_STATIC"))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
