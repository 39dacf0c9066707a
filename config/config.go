package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/flavioheleno/monobitmap"
	"gopkg.in/yaml.v3"
)

// Config represents a manifest of bitmaps to generate
type Config struct {
	Bitmaps []BitmapConfig `yaml:"bitmaps"`

	dir string
}

// BitmapConfig describes a single header to generate
type BitmapConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	// Invert defaults to true when omitted
	Invert *bool `yaml:"invert"`
}

// Load reads and parses the manifest file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.dir = filepath.Dir(path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks if required configuration fields are set
func (c *Config) Validate() error {
	if len(c.Bitmaps) == 0 {
		return fmt.Errorf("%w: bitmaps must list at least one entry", monobitmap.ErrUsage)
	}
	for i, job := range c.Jobs() {
		if err := job.Validate(); err != nil {
			return fmt.Errorf("bitmaps[%d]: %w", i, err)
		}
	}
	return nil
}

// Jobs returns the conversion jobs described by the manifest.
// Relative paths are resolved against the manifest directory.
func (c *Config) Jobs() []monobitmap.Job {
	jobs := make([]monobitmap.Job, 0, len(c.Bitmaps))
	for _, b := range c.Bitmaps {
		invert := true
		if b.Invert != nil {
			invert = *b.Invert
		}
		jobs = append(jobs, monobitmap.Job{
			Input:  c.resolve(b.Input),
			Output: c.resolve(b.Output),
			Name:   b.Name,
			Width:  b.Width,
			Height: b.Height,
			Invert: invert,
		})
	}
	return jobs
}

func (c *Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	return filepath.Join(c.dir, path)
}
