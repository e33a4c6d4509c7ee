// Package config defines the immutable run parameters for a sweep and
// loads them from an optional YAML file. Flag values override file values;
// the merged result is fixed for the process lifetime.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFilename is the default configuration filename.
const DefaultConfigFilename = "adsweep.yaml"

// Params holds the run parameters for a sweep.
type Params struct {
	// Filters
	AppName  string `yaml:"app_name"`
	TagKey   string `yaml:"tag_key"`
	TagValue string `yaml:"tag_value"`

	// Deletion behavior
	Force      bool `yaml:"force"`
	Unattended bool `yaml:"unattended"`

	// AWS session
	Region  string `yaml:"region"`
	Profile string `yaml:"profile"`

	// Optional static credentials. When empty the ambient environment
	// (shared config, environment variables, instance metadata) is used.
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`

	// Audit export
	Export ExportConfig `yaml:"export"`
}

// ExportConfig configures the pre-deletion audit export to S3.
type ExportConfig struct {
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
}

// Enabled reports whether an export destination is configured.
func (e ExportConfig) Enabled() bool {
	return e.Bucket != ""
}

// HasFilters reports whether at least one listing filter is set.
func (p *Params) HasFilters() bool {
	return p.AppName != "" || p.TagKey != "" || p.TagValue != ""
}

// Load reads and validates run parameters from a YAML file.
func Load(path string) (*Params, error) {
	p, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return p, nil
}

// LoadWithoutValidation reads run parameters from a YAML file without
// validating them. Useful when flag overrides are applied before
// validation.
func LoadWithoutValidation(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var p Params
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &p, nil
}

// Validate checks cross-field consistency.
func (p *Params) Validate() error {
	if p.Export.Prefix != "" && p.Export.Bucket == "" {
		return fmt.Errorf("export prefix set without an export bucket")
	}
	if (p.AccessKey == "") != (p.SecretKey == "") {
		return fmt.Errorf("access_key and secret_key must be set together")
	}
	return nil
}
