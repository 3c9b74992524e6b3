package hive

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage format classes applied to new tables that don't specify their
// own. These match Hive's plain text table defaults.
const (
	DefaultInputFormat  = "org.apache.hadoop.mapred.TextInputFormat"
	DefaultOutputFormat = "org.apache.hadoop.hive.ql.io.HiveIgnoreKeyTextOutputFormat"
	DefaultSerLib       = "org.apache.hadoop.hive.serde2.lazy.LazySimpleSerDe"
)

// Config is the catalog configuration, loadable from a YAML file.
type Config struct {
	// Name of the catalog.
	Name string `yaml:"name"`
	// Warehouse is the root path under which managed table locations are
	// allocated.
	Warehouse string `yaml:"warehouse"`
	// Store configures the embedded metastore record store.
	Store StoreConfig `yaml:"store,omitempty"`
	// Formats override the default storage format classes for new tables.
	Formats FormatConfig `yaml:"formats,omitempty"`
	// Properties are extra catalog-level properties.
	Properties map[string]string `yaml:"properties,omitempty"`
}

type StoreConfig struct {
	Path     string `yaml:"path,omitempty"`
	InMemory bool   `yaml:"inMemory,omitempty"`
}

type FormatConfig struct {
	InputFormat  string `yaml:"inputFormat,omitempty"`
	OutputFormat string `yaml:"outputFormat,omitempty"`
	SerLib       string `yaml:"serLib,omitempty"`
}

// LoadConfig reads and parses a catalog config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Name == "" {
		return nil, fmt.Errorf("config %s: catalog name is required", path)
	}
	return &cfg, nil
}

func (f FormatConfig) inputFormat() string {
	if f.InputFormat != "" {
		return f.InputFormat
	}
	return DefaultInputFormat
}

func (f FormatConfig) outputFormat() string {
	if f.OutputFormat != "" {
		return f.OutputFormat
	}
	return DefaultOutputFormat
}

func (f FormatConfig) serLib() string {
	if f.SerLib != "" {
		return f.SerLib
	}
	return DefaultSerLib
}
