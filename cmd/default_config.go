package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the optional defaults file passed with --config.
// All top-level keys must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version     string      `yaml:"version"`
	Run         RunDefaults `yaml:"run"`
	Generate    GenDefaults `yaml:"generate"`
	DefaultSeed int64       `yaml:"default_seed"`
}

// RunDefaults holds defaults for the run command. Zero values mean "not set".
type RunDefaults struct {
	Requests    string   `yaml:"requests"`
	ByteOrder   string   `yaml:"byte_order"`
	Algorithms  []string `yaml:"algorithms"`
	StartPolicy string   `yaml:"start_policy"`
	TraceLevel  string   `yaml:"trace_level"`
	Summary     *bool    `yaml:"summary"`
}

// GenDefaults holds defaults for the generate command.
type GenDefaults struct {
	Out       string `yaml:"out"`
	Count     int    `yaml:"count"`
	ByteOrder string `yaml:"byte_order"`
}

// loadDefaultsConfig parses a defaults YAML file with strict field checking.
func loadDefaultsConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading defaults file %s: %w", path, err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing defaults YAML: %w", err)
	}
	return &cfg, nil
}
