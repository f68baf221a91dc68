package workload

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RequestSpec is a human-editable request list.
//
//	version: "1"
//	requests: [98, 183, 37, 122, 14, 124, 65, 67]
type RequestSpec struct {
	Version  string `yaml:"version"`
	Requests []int  `yaml:"requests"`
}

// LoadRequestSpec reads a YAML request list with strict field checking.
func LoadRequestSpec(path string) (*RequestSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request spec: %w", err)
	}
	var spec RequestSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing request spec: %w", err)
	}
	if len(spec.Requests) == 0 {
		return nil, fmt.Errorf("request spec %s has no requests", path)
	}
	return &spec, nil
}
