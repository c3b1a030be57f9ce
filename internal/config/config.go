// internal/config/config.go

// Package config reads an optional YAML defaults file. File values fill in
// flags the user left at their defaults; explicit flags always win.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File mirrors the YAML defaults file.
type File struct {
	Threads   int    `yaml:"threads"`
	ChunkSize int    `yaml:"chunk_size"`
	Output    string `yaml:"output"`
	Algorithm string `yaml:"algorithm"`

	Rmdup RmdupDefaults `yaml:"rmdup"`
}

// RmdupDefaults sizes the probabilistic seen-set of seqscan-rmdup.
type RmdupDefaults struct {
	ExpectedItems     int     `yaml:"expected_items"`
	FalsePositiveRate float64 `yaml:"false_positive_rate"`
}

// Load parses path. The file was named explicitly on the command line, so a
// missing or malformed file is an error, and unknown keys are rejected.
func Load(path string) (File, error) {
	var f File
	raw, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return f, fmt.Errorf("parse config %s: %w", path, err)
	}
	return f, nil
}
