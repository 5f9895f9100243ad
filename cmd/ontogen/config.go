package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// projectConfig is the ontogen.yaml project file. Flags override file
// values field by field.
type projectConfig struct {
	// Shapes is the path of the SHACL shapes document.
	Shapes string `yaml:"shapes"`
	// Context is the path of the JSON-LD context document. Optional.
	Context string `yaml:"context"`
	// Target is the output directory.
	Target string `yaml:"target"`
	// Package is the output package import path.
	Package string `yaml:"package"`
	// Header overrides the generated-file header comment.
	Header string `yaml:"header"`
	// PrefixConstants enables the namespace constants table.
	PrefixConstants bool `yaml:"prefix_constants"`
}

// loadProject reads and decodes a project file.
func loadProject(path string) (*projectConfig, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}
	var cfg projectConfig
	if err := yaml.Unmarshal(src, &cfg); err != nil {
		return nil, fmt.Errorf("decode project file %s: %w", path, err)
	}
	return &cfg, nil
}

// merge overlays non-empty flag values onto the file configuration.
func (c *projectConfig) merge(flags projectConfig) {
	if flags.Shapes != "" {
		c.Shapes = flags.Shapes
	}
	if flags.Context != "" {
		c.Context = flags.Context
	}
	if flags.Target != "" {
		c.Target = flags.Target
	}
	if flags.Package != "" {
		c.Package = flags.Package
	}
	if flags.Header != "" {
		c.Header = flags.Header
	}
	if flags.PrefixConstants {
		c.PrefixConstants = true
	}
}

// validate checks the required fields.
func (c *projectConfig) validate() error {
	if c.Shapes == "" {
		return fmt.Errorf("missing shapes document (--shapes or project file)")
	}
	if c.Target == "" {
		return fmt.Errorf("missing target directory (--target or project file)")
	}
	return nil
}
