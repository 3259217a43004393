// Copyright ©2025 The PDB-GO-DualPredictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dualgo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the run configuration for a comparison.
type Config struct {
	// Ontology is the path to the GO OBO file, optionally gzipped.
	Ontology string `yaml:"ontology"`
	// Cache is the path to the sqlite payload cache. Empty disables
	// caching.
	Cache string `yaml:"cache"`

	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
	SimilarityThreshold float64 `yaml:"similarity_threshold"`

	// StructureScoreFloor drops structure predictions scored below the
	// floor before any comparison.
	StructureScoreFloor float64 `yaml:"structure_score_floor"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() *Config {
	return &Config{
		Ontology:            "go-basic.obo",
		ConfidenceThreshold: 0.8,
		SimilarityThreshold: 0.7,
	}
}

// LoadConfig reads a YAML configuration from path, overlaying the
// defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dualgo: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("dualgo: parse config: %w", err)
	}
	if cfg.ConfidenceThreshold < 0 || cfg.ConfidenceThreshold > 1 {
		return nil, fmt.Errorf("dualgo: confidence_threshold out of range: %v", cfg.ConfidenceThreshold)
	}
	if cfg.SimilarityThreshold < 0 || cfg.SimilarityThreshold > 1 {
		return nil, fmt.Errorf("dualgo: similarity_threshold out of range: %v", cfg.SimilarityThreshold)
	}
	return cfg, nil
}

// Options returns the comparison cutoffs held by the configuration.
func (c *Config) Options() Options {
	return Options{
		ConfidenceThreshold: c.ConfidenceThreshold,
		SimilarityThreshold: c.SimilarityThreshold,
	}
}
