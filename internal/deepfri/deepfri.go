// Copyright ©2025 The PDB-GO-DualPredictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package deepfri normalizes DeepFRI structure-prediction payloads into
// a scored GO annotation set.
//
// The input is the prediction data object the service returns for one
// finished task: chains keyed by identifier, each holding per-model
// prediction lists. Only the GO models (cnn_mf, cnn_bp, cnn_cc) are
// read; the EC model does not emit GO terms.
package deepfri

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// goModels are the prediction models whose terms belong to the Gene
// Ontology, with their conventional aspect abbreviations.
var goModels = map[string]string{
	"cnn_mf": "MF",
	"cnn_bp": "BP",
	"cnn_cc": "CC",
}

var goID = regexp.MustCompile(`^GO:\d{7}$`)

type chain map[string]model

type model struct {
	Predictions []prediction `json:"predictions"`
}

// prediction fields are pointers so that absent required fields are
// detected instead of silently defaulting, which would skew the
// downstream confidence filter.
type prediction struct {
	GOTerm *string  `json:"go_term"`
	Name   string   `json:"go_term_name"`
	Score  *float64 `json:"go_term_score"`
}

// Annotations decodes a DeepFRI prediction data payload and returns the
// predicted GO terms with their scores, across all chains and GO models.
// Predictions scored below floor are dropped. A term predicted more than
// once keeps its highest score.
//
// A prediction missing its go_term or go_term_score field, or carrying a
// malformed GO identifier, is a contract violation and yields an error.
func Annotations(data []byte, floor float64) (map[string]float64, error) {
	var chains map[string]chain
	if err := json.Unmarshal(data, &chains); err != nil {
		return nil, fmt.Errorf("deepfri: decode payload: %w", err)
	}

	scored := make(map[string]float64)
	for chainID, c := range chains {
		for name := range goModels {
			m, ok := c[name]
			if !ok {
				continue
			}
			for i, p := range m.Predictions {
				if p.GOTerm == nil {
					return nil, fmt.Errorf("deepfri: chain %s model %s prediction %d missing go_term", chainID, name, i)
				}
				if p.Score == nil {
					return nil, fmt.Errorf("deepfri: chain %s model %s prediction %d (%s) missing go_term_score", chainID, name, i, *p.GOTerm)
				}
				if !goID.MatchString(*p.GOTerm) {
					return nil, fmt.Errorf("deepfri: chain %s model %s: malformed GO identifier %q", chainID, name, *p.GOTerm)
				}
				if *p.Score < floor {
					continue
				}
				if prev, ok := scored[*p.GOTerm]; !ok || *p.Score > prev {
					scored[*p.GOTerm] = *p.Score
				}
			}
		}
	}
	return scored, nil
}
