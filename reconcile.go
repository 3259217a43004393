// Copyright ©2025 The PDB-GO-DualPredictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dualgo

import (
	"golang.org/x/exp/slices"
)

// Overlap is the exact-match reconciliation of a scored annotation set
// (the structure predictor's output) against a plain annotation set (the
// sequence scanner's output). All slices are sorted and never nil.
type Overlap struct {
	Common         []string `json:"common"`
	HighConfidence []string `json:"high_confidence_common"`
	StructureOnly  []string `json:"structure_only"`
	SequenceOnly   []string `json:"sequence_only"`
	Jaccard        float64  `json:"jaccard"`
}

// Reconcile computes the exact-match set comparison between the scored
// and plain annotation sets. HighConfidence holds the members of the
// intersection whose structure-predictor score is at least confidence.
// The Jaccard index is zero when both sets are empty.
func Reconcile(scored map[string]float64, plain []string, confidence float64) Overlap {
	inPlain := make(map[string]bool, len(plain))
	for _, id := range plain {
		inPlain[id] = true
	}

	o := Overlap{
		Common:         []string{},
		HighConfidence: []string{},
		StructureOnly:  []string{},
		SequenceOnly:   []string{},
	}
	for id, score := range scored {
		if inPlain[id] {
			o.Common = append(o.Common, id)
			if score >= confidence {
				o.HighConfidence = append(o.HighConfidence, id)
			}
		} else {
			o.StructureOnly = append(o.StructureOnly, id)
		}
	}
	for id := range inPlain {
		if _, ok := scored[id]; !ok {
			o.SequenceOnly = append(o.SequenceOnly, id)
		}
	}

	union := len(o.Common) + len(o.StructureOnly) + len(o.SequenceOnly)
	if union != 0 {
		o.Jaccard = float64(len(o.Common)) / float64(union)
	}

	slices.Sort(o.Common)
	slices.Sort(o.HighConfidence)
	slices.Sort(o.StructureOnly)
	slices.Sort(o.SequenceOnly)
	return o
}
