// Copyright ©2025 The PDB-GO-DualPredictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dualgo

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
)

// Options hold the comparison cutoffs supplied by the caller.
type Options struct {
	// ConfidenceThreshold is the minimum structure-predictor score for
	// an exact match to count as high confidence.
	ConfidenceThreshold float64
	// SimilarityThreshold is the minimum semantic similarity for a
	// best-match pair to be reported as high similarity. The boundary
	// is inclusive.
	SimilarityThreshold float64
}

// DefaultOptions returns the conventional cutoffs: 0.8 confidence and
// 0.7 similarity.
func DefaultOptions() Options {
	return Options{ConfidenceThreshold: 0.8, SimilarityThreshold: 0.7}
}

// Result is the reconciled comparison of the two annotation pipelines
// for one protein. All term slices are sorted, so identical inputs and
// an unchanged ontology graph always produce identical contents.
type Result struct {
	Protein string `json:"protein,omitempty"`

	StructureCount int `json:"structure_count"`
	SequenceCount  int `json:"sequence_count"`

	Common              []string `json:"common"`
	CommonCount         int      `json:"common_count"`
	HighConfidence      []string `json:"high_confidence_common"`
	HighConfidenceCount int      `json:"high_confidence_count"`
	StructureOnly       []string `json:"structure_only"`
	StructureOnlyCount  int      `json:"structure_only_count"`
	SequenceOnly        []string `json:"sequence_only"`
	SequenceOnlyCount   int      `json:"sequence_only_count"`
	Jaccard             float64  `json:"jaccard"`

	Scores map[string]float64 `json:"structure_scores"`

	MeanSimilarity      float64          `json:"semantic_mean_similarity"`
	Pairs               []SimilarityPair `json:"semantic_pairs"`
	HighSimilarity      []SimilarityPair `json:"semantic_high_pairs"`
	HighSimilarityCount int              `json:"semantic_high_count"`
}

// Compare reconciles the scored annotation set produced by the structure
// predictor with the plain annotation set produced by the sequence
// scanner, over the given ontology graph. Both inputs are assumed to be
// already-normalized term collections; the graph is only read. Empty
// inputs yield a well-defined zero-valued result.
func Compare(g *Graph, scored map[string]float64, plain []string, opts Options) *Result {
	if scored == nil {
		scored = map[string]float64{}
	}
	overlap := Reconcile(scored, plain, opts.ConfidenceThreshold)

	scorer := NewScorer(g)
	pairs := scorer.BestMatches(maps.Keys(scored), plain)
	if pairs == nil {
		pairs = []SimilarityPair{}
	}

	high := aboveThreshold(pairs, opts.SimilarityThreshold)

	plainSet := sortedUnique(plain)
	return &Result{
		StructureCount: len(scored),
		SequenceCount:  len(plainSet),

		Common:              overlap.Common,
		CommonCount:         len(overlap.Common),
		HighConfidence:      overlap.HighConfidence,
		HighConfidenceCount: len(overlap.HighConfidence),
		StructureOnly:       overlap.StructureOnly,
		StructureOnlyCount:  len(overlap.StructureOnly),
		SequenceOnly:        overlap.SequenceOnly,
		SequenceOnlyCount:   len(overlap.SequenceOnly),
		Jaccard:             overlap.Jaccard,

		Scores: scored,

		MeanSimilarity:      meanScore(pairs),
		Pairs:               pairs,
		HighSimilarity:      high,
		HighSimilarityCount: len(high),
	}
}

// Text renders the result as a fixed-layout text report.
func (r *Result) Text() string {
	var b strings.Builder
	if r.Protein != "" {
		fmt.Fprintf(&b, "protein:              %s\n", r.Protein)
	}
	fmt.Fprintf(&b, "structure terms:      %d\n", r.StructureCount)
	fmt.Fprintf(&b, "sequence terms:       %d\n", r.SequenceCount)
	fmt.Fprintf(&b, "common (%d):           %s\n", r.CommonCount, termList(r.Common))
	fmt.Fprintf(&b, "high confidence (%d):  %s\n", r.HighConfidenceCount, termList(r.HighConfidence))
	fmt.Fprintf(&b, "structure only (%d):   %s\n", r.StructureOnlyCount, termList(r.StructureOnly))
	fmt.Fprintf(&b, "sequence only (%d):    %s\n", r.SequenceOnlyCount, termList(r.SequenceOnly))
	fmt.Fprintf(&b, "jaccard:              %.4f\n", r.Jaccard)
	fmt.Fprintf(&b, "mean similarity:      %.4f\n", r.MeanSimilarity)
	fmt.Fprintf(&b, "high similarity (%d):\n", r.HighSimilarityCount)
	for _, p := range r.HighSimilarity {
		fmt.Fprintf(&b, "  %s -> %s %.4f\n", p.Query, p.Match, p.Score)
	}
	return b.String()
}

func termList(terms []string) string {
	if len(terms) == 0 {
		return "-"
	}
	return strings.Join(terms, " ")
}
