// Copyright ©2025 The PDB-GO-DualPredictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dualgo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	dualgo "github.com/LgxJGOOD/PDB-GO-DualPredictor"
)

func TestSimilarity(t *testing.T) {
	s := dualgo.NewScorer(testGraph(t))

	require.Equal(t, 1.0, s.Similarity("GO:0000004", "GO:0000004"))
	require.Equal(t, 0.5, s.Similarity("GO:0000004", "GO:0000002"))
	require.Equal(t, 0.25, s.Similarity("GO:0000004", "GO:0000003"))

	// Unreachable and unresolvable pairs score zero.
	require.Equal(t, 0.0, s.Similarity("GO:0000009", "GO:0000002"))
	require.Equal(t, 0.0, s.Similarity("GO:7777777", "GO:0000002"))
}

func TestBestMatches(t *testing.T) {
	s := dualgo.NewScorer(testGraph(t))

	pairs := s.BestMatches(
		[]string{"GO:0000004", "GO:0000009"},
		[]string{"GO:0000002", "GO:0000003"},
	)
	// GO:0000009 has no reachable partner and is absent, not zero.
	require.Equal(t, []dualgo.SimilarityPair{
		{Query: "GO:0000004", Match: "GO:0000002", Score: 0.5},
	}, pairs)
}

func TestBestMatchesTieBreak(t *testing.T) {
	s := dualgo.NewScorer(testGraph(t))

	// GO:0000002 and GO:0000003 are both one step from the root; the
	// lexicographically smaller identifier must win.
	pairs := s.BestMatches(
		[]string{"GO:0000001"},
		[]string{"GO:0000003", "GO:0000002"},
	)
	require.Equal(t, []dualgo.SimilarityPair{
		{Query: "GO:0000001", Match: "GO:0000002", Score: 0.5},
	}, pairs)
}

func TestScorePairs(t *testing.T) {
	s := dualgo.NewScorer(testGraph(t))

	setA := []string{"GO:0000002", "GO:0000004"}
	setB := []string{"GO:0000002", "GO:0000003"}

	// Best matches: GO:0000002->GO:0000002 (1.0), GO:0000004->GO:0000002 (0.5).
	mean, high := s.ScorePairs(setA, setB, 0.7)
	require.InDelta(t, 0.75, mean, 1e-12)
	require.Equal(t, []dualgo.SimilarityPair{
		{Query: "GO:0000002", Match: "GO:0000002", Score: 1},
	}, high)

	// The threshold boundary is inclusive.
	_, high = s.ScorePairs(setA, setB, 0.5)
	require.Len(t, high, 2)
	_, high = s.ScorePairs(setA, setB, 0.5000001)
	require.Len(t, high, 1)
}

func TestScorePairsEmpty(t *testing.T) {
	s := dualgo.NewScorer(testGraph(t))

	mean, high := s.ScorePairs(nil, []string{"GO:0000002"}, 0.7)
	require.Equal(t, 0.0, mean)
	require.Empty(t, high)

	mean, high = s.ScorePairs([]string{"GO:0000002"}, nil, 0.7)
	require.Equal(t, 0.0, mean)
	require.Empty(t, high)

	// Fully disconnected sets behave like empty ones.
	mean, high = s.ScorePairs([]string{"GO:0000009"}, []string{"GO:0000002"}, 0.7)
	require.Equal(t, 0.0, mean)
	require.Empty(t, high)
}
