// Copyright ©2025 The PDB-GO-DualPredictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dualgo

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

// SimilarityPair records the best semantic match found in the partner
// annotation set for one query term.
type SimilarityPair struct {
	Query string  `json:"query"`
	Match string  `json:"match"`
	Score float64 `json:"score"`
}

const distanceCacheSize = 4096

// A Scorer converts graph distances between GO terms into bounded
// semantic similarity scores. Distances are memoized in an LRU cache
// keyed by the unordered term pair, so scoring two annotation sets does
// not repeat upward walks for terms that appear in many pairs.
type Scorer struct {
	g     *Graph
	cache *lru.Cache[string, pathDistance]
}

type pathDistance struct {
	steps int
	ok    bool
}

// NewScorer returns a Scorer over the given ontology graph.
func NewScorer(g *Graph) *Scorer {
	cache, err := lru.New[string, pathDistance](distanceCacheSize)
	if err != nil {
		panic(err) // lru.New fails only for a non-positive size.
	}
	return &Scorer{g: g, cache: cache}
}

func (s *Scorer) distance(a, b string) (int, bool) {
	if b < a {
		a, b = b, a // Distance is symmetric.
	}
	key := a + "\x00" + b
	if d, ok := s.cache.Get(key); ok {
		return d.steps, d.ok
	}
	steps, ok := s.g.Distance(a, b)
	s.cache.Add(key, pathDistance{steps: steps, ok: ok})
	return steps, ok
}

// Similarity returns the semantic similarity between the GO terms a and
// b: 1/(1+d) for graph distance d, or zero when the terms are
// unresolvable or share no ancestor.
func (s *Scorer) Similarity(a, b string) float64 {
	d, ok := s.distance(a, b)
	if !ok {
		return 0
	}
	return 1 / float64(1+d)
}

// BestMatches returns one SimilarityPair per term of setA that has a
// reachable partner in setB, holding the highest-similarity partner.
// Terms with no reachable partner are absent from the result. Ties are
// broken toward the lexicographically smallest partner identifier, and
// the pairs are ordered by query term, so the result is deterministic
// for any iteration order of the inputs.
func (s *Scorer) BestMatches(setA, setB []string) []SimilarityPair {
	a := sortedUnique(setA)
	b := sortedUnique(setB)

	var pairs []SimilarityPair
	for _, q := range a {
		best := SimilarityPair{Query: q}
		for _, m := range b {
			if sim := s.Similarity(q, m); sim > best.Score {
				best.Match = m
				best.Score = sim
			}
		}
		if best.Score > 0 {
			pairs = append(pairs, best)
		}
	}
	return pairs
}

// ScorePairs scores every term of setA against its best match in setB
// and returns the mean of the best-match similarities together with the
// pairs whose score is at least threshold. The threshold boundary is
// inclusive. With no scored pairs the mean is zero and the pair list
// empty.
func (s *Scorer) ScorePairs(setA, setB []string, threshold float64) (float64, []SimilarityPair) {
	pairs := s.BestMatches(setA, setB)
	return meanScore(pairs), aboveThreshold(pairs, threshold)
}

func meanScore(pairs []SimilarityPair) float64 {
	if len(pairs) == 0 {
		return 0
	}
	scores := make([]float64, len(pairs))
	for i, p := range pairs {
		scores[i] = p.Score
	}
	return stat.Mean(scores, nil)
}

func aboveThreshold(pairs []SimilarityPair, threshold float64) []SimilarityPair {
	high := []SimilarityPair{}
	for _, p := range pairs {
		if p.Score >= threshold {
			high = append(high, p)
		}
	}
	return high
}

func sortedUnique(terms []string) []string {
	s := slices.Clone(terms)
	slices.Sort(s)
	return slices.Compact(s)
}
