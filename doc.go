// Copyright ©2025 The PDB-GO-DualPredictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dualgo compares the GO term annotations produced for one
// protein by two independent prediction pipelines: a structure-based
// predictor emitting per-term confidence scores and a sequence-based
// signature scanner emitting a plain term set.
//
// The comparison has two halves. Exact-match reconciliation computes
// the intersection, the per-source exclusive sets, a confidence-filtered
// intersection and the Jaccard index. Semantic scoring relaxes exact
// matching by pairing each scored term with its closest partner in the
// plain set, where closeness is the shortest path between the two terms
// through a common ancestor in the Gene Ontology DAG and similarity is
// 1/(1+distance). Both halves are assembled into a single Result by
// Compare.
//
// The ontology graph is loaded once from an OBO file with LoadOBO and is
// read-only afterwards; one graph may back any number of concurrent
// comparisons.
package dualgo
