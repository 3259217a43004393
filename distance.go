// Copyright ©2025 The PDB-GO-DualPredictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dualgo

// Distance returns the minimum number of parent edges separating the GO
// terms a and b, routed through an ancestor common to both. Parent edges
// are followed exclusively upward; there is no direct path between two
// terms in general since the hierarchy is directed.
//
// The distance of a term to itself is zero and is returned without a
// graph search. The second return value is false when either term does
// not resolve in the graph or the terms share no ancestor; both are
// expected outcomes, not errors.
func (g *Graph) Distance(a, b string) (int, bool) {
	if a == b {
		return 0, true
	}
	ta, ok := g.TermFor(IRI(a))
	if !ok {
		return 0, false
	}
	tb, ok := g.TermFor(IRI(b))
	if !ok {
		return 0, false
	}

	// A single upward walk from each term yields the minimum step count
	// to every one of its ancestors, so the walk is shared across all
	// candidate common ancestors.
	stepsA := g.ancestorDepths(ta)
	stepsB := g.ancestorDepths(tb)

	best := -1
	for id, da := range stepsA {
		db, ok := stepsB[id]
		if !ok {
			continue
		}
		if best < 0 || da+db < best {
			best = da + db
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
