// Copyright ©2025 The PDB-GO-DualPredictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dualgo_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/formats/rdf"

	dualgo "github.com/LgxJGOOD/PDB-GO-DualPredictor"
)

// testOBO is a small synthetic GO slice:
//
//	GO:0000001 (root)
//	├── GO:0000002 ──(part_of)── GO:0000005
//	│   └── GO:0000004
//	└── GO:0000003
//	GO:0000009 (disconnected root)
//
// GO:0000099 is obsolete and must not load.
const testOBO = `format-version: 1.2
ontology: go

[Term]
id: GO:0000001
name: metabolic process
namespace: biological_process

[Term]
id: GO:0000002
name: catabolic process
namespace: biological_process
is_a: GO:0000001 ! metabolic process

[Term]
id: GO:0000003
name: biosynthetic process
namespace: biological_process
is_a: GO:0000001 ! metabolic process

[Term]
id: GO:0000004
name: protein catabolic process
namespace: biological_process
is_a: GO:0000002 ! catabolic process

[Term]
id: GO:0000005
name: catabolic complex
namespace: cellular_component
relationship: part_of GO:0000002 ! catabolic process

[Term]
id: GO:0000009
name: detached activity
namespace: molecular_function

[Term]
id: GO:0000099
name: withdrawn process
namespace: biological_process
is_a: GO:0000001 ! metabolic process
is_obsolete: true
`

func testGraph(t *testing.T) *dualgo.Graph {
	t.Helper()
	g, err := dualgo.LoadOBO(strings.NewReader(testOBO))
	require.NoError(t, err)
	return g
}

func mustTerm(t *testing.T, g *dualgo.Graph, goID string) rdf.Term {
	t.Helper()
	term, ok := g.TermFor(dualgo.IRI(goID))
	require.True(t, ok, "no term for %s", goID)
	return term
}

func TestLoadOBO(t *testing.T) {
	g := testGraph(t)

	for _, id := range []string{"GO:0000001", "GO:0000002", "GO:0000003", "GO:0000004", "GO:0000005", "GO:0000009"} {
		_, ok := g.TermFor(dualgo.IRI(id))
		require.True(t, ok, "missing term %s", id)
	}

	_, ok := g.TermFor(dualgo.IRI("GO:0000099"))
	require.False(t, ok, "obsolete term must not load")

	// Two statements for each parentless term, three for each term
	// with one parent.
	n := 0
	for it := g.AllStatements(); it.Next(); {
		require.NotNil(t, it.Statement())
		n++
	}
	require.Equal(t, 16, n)
}

func TestIRIRoundTrip(t *testing.T) {
	require.Equal(t, "<obo:GO_0000001>", dualgo.IRI("GO:0000001"))
	require.Equal(t, "GO:0000001", dualgo.GOID("<obo:GO_0000001>"))
	require.Equal(t, "", dualgo.GOID("<rdfs:subClassOf>"))
}

func TestParentsOf(t *testing.T) {
	g := testGraph(t)

	parents := g.ParentsOf(mustTerm(t, g, "GO:0000004"))
	require.Len(t, parents, 1)
	require.Equal(t, "<obo:GO_0000002>", parents[0].Value)

	// part_of is a parent relationship too.
	parents = g.ParentsOf(mustTerm(t, g, "GO:0000005"))
	require.Len(t, parents, 1)
	require.Equal(t, "<obo:GO_0000002>", parents[0].Value)

	require.Empty(t, g.ParentsOf(mustTerm(t, g, "GO:0000001")))
}

func TestAncestorsOf(t *testing.T) {
	g := testGraph(t)

	closure, ok := g.AncestorsOf("GO:0000004")
	require.True(t, ok)
	require.Equal(t, map[string]bool{
		"GO:0000004": true,
		"GO:0000002": true,
		"GO:0000001": true,
	}, closure)

	// A root's closure is itself.
	closure, ok = g.AncestorsOf("GO:0000009")
	require.True(t, ok)
	require.Equal(t, map[string]bool{"GO:0000009": true}, closure)

	_, ok = g.AncestorsOf("GO:7777777")
	require.False(t, ok)
}

func TestNameAndNamespace(t *testing.T) {
	g := testGraph(t)

	term := mustTerm(t, g, "GO:0000005")
	require.Equal(t, "catabolic complex", g.NameOf(term))
	require.Equal(t, "cellular_component", g.NamespaceOf(term))
}

func TestRoots(t *testing.T) {
	g := testGraph(t)

	var roots []string
	for _, r := range g.Roots(false) {
		roots = append(roots, dualgo.GOID(r.Value))
	}
	sort.Strings(roots)
	require.Equal(t, []string{"GO:0000001", "GO:0000009"}, roots)
}

func TestIsDescendantOf(t *testing.T) {
	g := testGraph(t)

	root := mustTerm(t, g, "GO:0000001")
	leaf := mustTerm(t, g, "GO:0000004")

	yes, depth := g.IsDescendantOf(root, leaf)
	require.True(t, yes)
	require.Equal(t, 2, depth)

	yes, depth = g.IsDescendantOf(leaf, root)
	require.False(t, yes)
	require.Equal(t, -1, depth)
}
