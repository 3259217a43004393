// Copyright ©2025 The PDB-GO-DualPredictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dualgo

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/formats/rdf"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/set/uid"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/LgxJGOOD/PDB-GO-DualPredictor/internal/obo"
)

// Qualified names used by the ontology statements held in a Graph. All
// statements use the local namespace form.
const (
	goTerm       = "<obo:GO_"
	subClassOf   = "<rdfs:subClassOf>"
	partOf       = "<obo:BFO_0000050>"
	label        = "<rdfs:label>"
	hasNamespace = "<oboInOwl:hasOBONamespace>"
)

// The three top-level terms of the Gene Ontology.
var standardRoots = []string{
	"<obo:GO_0003674>", // molecular_function
	"<obo:GO_0005575>", // cellular_component
	"<obo:GO_0008150>", // biological_process
}

// IRI returns the graph IRI for a GO identifier in the GO:NNNNNNN form.
func IRI(goID string) string {
	return goTerm + strings.TrimPrefix(goID, "GO:") + ">"
}

// GOID returns the GO:NNNNNNN identifier for a term IRI held by a Graph.
// It is the inverse of IRI for GO terms and returns the empty string for
// IRIs outside the GO namespace.
func GOID(iri string) string {
	if !strings.HasPrefix(iri, goTerm) {
		return ""
	}
	return "GO:" + strings.TrimSuffix(strings.TrimPrefix(iri, goTerm), ">")
}

// Graph is a Gene Ontology graph loaded from an OBO ontology file. The
// graph is write-once: statements are added during loading and the graph
// is treated as read-only afterwards, so one Graph may be shared by any
// number of concurrent comparisons.
type Graph struct {
	nodes map[int64]graph.Node
	from  map[int64]map[int64]map[int64]graph.Line
	to    map[int64]map[int64]map[int64]graph.Line
	pred  map[int64]map[*rdf.Statement]bool

	termIDs map[string]int64
	ids     *uid.Set
}

// NewGraph returns a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[int64]graph.Node),
		from:  make(map[int64]map[int64]map[int64]graph.Line),
		to:    make(map[int64]map[int64]map[int64]graph.Line),
		pred:  make(map[int64]map[*rdf.Statement]bool),

		termIDs: make(map[string]int64),
		ids:     uid.NewSet(),
	}
}

// LoadOBO returns the Graph for the ontology stored in an OBO file read
// from r. Obsolete terms are not present in the returned graph.
func LoadOBO(r io.Reader) (*Graph, error) {
	g := NewGraph()
	dec := obo.NewDecoder(r)
	for {
		s, err := dec.Unmarshal()
		if err != nil {
			if err != io.EOF {
				return nil, fmt.Errorf("dualgo: error decoding ontology: %w", err)
			}
			break
		}
		g.AddStatement(s)
	}
	return g, nil
}

// addNode adds n to the graph. It panics if the added node ID matches an
// existing node ID.
func (g *Graph) addNode(n graph.Node) {
	if _, exists := g.nodes[n.ID()]; exists {
		panic(fmt.Sprintf("dualgo: node ID collision: %d", n.ID()))
	}
	g.nodes[n.ID()] = n
	g.ids.Use(n.ID())
}

// AddStatement adds s to the graph. It panics if rdf.Term UIDs in the
// statement are not consistent with existing terms in the graph.
// Statements must not be altered while being held by the graph. If the
// UID fields of the terms in s are zero, they will be set to values
// consistent with the rest of the graph on return, mutating the parameter,
// otherwise the UIDs must match terms that already exist in the graph.
// All IRIs must use the local qualified name form emitted by the OBO
// decoder; globally namespaced statements are rejected.
func (g *Graph) AddStatement(s *rdf.Statement) {
	text, _, kind, err := s.Predicate.Parts()
	if err != nil {
		panic(fmt.Errorf("dualgo: error extracting predicate: %w", err))
	}
	if kind != rdf.IRI {
		panic(fmt.Errorf("dualgo: predicate is not an IRI: %s", s.Predicate.Value))
	}
	if strings.HasPrefix(text, "http:") || strings.HasPrefix(text, "https:") {
		panic(fmt.Errorf("dualgo: adding predicate with global IRI: %s", s.Predicate.Value))
	}

	_, _, kind, err = s.Subject.Parts()
	if err != nil {
		panic(fmt.Errorf("dualgo: error extracting subject: %w", err))
	}
	switch kind {
	case rdf.IRI, rdf.Blank:
	default:
		panic(fmt.Errorf("dualgo: subject is not an IRI or blank node: %s", s.Subject.Value))
	}

	_, _, kind, err = s.Object.Parts()
	if err != nil {
		panic(fmt.Errorf("dualgo: error extracting object: %w", err))
	}
	if kind == rdf.Invalid {
		panic(fmt.Errorf("dualgo: object is not a valid term: %s", s.Object.Value))
	}

	statements, ok := g.pred[s.Predicate.UID]
	if !ok {
		statements = make(map[*rdf.Statement]bool)
		g.pred[s.Predicate.UID] = statements
	}
	statements[s] = true
	g.addTerm(&s.Subject)
	g.addTerm(&s.Predicate)
	g.addTerm(&s.Object)
	g.setLine(s)
}

// addTerm adds t to the graph. It panics if the added term's ID collides
// with an existing term's ID.
func (g *Graph) addTerm(t *rdf.Term) {
	if t.UID == 0 {
		id, ok := g.termIDs[t.Value]
		if ok {
			t.UID = id
			return
		}
		id = g.ids.NewID()
		g.ids.Use(id)
		t.UID = id
		g.termIDs[t.Value] = id
		return
	}

	id, ok := g.termIDs[t.Value]
	if !ok {
		g.termIDs[t.Value] = t.UID
	} else if id != t.UID {
		panic(fmt.Sprintf("dualgo: term ID collision: term:%s new ID:%d old ID:%d", t.Value, t.UID, id))
	}
}

// isParentStatement returns whether s relates a GO term to one of its
// direct parents. Both is_a and part_of relationships define the term
// hierarchy used for ancestor traversal.
func isParentStatement(s *rdf.Statement) bool {
	if !strings.HasPrefix(s.Object.Value, goTerm) {
		return false
	}
	return s.Predicate.Value == subClassOf || s.Predicate.Value == partOf
}

// isParentEdge is a traverse edge filter accepting edges that carry a
// parent relationship between GO terms.
func isParentEdge(e graph.Edge) bool {
	return ConnectedByAny(e, isParentStatement)
}

// TermFor returns the rdf.Term for the given text. The text must be
// an exact match for the rdf.Term's Value field.
func (g *Graph) TermFor(text string) (term rdf.Term, ok bool) {
	id, ok := g.termIDs[text]
	if !ok {
		return
	}
	n, ok := g.nodes[id]
	if !ok {
		var s map[*rdf.Statement]bool
		s, ok = g.pred[id]
		if !ok {
			return
		}
		for k := range s {
			return k.Predicate, true
		}
	}
	return n.(rdf.Term), true
}

// ParentsOf returns the direct parents of the term t via is_a and part_of
// relationships.
func (g *Graph) ParentsOf(t rdf.Term) []rdf.Term {
	return g.Query(t).Out(isParentStatement).Unique().Result()
}

// AncestorsOf returns the ancestor closure of the GO term with the given
// GO:NNNNNNN identifier: every term reachable by repeatedly following
// parent edges, including the term itself. The second return value is
// false if the identifier does not resolve in the graph.
func (g *Graph) AncestorsOf(goID string) (map[string]bool, bool) {
	t, ok := g.TermFor(IRI(goID))
	if !ok {
		return nil, false
	}
	closure := make(map[string]bool)
	for id := range g.ancestorDepths(t) {
		closure[GOID(g.nodes[id].(rdf.Term).Value)] = true
	}
	return closure, true
}

// ancestorDepths walks up the parent edges from t and returns the minimum
// number of edges from t to each of its ancestors, keyed by node ID. The
// map includes t itself at depth zero.
func (g *Graph) ancestorDepths(t rdf.Term) map[int64]int {
	depths := make(map[int64]int)
	bf := traverse.BreadthFirst{Traverse: isParentEdge}
	bf.Walk(g, t, func(n graph.Node, d int) bool {
		depths[n.ID()] = d
		return false
	})
	return depths
}

// IsDescendantOf returns whether the query q is a descendant of a and how
// many levels separate them if it is. If q is not a descendant of a, depth
// will be negative.
func (g *Graph) IsDescendantOf(a, q rdf.Term) (yes bool, depth int) {
	depth = -1
	if !strings.HasPrefix(a.Value, goTerm) || !strings.HasPrefix(q.Value, goTerm) {
		return
	}
	bf := traverse.BreadthFirst{Traverse: isParentEdge}
	bf.Walk(g, q, func(n graph.Node, d int) bool {
		if n == a {
			yes = true
			depth = d
			return true
		}
		return false
	})
	return yes, depth
}

// NameOf returns the human-readable name recorded for the term t, or the
// empty string if none was recorded.
func (g *Graph) NameOf(t rdf.Term) string {
	return g.literalFor(t, label)
}

// NamespaceOf returns the ontology aspect recorded for the term t, or the
// empty string if none was recorded.
func (g *Graph) NamespaceOf(t rdf.Term) string {
	return g.literalFor(t, hasNamespace)
}

func (g *Graph) literalFor(t rdf.Term, pred string) string {
	r := g.Query(t).Out(func(s *rdf.Statement) bool {
		return s.Predicate.Value == pred
	}).Result()
	if len(r) == 0 {
		return ""
	}
	text, _, kind, err := r[0].Parts()
	if err != nil {
		panic(fmt.Errorf("dualgo: invalid term in graph: %w", err))
	}
	if kind != rdf.Literal {
		return r[0].Value
	}
	return text
}

// Roots returns all the roots of the graph. It will first attempt to find
// roots from the three known roots molecular_function, cellular_component
// and biological_process and if none can be found, will search from all GO
// terms for the complete set of roots. If force is true, a complete search
// will be done.
func (g *Graph) Roots(force bool) []rdf.Term {
	rootSet := make(map[rdf.Term]bool)

	for _, r := range standardRoots {
		if t, ok := g.TermFor(r); ok {
			rootSet[t] = true
		}
	}

	// If we have any roots and we haven't been asked to force finding
	// all roots, we're done. Otherwise, search from all nodes to find
	// their roots.
	if force || len(rootSet) == 0 {
		for _, n := range g.nodes {
			t, ok := n.(rdf.Term)
			if !ok || !strings.HasPrefix(t.Value, goTerm) {
				continue
			}
			df := traverse.DepthFirst{Traverse: isParentEdge}
			final := df.Walk(g, t, func(n graph.Node) bool {
				t := n.(rdf.Term)
				if !strings.HasPrefix(t.Value, goTerm) {
					return false
				}
				// If we can reach another parent, we are not done yet.
				more := g.Query(t).Out(isParentStatement)
				return len(more.Result()) == 0
			})
			if final != nil {
				rootSet[final.(rdf.Term)] = true
			}
		}
	}

	var roots []rdf.Term
	for r := range rootSet {
		roots = append(roots, r)
	}

	return roots
}

// Edge returns the edge from u to v if such an edge exists and nil otherwise.
// The node v must be directly reachable from u as defined by the From method.
// The returned graph.Edge is a multi.Edge if an edge exists.
func (g *Graph) Edge(uid, vid int64) graph.Edge {
	l := g.Lines(uid, vid)
	if l == nil {
		return nil
	}
	return multi.Edge{F: g.Node(uid), T: g.Node(vid), Lines: l}
}

// Edges returns all the edges in the graph. Each edge in the returned slice
// is a multi.Edge.
func (g *Graph) Edges() graph.Edges {
	if len(g.nodes) == 0 {
		return graph.Empty
	}
	var edges []graph.Edge
	for _, u := range g.nodes {
		for _, e := range g.from[u.ID()] {
			var lines []graph.Line
			for _, l := range e {
				lines = append(lines, l)
			}
			if len(lines) != 0 {
				edges = append(edges, multi.Edge{
					F:     g.Node(u.ID()),
					T:     g.Node(lines[0].To().ID()),
					Lines: iterator.NewOrderedLines(lines),
				})
			}
		}
	}
	if len(edges) == 0 {
		return graph.Empty
	}
	return iterator.NewOrderedEdges(edges)
}

// From returns all nodes in g that can be reached directly from n.
//
// The returned graph.Nodes is only valid until the next mutation of
// the receiver.
func (g *Graph) From(id int64) graph.Nodes {
	if len(g.from[id]) == 0 {
		return graph.Empty
	}
	return iterator.NewNodesByLines(g.nodes, g.from[id])
}

// HasEdgeBetween returns whether an edge exists between nodes x and y without
// considering direction.
func (g *Graph) HasEdgeBetween(xid, yid int64) bool {
	if _, ok := g.from[xid][yid]; ok {
		return true
	}
	_, ok := g.from[yid][xid]
	return ok
}

// HasEdgeFromTo returns whether an edge exists in the graph from u to v.
func (g *Graph) HasEdgeFromTo(uid, vid int64) bool {
	_, ok := g.from[uid][vid]
	return ok
}

// Lines returns the lines from u to v if any such lines exist and nil
// otherwise. The node v must be directly reachable from u as defined by
// the From method.
func (g *Graph) Lines(uid, vid int64) graph.Lines {
	edge := g.from[uid][vid]
	if len(edge) == 0 {
		return graph.Empty
	}
	var lines []graph.Line
	for _, l := range edge {
		lines = append(lines, l)
	}
	return iterator.NewOrderedLines(lines)
}

// Node returns the node with the given ID if it exists in the graph,
// and nil otherwise.
func (g *Graph) Node(id int64) graph.Node {
	return g.nodes[id]
}

// Nodes returns all the nodes in the graph.
//
// The returned graph.Nodes is only valid until the next mutation of
// the receiver.
func (g *Graph) Nodes() graph.Nodes {
	if len(g.nodes) == 0 {
		return graph.Empty
	}
	return iterator.NewNodes(g.nodes)
}

// setLine adds l, a line from one node to another. If the nodes do not exist,
// they are added, and are set to the nodes of the line otherwise.
func (g *Graph) setLine(l graph.Line) {
	var (
		from = l.From()
		fid  = from.ID()
		to   = l.To()
		tid  = to.ID()
		lid  = l.ID()
	)

	if _, ok := g.nodes[fid]; !ok {
		g.addNode(from)
	} else {
		g.nodes[fid] = from
	}
	if _, ok := g.nodes[tid]; !ok {
		g.addNode(to)
	} else {
		g.nodes[tid] = to
	}

	switch {
	case g.from[fid] == nil:
		g.from[fid] = map[int64]map[int64]graph.Line{tid: {lid: l}}
	case g.from[fid][tid] == nil:
		g.from[fid][tid] = map[int64]graph.Line{lid: l}
	default:
		g.from[fid][tid][lid] = l
	}
	switch {
	case g.to[tid] == nil:
		g.to[tid] = map[int64]map[int64]graph.Line{fid: {lid: l}}
	case g.to[tid][fid] == nil:
		g.to[tid][fid] = map[int64]graph.Line{lid: l}
	default:
		g.to[tid][fid][lid] = l
	}

	g.ids.Use(lid)
}

// AllStatements returns an iterator of the statements that make up the graph.
func (g *Graph) AllStatements() *Statements {
	return &Statements{eit: g.Edges()}
}

// Statements returns an iterator of the statements that connect the subject
// term node u to the object term node v.
func (g *Graph) Statements(uid, vid int64) *Statements {
	return &Statements{lit: g.Lines(uid, vid)}
}

// To returns all nodes in g that can reach directly to n.
//
// The returned graph.Nodes is only valid until the next mutation of
// the receiver.
func (g *Graph) To(id int64) graph.Nodes {
	if len(g.to[id]) == 0 {
		return graph.Empty
	}
	return iterator.NewNodesByLines(g.nodes, g.to[id])
}

// Statements is an RDF statement iterator.
type Statements struct {
	eit graph.Edges
	lit graph.Lines
}

// Next returns whether the iterator holds any additional statements.
func (s *Statements) Next() bool {
	if s.lit != nil && s.lit.Next() {
		return true
	}
	if s.eit == nil || !s.eit.Next() {
		return false
	}
	s.lit = s.eit.Edge().(multi.Edge).Lines
	return s.lit.Next()
}

// Statement returns the current statement.
func (s *Statements) Statement() *rdf.Statement {
	return s.lit.Line().(*rdf.Statement)
}

// ConnectedByAny is a helper function for simplifying graph traversal
// conditions.
func ConnectedByAny(e graph.Edge, with func(*rdf.Statement) bool) bool {
	it, ok := e.(multi.Edge)
	if !ok {
		return false
	}
	for it.Next() {
		s, ok := it.Line().(*rdf.Statement)
		if !ok {
			continue
		}
		ok = with(s)
		if ok {
			return true
		}
	}
	return false
}
