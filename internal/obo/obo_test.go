// Copyright ©2025 The PDB-GO-DualPredictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obo

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/formats/rdf"
)

func decodeAll(t *testing.T, src string) []*rdf.Statement {
	t.Helper()
	dec := NewDecoder(strings.NewReader(src))
	var statements []*rdf.Statement
	for {
		s, err := dec.Unmarshal()
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
		statements = append(statements, s)
	}
	return statements
}

func triples(statements []*rdf.Statement) []string {
	var out []string
	for _, s := range statements {
		out = append(out, s.Subject.Value+" "+s.Predicate.Value+" "+s.Object.Value)
	}
	return out
}

func TestDecoder(t *testing.T) {
	statements := decodeAll(t, `format-version: 1.2
data-version: releases/2024-01-01
ontology: go

[Term]
id: GO:0008150
name: biological_process
namespace: biological_process

[Term]
id: GO:0009056
name: catabolic process
namespace: biological_process
def: "The breakdown of substances." [GOC:curators]
is_a: GO:0008150 ! biological_process
relationship: part_of GO:0008150 ! biological_process

[Typedef]
id: part_of
name: part of
is_transitive: true
`)

	require.Equal(t, []string{
		`<obo:GO_0008150> <rdfs:label> "biological_process"`,
		`<obo:GO_0008150> <oboInOwl:hasOBONamespace> "biological_process"`,
		`<obo:GO_0009056> <rdfs:label> "catabolic process"`,
		`<obo:GO_0009056> <oboInOwl:hasOBONamespace> "biological_process"`,
		`<obo:GO_0009056> <rdfs:subClassOf> <obo:GO_0008150>`,
		`<obo:GO_0009056> <obo:BFO_0000050> <obo:GO_0008150>`,
	}, triples(statements))

	// UIDs are left for the destination graph to assign.
	for _, s := range statements {
		require.Zero(t, s.Subject.UID)
		require.Zero(t, s.Predicate.UID)
		require.Zero(t, s.Object.UID)
	}
}

func TestDecoderSkipsObsolete(t *testing.T) {
	statements := decodeAll(t, `[Term]
id: GO:0000001
name: gone
namespace: biological_process
is_a: GO:0008150 ! biological_process
is_obsolete: true
`)
	require.Empty(t, statements)
}

func TestDecoderSkipsForeignTargets(t *testing.T) {
	// Cross-ontology relationships do not become parent edges.
	statements := decodeAll(t, `[Term]
id: GO:0000001
name: example
is_a: CHEBI:0000001 ! something else
relationship: part_of GO:0000002 ! fine
relationship: regulates GO:0000003 ! not a parent relation
`)
	require.Equal(t, []string{
		`<obo:GO_0000001> <rdfs:label> "example"`,
		`<obo:GO_0000001> <obo:BFO_0000050> <obo:GO_0000002>`,
	}, triples(statements))
}

func TestDecoderEmpty(t *testing.T) {
	dec := NewDecoder(strings.NewReader("format-version: 1.2\n"))
	_, err := dec.Unmarshal()
	require.ErrorIs(t, err, io.EOF)
}

func TestDecoderStatementsAreValidRDF(t *testing.T) {
	for _, s := range decodeAll(t, `[Term]
id: GO:0000001
name: quoted "name" here
namespace: biological_process
`) {
		_, _, kind, err := s.Object.Parts()
		require.NoError(t, err, "object %q", s.Object.Value)
		require.NotEqual(t, rdf.Invalid, kind)
	}
}
