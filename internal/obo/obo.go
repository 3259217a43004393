// Copyright ©2025 The PDB-GO-DualPredictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obo decodes Gene Ontology OBO files into RDF statements using
// local qualified names.
//
// Each [Term] stanza is rendered as a small set of statements:
//
//	<obo:GO_0008150> <rdfs:label> "biological_process" .
//	<obo:GO_0008150> <oboInOwl:hasOBONamespace> "biological_process" .
//	<obo:GO_0000001> <rdfs:subClassOf> <obo:GO_0008150> .
//	<obo:GO_0000001> <obo:BFO_0000050> <obo:GO_0008150> .
//
// is_a lines become subClassOf statements and part_of relationship lines
// become BFO_0000050 statements. Obsolete terms are dropped entirely.
package obo

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/graph/formats/rdf"
)

const (
	subClassOf   = "<rdfs:subClassOf>"
	partOf       = "<obo:BFO_0000050>"
	label        = "<rdfs:label>"
	hasNamespace = "<oboInOwl:hasOBONamespace>"

	// OBO lines are short, but def and synonym lines in real GO
	// releases can run long.
	scannerBufferSize = 1 << 20
)

// Decoder is an OBO [Term] stanza decoder emitting rdf.Statements.
type Decoder struct {
	sc      *bufio.Scanner
	pending []*rdf.Statement
	err     error
}

// NewDecoder returns a new Decoder reading OBO data from r.
func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, scannerBufferSize), scannerBufferSize)
	return &Decoder{sc: sc}
}

// Unmarshal returns the next statement from the OBO stream. It returns
// io.EOF when the stream is exhausted. The statements' term UIDs are left
// zero for the destination graph to assign.
func (d *Decoder) Unmarshal() (*rdf.Statement, error) {
	for len(d.pending) == 0 {
		if d.err != nil {
			return nil, d.err
		}
		d.next()
	}
	s := d.pending[0]
	d.pending = d.pending[1:]
	return s, nil
}

// next scans forward to the next [Term] stanza and queues its statements.
// Header lines and non-Term stanzas ([Typedef], [Instance]) are skipped.
func (d *Decoder) next() {
	for d.sc.Scan() {
		if d.sc.Text() == "[Term]" {
			d.parseTerm()
			return
		}
	}
	if err := d.sc.Err(); err != nil {
		d.err = err
		return
	}
	d.err = io.EOF
}

// parseTerm consumes one [Term] stanza up to its terminating blank line
// and queues the statements it describes.
func (d *Decoder) parseTerm() {
	type parent struct {
		pred   string
		target string
	}
	var (
		id, name, namespace string
		parents             []parent
		obsolete            bool
	)
	for d.sc.Scan() {
		line := d.sc.Text()
		if line == "" {
			break
		}
		key, val, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		switch key {
		case "id":
			id = val
		case "name":
			name = val
		case "namespace":
			namespace = val
		case "is_a":
			// is_a: GO:0008150 ! biological_process
			target, _, _ := strings.Cut(val, " ! ")
			parents = append(parents, parent{pred: subClassOf, target: strings.TrimSpace(target)})
		case "relationship":
			// relationship: part_of GO:0005575 ! cellular_component
			typ, rest, ok := strings.Cut(val, " ")
			if !ok || typ != "part_of" {
				continue
			}
			target, _, _ := strings.Cut(rest, " ! ")
			parents = append(parents, parent{pred: partOf, target: strings.TrimSpace(target)})
		case "is_obsolete":
			obsolete = val == "true"
		}
	}
	if err := d.sc.Err(); err != nil {
		d.err = err
		return
	}
	if obsolete || !strings.HasPrefix(id, "GO:") {
		return
	}

	subj := iri(id)
	if name != "" {
		d.queue(subj, label, strconv.Quote(name))
	}
	if namespace != "" {
		d.queue(subj, hasNamespace, strconv.Quote(namespace))
	}
	for _, p := range parents {
		if !strings.HasPrefix(p.target, "GO:") {
			continue
		}
		d.queue(subj, p.pred, iri(p.target))
	}
}

func (d *Decoder) queue(subj, pred, obj string) {
	d.pending = append(d.pending, &rdf.Statement{
		Subject:   rdf.Term{Value: subj},
		Predicate: rdf.Term{Value: pred},
		Object:    rdf.Term{Value: obj},
	})
}

// iri returns the local qualified IRI for a GO:NNNNNNN identifier.
func iri(goID string) string {
	return "<obo:GO_" + strings.TrimPrefix(goID, "GO:") + ">"
}
