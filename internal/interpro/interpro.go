// Copyright ©2025 The PDB-GO-DualPredictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interpro normalizes InterProScan result payloads into a plain
// GO annotation set.
//
// The input is the JSON result document of a finished iprscan5 job. GO
// terms are taken from the goXRefs of each match signature's InterPro
// entry; signatures without an integrated entry contribute nothing.
package interpro

import (
	"encoding/json"
	"fmt"
	"regexp"

	"golang.org/x/exp/slices"
)

var goID = regexp.MustCompile(`^GO:\d{7}$`)

type document struct {
	Results json.RawMessage `json:"results"`
}

type result struct {
	Matches []match `json:"matches"`
}

type match struct {
	Signature signature `json:"signature"`
}

type signature struct {
	Accession string `json:"accession"`
	Entry     *entry `json:"entry"`
}

type entry struct {
	Accession string `json:"accession"`
	GOXRefs   []xref `json:"goXRefs"`
}

type xref struct {
	ID       *string `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
}

// Annotations decodes an InterProScan result payload and returns the
// sorted set of GO identifiers cross-referenced by the matched entries.
// The service emits the results field as either a list or, for a single
// query sequence, a bare object; both forms are accepted. A cross
// reference without an id field is a contract violation and yields an
// error; ids outside the GO namespace are skipped.
func Annotations(data []byte) ([]string, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("interpro: decode payload: %w", err)
	}
	if len(doc.Results) == 0 {
		return nil, fmt.Errorf("interpro: payload missing results")
	}

	var results []result
	if err := json.Unmarshal(doc.Results, &results); err != nil {
		var single result
		if err := json.Unmarshal(doc.Results, &single); err != nil {
			return nil, fmt.Errorf("interpro: decode results: %w", err)
		}
		results = []result{single}
	}

	seen := make(map[string]bool)
	for _, res := range results {
		for _, m := range res.Matches {
			if m.Signature.Entry == nil {
				continue
			}
			for _, x := range m.Signature.Entry.GOXRefs {
				if x.ID == nil {
					return nil, fmt.Errorf("interpro: signature %s entry %s: goXRef missing id", m.Signature.Accession, m.Signature.Entry.Accession)
				}
				if !goID.MatchString(*x.ID) {
					continue
				}
				seen[*x.ID] = true
			}
		}
	}

	terms := make([]string, 0, len(seen))
	for id := range seen {
		terms = append(terms, id)
	}
	slices.Sort(terms)
	return terms, nil
}
