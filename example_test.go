// Copyright ©2025 The PDB-GO-DualPredictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dualgo_test

import (
	"fmt"
	"log"
	"strings"

	dualgo "github.com/LgxJGOOD/PDB-GO-DualPredictor"
)

func ExampleCompare() {
	g, err := dualgo.LoadOBO(strings.NewReader(testOBO))
	if err != nil {
		log.Fatal(err)
	}

	// A scored set from the structure predictor and a plain set from
	// the sequence scanner, normally obtained from the service payload
	// normalizers.
	scored := map[string]float64{
		"GO:0000002": 0.4,
		"GO:0000004": 0.9,
	}
	plain := []string{"GO:0000002", "GO:0000003"}

	res := dualgo.Compare(g, scored, plain, dualgo.DefaultOptions())

	fmt.Printf("jaccard: %.4f\n", res.Jaccard)
	fmt.Printf("mean similarity: %.4f\n", res.MeanSimilarity)
	for _, p := range res.Pairs {
		fmt.Printf("%s -> %s %.2f\n", p.Query, p.Match, p.Score)
	}

	// Output:
	// jaccard: 0.3333
	// mean similarity: 0.7500
	// GO:0000002 -> GO:0000002 1.00
	// GO:0000004 -> GO:0000002 0.50
}

func ExampleGraph_Distance() {
	g, err := dualgo.LoadOBO(strings.NewReader(testOBO))
	if err != nil {
		log.Fatal(err)
	}

	// Siblings connect through their closest common ancestor.
	d, ok := g.Distance("GO:0000002", "GO:0000003")
	fmt.Println(d, ok)

	// Terms with no shared ancestor are unreachable, not an error.
	_, ok = g.Distance("GO:0000009", "GO:0000002")
	fmt.Println(ok)

	// Output:
	// 2 true
	// false
}
