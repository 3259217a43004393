// Copyright ©2025 The PDB-GO-DualPredictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dualgo compares the GO annotations predicted for one protein by a
// structure-based predictor (DeepFRI) and a sequence-based signature
// scanner (InterProScan), and reports exact and semantic agreement.
package main

import (
	"compress/gzip"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	dualgo "github.com/LgxJGOOD/PDB-GO-DualPredictor"
	"github.com/LgxJGOOD/PDB-GO-DualPredictor/internal/deepfri"
	"github.com/LgxJGOOD/PDB-GO-DualPredictor/internal/interpro"
	"github.com/LgxJGOOD/PDB-GO-DualPredictor/internal/resultcache"
)

func main() {
	var (
		oboPath = flag.String("obo", "", "specify the GO ontology OBO file (.obo/.obo.gz - overrides config)")
		dfPath  = flag.String("deepfri", "", "specify the DeepFRI prediction data JSON")
		iprPath = flag.String("interpro", "", "specify the InterProScan result JSON")
		id      = flag.String("id", "", "protein identifier for the report and payload cache")
		cfgPath = flag.String("config", "", "specify a YAML run configuration")
		asText  = flag.Bool("text", false, "write the report as text instead of JSON")
		help    = flag.Bool("help", false, "print help text")
	)

	flag.Parse()

	if *help {
		flag.Usage()
		fmt.Fprintf(os.Stderr, `
%s compares two GO annotation sets predicted for a single protein: a
scored set from a DeepFRI prediction payload and a plain set from an
InterProScan result payload. It reports the exact-match overlap with a
confidence-filtered intersection and Jaccard index, and the semantic
agreement of near-miss terms via shortest-path distance through the GO
DAG.

Payloads are read from the given files. When a payload cache is
configured, file payloads are recorded under the protein identifier and
omitted payload flags are served from the cache.

The report is written to standard output.

`, filepath.Base(os.Args[0]))
		os.Exit(0)
	}

	cfg := dualgo.DefaultConfig()
	if *cfgPath != "" {
		var err error
		cfg, err = dualgo.LoadConfig(*cfgPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *oboPath == "" {
		*oboPath = cfg.Ontology
	}
	if *oboPath == "" || ((*dfPath == "" || *iprPath == "") && (cfg.Cache == "" || *id == "")) {
		flag.Usage()
		os.Exit(2)
	}

	var store *resultcache.Store
	if cfg.Cache != "" {
		var err error
		store, err = resultcache.Open(cfg.Cache)
		if err != nil {
			log.Fatal(err)
		}
		defer store.Close()
	}

	dfPayload, err := payload(*dfPath, store, "deepfri", *id)
	if err != nil {
		log.Fatal(err)
	}
	iprPayload, err := payload(*iprPath, store, "interpro", *id)
	if err != nil {
		log.Fatal(err)
	}

	scored, err := deepfri.Annotations(dfPayload, cfg.StructureScoreFloor)
	if err != nil {
		log.Fatal(err)
	}
	plain, err := interpro.Annotations(iprPayload)
	if err != nil {
		log.Fatal(err)
	}

	g, err := ontologyGraph(*oboPath)
	if err != nil {
		log.Fatal(err)
	}

	res := dualgo.Compare(g, scored, plain, cfg.Options())
	res.Protein = *id

	if *asText {
		os.Stdout.WriteString(res.Text())
		writeNames(os.Stdout, g, res.Common)
		return
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		log.Fatal(err)
	}
}

// payload returns the raw service payload, preferring the file at path
// and falling back to the cache. File payloads are recorded in the cache
// when one is configured.
func payload(path string, store *resultcache.Store, source, id string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if store != nil && id != "" {
			if err := store.Put(source, id, data); err != nil {
				return nil, err
			}
		}
		return data, nil
	}
	data, ok, err := store.Get(source, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no cached %s payload for %s", source, id)
	}
	return data, nil
}

// writeNames annotates the agreed terms with the name and ontology
// aspect recorded for them in the loaded graph.
func writeNames(w io.Writer, g *dualgo.Graph, terms []string) {
	if len(terms) == 0 {
		return
	}
	fmt.Fprintln(w, "common term names:")
	for _, id := range terms {
		t, ok := g.TermFor(dualgo.IRI(id))
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %s %s (%s)\n", id, g.NameOf(t), g.NamespaceOf(t))
	}
}

// ontologyGraph loads the GO graph from an OBO file, decompressing
// gzipped files by extension.
func ontologyGraph(path string) (*dualgo.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}
	return dualgo.LoadOBO(r)
}
