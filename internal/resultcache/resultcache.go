// Copyright ©2025 The PDB-GO-DualPredictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resultcache persists raw prediction-service payloads in a
// sqlite database so a protein fetched once is never fetched again.
package resultcache

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS payloads (
	source     TEXT NOT NULL,
	protein    TEXT NOT NULL,
	payload    BLOB NOT NULL,
	fetched_at TIMESTAMP NOT NULL,
	PRIMARY KEY (source, protein)
);`

// Store is a payload cache keyed by (source, protein).
type Store struct {
	db *sql.DB
}

// Open opens or creates the cache database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("resultcache: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("resultcache: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Put stores the payload for the given source and protein, replacing any
// previous payload.
func (s *Store) Put(source, protein string, payload []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO payloads (source, protein, payload, fetched_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(source, protein) DO UPDATE SET
		   payload = excluded.payload,
		   fetched_at = excluded.fetched_at`,
		source, protein, payload, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("resultcache: put %s/%s: %w", source, protein, err)
	}
	return nil
}

// Get returns the payload stored for the given source and protein. The
// second return value reports whether a payload was present.
func (s *Store) Get(source, protein string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRow(
		"SELECT payload FROM payloads WHERE source = ? AND protein = ?",
		source, protein,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		slog.Debug("payload cache miss", "source", source, "protein", protein)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("resultcache: get %s/%s: %w", source, protein, err)
	}
	slog.Debug("payload cache hit", "source", source, "protein", protein)
	return payload, true, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
