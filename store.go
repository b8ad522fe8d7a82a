/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/xid"
)

// store holds the single on-disk copy of the assignments for the lifetime
// of the run. The artifact is write-once: there is no update operation.
type store struct {
	path string
	once sync.Once
}

// newStore serializes the assignments to a uniquely named file in the
// system temp directory, readable and writable by the owner only.
func newStore(assignments map[string]string) (*store, error) {
	data, err := json.MarshalIndent(assignments, "", "  ")
	if err != nil {
		return nil, err
	}

	path := filepath.Join(os.TempDir(), "trustee_"+xid.New().String()+".json")

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, err
	}

	return &store{path: path}, nil
}

// Teardown deletes the artifact. Safe to call any number of times, from the
// normal exit path and the signal path both; a missing file is not an error.
func (s *store) Teardown() error {
	var err error

	s.once.Do(func() {
		err = os.Remove(s.path)
		if errors.Is(err, fs.ErrNotExist) {
			err = nil
		}
	})

	return err
}
