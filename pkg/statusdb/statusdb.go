//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=statusdb.go -destination=mock_statusdb.gen.go -package=statusdb
package statusdb

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/lerenn/portcheck/pkg/paragraph"
)

const (
	// StatusFile is the status database path relative to the installed directory.
	StatusFile = "vcpkg/status"
	// UpdatesDir holds incremental status files applied on top of StatusFile.
	UpdatesDir = "vcpkg/updates"
)

// Registry gives read access to the installed packages.
type Registry interface {
	// AllRecords returns every installed record, packages and features alike,
	// in database order. Records that are not fully installed are omitted.
	AllRecords() []Record
}

// Database is an installed-package database loaded from disk.
type Database struct {
	records []Record
}

// Ensure Database implements Registry.
var _ Registry = (*Database)(nil)

// Load reads the status file under installedDir and applies every update file
// in lexical order. A later paragraph replaces an earlier one for the same
// package and feature. A workspace without a status file has nothing installed.
func Load(installedDir string) (*Database, error) {
	db := &Database{}
	index := make(map[recordKey]int)

	statusPath := filepath.Join(installedDir, StatusFile)
	if err := db.apply(statusPath, index); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load status database: %w", err)
	}

	updates, err := updateFiles(filepath.Join(installedDir, UpdatesDir))
	if err != nil {
		return nil, fmt.Errorf("failed to list status updates: %w", err)
	}
	for _, path := range updates {
		if err := db.apply(path, index); err != nil {
			return nil, fmt.Errorf("failed to apply status update: %w", err)
		}
	}

	return db, nil
}

func (db *Database) apply(path string, index map[recordKey]int) error {
	paragraphs, err := paragraph.ParseFile(path)
	if err != nil {
		return err
	}
	for _, p := range paragraphs {
		rec, err := recordFromParagraph(p)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if i, ok := index[rec.key()]; ok {
			db.records[i] = rec
			continue
		}
		index[rec.key()] = len(db.records)
		db.records = append(db.records, rec)
	}
	return nil
}

func updateFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// AllRecords implements Registry.
func (db *Database) AllRecords() []Record {
	return installedOnly(db.records)
}

// Len returns the number of records in the database, installed or not.
func (db *Database) Len() int {
	return len(db.records)
}

// Snapshot is an in-memory Registry.
type Snapshot struct {
	records []Record
}

// Ensure Snapshot implements Registry.
var _ Registry = (*Snapshot)(nil)

// NewSnapshot creates a Registry holding the given records.
func NewSnapshot(records ...Record) *Snapshot {
	return &Snapshot{records: append([]Record(nil), records...)}
}

// AllRecords implements Registry.
func (s *Snapshot) AllRecords() []Record {
	return installedOnly(s.records)
}

func installedOnly(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Status.Installed() {
			out = append(out, r)
		}
	}
	return out
}
