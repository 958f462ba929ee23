package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/pathabs/internal/pathabs"
)

// PathSet is a stored, ordered list of paths.
type PathSet struct {
	ID    string
	Name  string
	Seq   int64
	Paths []pathabs.Path
}

// SetInfo summarizes a stored set without decoding its paths.
type SetInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Seq   int64  `json:"seq"`
	Count int    `json:"count"`
}

// GetSet loads the set called name. Paths are decoded in order and the
// first one that no longer deserializes (bad text, or the path is gone)
// fails the whole call.
func (s *Store) GetSet(ctx context.Context, name string) (*PathSet, error) {
	set := &PathSet{Name: name}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, seq FROM path_sets WHERE name = ?
	`, name).Scan(&set.ID, &set.Seq)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get set %q: %w", name, ErrSetNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get set %q: %w", name, err)
	}

	// Position order is insertion order; the manifest order survives storage.
	rows, err := s.db.QueryContext(ctx, `
		SELECT position, path
		FROM path_entries
		WHERE set_id = ?
		ORDER BY position ASC
	`, set.ID)
	if err != nil {
		return nil, fmt.Errorf("get set %q: %w", name, err)
	}
	defer rows.Close()

	set.Paths = []pathabs.Path{} // Empty slice, not nil
	for rows.Next() {
		var pos int
		var p pathabs.Path
		// Path.Scan deserializes and checks the path still exists.
		if err := rows.Scan(&pos, &p); err != nil {
			return nil, fmt.Errorf("get set %q: position %d: %w", name, pos, err)
		}
		set.Paths = append(set.Paths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get set %q: %w", name, err)
	}

	return set, nil
}

// ListSets returns every stored set ordered by name.
func (s *Store) ListSets(ctx context.Context) ([]SetInfo, error) {
	// LEFT JOIN keeps empty sets; BINARY collation keeps the order
	// independent of locale.
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.name, s.seq, COUNT(e.position)
		FROM path_sets s
		LEFT JOIN path_entries e ON e.set_id = s.id
		GROUP BY s.id
		ORDER BY s.name COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	defer rows.Close()

	sets := []SetInfo{} // Empty slice, not nil
	for rows.Next() {
		var info SetInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.Seq, &info.Count); err != nil {
			return nil, fmt.Errorf("list sets: %w", err)
		}
		sets = append(sets, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	return sets, nil
}

// SetsContaining returns the names of sets that hold p, ordered by name.
// Serialized text is a bijection of the native path, so text equality is
// path equality.
func (s *Store) SetsContaining(ctx context.Context, p pathabs.Path) ([]string, error) {
	// DISTINCT: a set may hold the same path more than once.
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT s.name
		FROM path_entries e
		JOIN path_sets s ON s.id = e.set_id
		WHERE e.path = ?
		ORDER BY s.name COLLATE BINARY ASC
	`, p)
	if err != nil {
		return nil, fmt.Errorf("sets containing %q: %w", pathabs.Serialize(p), err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("sets containing: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sets containing: %w", err)
	}
	return names, nil
}
