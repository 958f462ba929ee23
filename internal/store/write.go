package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/pathabs/internal/pathabs"
)

// PutSet stores paths under name, replacing any existing set with that
// name. The whole replacement happens in one transaction.
func (s *Store) PutSet(ctx context.Context, name string, paths []pathabs.Path) (string, error) {
	if name == "" {
		return "", fmt.Errorf("put set: empty name")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("put set %q: %w", name, err)
	}
	defer tx.Rollback() // No-op after Commit

	// Entries of the old set go with it via ON DELETE CASCADE.
	if _, err := tx.ExecContext(ctx, `DELETE FROM path_sets WHERE name = ?`, name); err != nil {
		return "", fmt.Errorf("put set %q: %w", name, err)
	}

	seq, err := nextSeq(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("put set %q: %w", name, err)
	}

	id := s.ids.Generate()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO path_sets (id, name, seq) VALUES (?, ?, ?)
	`, id, name, seq); err != nil {
		return "", fmt.Errorf("put set %q: %w", name, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO path_entries (set_id, position, path) VALUES (?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("put set %q: %w", name, err)
	}
	defer stmt.Close()

	for i, p := range paths {
		if _, err := stmt.ExecContext(ctx, id, i, p); err != nil {
			return "", fmt.Errorf("put set %q: position %d: %w", name, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("put set %q: %w", name, err)
	}
	return id, nil
}

// DeleteSet removes the set called name and all of its entries.
func (s *Store) DeleteSet(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM path_sets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete set %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete set %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("delete set %q: %w", name, ErrSetNotFound)
	}
	return nil
}

// nextSeq returns the next logical sequence number for a new set.
func nextSeq(ctx context.Context, tx *sql.Tx) (int64, error) {
	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM path_sets`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next seq: %w", err)
	}
	return seq, nil
}
