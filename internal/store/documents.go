package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Fixed document keys. Each keyed document is a complete JSON serialization
// of one store's state and is rewritten in full on every mutation, so a
// reload always reproduces exactly what the last successful save wrote.
const (
	KeyStudentProgress   = "linguaLearnStudentProgress"
	KeyOfflineGrades     = "linguaLearnOfflineGrades"
	KeyPersonalizedTests = "linguaLearnPersonalizedTests"
)

// DocumentRepo persists whole JSON documents under fixed keys.
type DocumentRepo interface {
	// Save marshals v and replaces the document stored under key.
	Save(ctx context.Context, key string, v any) error

	// Load unmarshals the document stored under key into v. It returns
	// false and leaves v untouched when no document exists for key.
	Load(ctx context.Context, key string, v any) (bool, error)

	// Delete removes the document stored under key, if any.
	Delete(ctx context.Context, key string) error
}

type documentRepo struct {
	db *sql.DB
}

func (r *documentRepo) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal document %q: %w", key, err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO documents (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(data))
	if err != nil {
		return fmt.Errorf("save document %q: %w", key, err)
	}
	return nil
}

func (r *documentRepo) Load(ctx context.Context, key string, v any) (bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM documents WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load document %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode document %q: %w", key, err)
	}
	return true, nil
}

func (r *documentRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM documents WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete document %q: %w", key, err)
	}
	return nil
}
