package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/SamandarAsiydinov/FirestoreFull/internal/model"
)

var _ model.Collection = (*Collection)(nil)

// Collection stores persons as JSONB documents, one row per document,
// partitioned by collection name.
type Collection struct {
	db   *Connection
	name string
}

func NewCollection(db *Connection, name string) *Collection {
	return &Collection{
		db:   db,
		name: name,
	}
}

func (r *Collection) Insert(ctx context.Context, person model.Person) (string, error) {
	data, err := json.Marshal(person.Map())
	if err != nil {
		return "", fmt.Errorf("failed to encode person: %w", err)
	}

	id := uuid.NewString()
	query := `INSERT INTO person_documents (id, collection, data) VALUES ($1, $2, $3::jsonb)`
	if _, err := r.db.ExecContext(ctx, query, id, r.name, string(data)); err != nil {
		return "", fmt.Errorf("failed to insert person: %w", err)
	}

	return id, nil
}

func (r *Collection) FindEqual(ctx context.Context, person model.Person) ([]model.Document, error) {
	filter, err := json.Marshal(person.Map())
	if err != nil {
		return nil, fmt.Errorf("failed to encode filter: %w", err)
	}

	query := `
		SELECT id, data
		FROM person_documents
		WHERE collection = $1 AND data @> $2::jsonb
		ORDER BY created_at, id`

	return r.query(ctx, query, r.name, string(filter))
}

func (r *Collection) Merge(ctx context.Context, id string, fields model.Fields) error {
	if _, err := uuid.Parse(id); err != nil {
		return model.ErrNotFound
	}

	patch, err := json.Marshal(fields.Map())
	if err != nil {
		return fmt.Errorf("failed to encode fields: %w", err)
	}

	query := `
		UPDATE person_documents
		SET data = data || $3::jsonb, updated_at = NOW()
		WHERE collection = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, r.name, id, string(patch))
	if err != nil {
		return fmt.Errorf("failed to merge person: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *Collection) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return model.ErrNotFound
	}

	const query = `DELETE FROM person_documents WHERE collection = $1 AND id = $2`
	res, err := r.db.ExecContext(ctx, query, r.name, id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *Collection) All(ctx context.Context) ([]model.Document, error) {
	query := `
		SELECT id, data
		FROM person_documents
		WHERE collection = $1
		ORDER BY created_at, id`

	return r.query(ctx, query, r.name)
}

func (r *Collection) query(ctx context.Context, query string, args ...any) ([]model.Document, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query persons: %w", err)
	}
	defer rows.Close()

	var docs []model.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate persons: %w", err)
	}

	return docs, nil
}

func scanDocument(rows *sql.Rows) (model.Document, error) {
	var (
		doc  model.Document
		data []byte
	)
	if err := rows.Scan(&doc.ID, &data); err != nil {
		return model.Document{}, fmt.Errorf("failed to scan person: %w", err)
	}
	if err := json.Unmarshal(data, &doc.Person); err != nil {
		return model.Document{}, fmt.Errorf("failed to decode person %s: %w", doc.ID, err)
	}
	return doc, nil
}
