package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

// DB is the subset of pgxpool.Pool the store needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres keeps every collection in one JSONB documents table. Filters
// become containment predicates; partial updates merge server-side so a
// single Update is one atomic statement, matching the remote document
// store's merge semantics.
type Postgres struct {
	db DB
}

func NewPostgres(db DB) *Postgres {
	return &Postgres{db: db}
}

// EnsureSchema creates the documents table and its containment index.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := p.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			collection  TEXT        NOT NULL,
			id          TEXT        NOT NULL,
			data        JSONB       NOT NULL,
			version     BIGINT      NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (collection, id)
		)
	`)
	if err != nil {
		return err
	}
	_, err = p.db.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS documents_data_idx
		ON documents USING GIN (data jsonb_path_ops)
	`)
	return err
}

func (p *Postgres) Create(ctx context.Context, collection, id string, fields map[string]any) (*Document, error) {
	if id == "" {
		id = NewID()
	}
	data, err := json.Marshal(cloneFields(fields))
	if err != nil {
		return nil, err
	}

	row := p.db.QueryRow(ctx, `
		INSERT INTO documents (collection, id, data, version, created_at, updated_at)
		VALUES ($1, $2, $3, 1, NOW(), NOW())
		RETURNING id, data, version, created_at, updated_at
	`, collection, id, data)

	doc, err := scanDocument(row)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateID
		}
		return nil, err
	}
	return doc, nil
}

func (p *Postgres) GetByID(ctx context.Context, collection, id string) (*Document, error) {
	row := p.db.QueryRow(ctx, `
		SELECT id, data, version, created_at, updated_at
		FROM documents WHERE collection=$1 AND id=$2
	`, collection, id)
	return scanDocument(row)
}

func (p *Postgres) List(ctx context.Context, collection string, filters []Filter, opts ...ListOption) ([]*Document, error) {
	o := applyListOptions(opts)

	order := "created_at, id"
	if o.descendingCreation {
		order = "created_at DESC, id DESC"
	}

	sql := `
		SELECT id, data, version, created_at, updated_at
		FROM documents WHERE collection=$1
	`
	args := []any{collection}
	if len(filters) > 0 {
		match := make(map[string]any, len(filters))
		for _, f := range filters {
			match[f.Field] = f.Value
		}
		matchJSON, err := json.Marshal(match)
		if err != nil {
			return nil, err
		}
		sql += ` AND data @> $2::jsonb`
		args = append(args, matchJSON)
	}
	sql += ` ORDER BY ` + order

	rows, err := p.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func (p *Postgres) Update(ctx context.Context, collection, id string, partial map[string]any) (*Document, error) {
	return p.update(ctx, collection, id, partial, false, 0)
}

func (p *Postgres) UpdateIfVersion(ctx context.Context, collection, id string, partial map[string]any, expected int64) (*Document, error) {
	return p.update(ctx, collection, id, partial, true, expected)
}

func (p *Postgres) update(ctx context.Context, collection, id string, partial map[string]any, check bool, expected int64) (*Document, error) {
	set := make(map[string]any, len(partial))
	var cleared []string
	for k, v := range partial {
		if v == nil {
			cleared = append(cleared, k)
			continue
		}
		set[k] = v
	}
	setJSON, err := json.Marshal(set)
	if err != nil {
		return nil, err
	}
	if cleared == nil {
		cleared = []string{}
	}

	sql := `
		UPDATE documents
		SET data = (data || $3::jsonb) - $4::text[], version = version + 1, updated_at = NOW()
		WHERE collection=$1 AND id=$2
	`
	args := []any{collection, id, setJSON, cleared}
	if check {
		sql += ` AND version=$5`
		args = append(args, expected)
	}
	sql += ` RETURNING id, data, version, created_at, updated_at`

	doc, err := scanDocument(p.db.QueryRow(ctx, sql, args...))
	if err == ErrNotFound && check {
		// Distinguish a moved version from a missing document.
		if _, getErr := p.GetByID(ctx, collection, id); getErr == nil {
			return nil, ErrVersionConflict
		}
		return nil, ErrNotFound
	}
	return doc, err
}

func (p *Postgres) Delete(ctx context.Context, collection, id string) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM documents WHERE collection=$1 AND id=$2`, collection, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

/* ---------- internals ---------- */

func scanDocument(row pgx.Row) (*Document, error) {
	var (
		d    Document
		data []byte
	)
	if err := row.Scan(&d.ID, &data, &d.Version, &d.CreatedAt, &d.UpdatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &d.Fields); err != nil {
		return nil, fmt.Errorf("corrupt document %q: %w", d.ID, err)
	}
	return &d, nil
}
