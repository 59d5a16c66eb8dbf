package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/store"
)

// ErrNotFoundOrForbidden is returned whenever zero documents match an
// id+userId pair. Callers cannot tell a missing document from somebody
// else's document.
var ErrNotFoundOrForbidden = errors.New("not_found_or_access_denied")

const fieldUserID = "userId"

/*
baseOwnedRepo gives every entity repository the owner-scoped primitives:

	• create(ctx, fields)          – persist with a generated id
	• getByID(ctx, id, userID)     – fetch and verify the stored owner
	• listByUser(ctx, userID)      – owner-scoped listing
	• update(ctx, id, userID, p)   – owner-verified partial merge
	• delete(ctx, id, userID)      – owner-verified delete, no cascade

Concrete repositories wrap these with notification side-effects and
entity-specific reads.
*/
type baseOwnedRepo[T any] struct {
	store      store.Store
	collection string
}

func (b *baseOwnedRepo[T]) create(ctx context.Context, fields map[string]any) (*T, error) {
	doc, err := b.store.Create(ctx, b.collection, "", fields)
	if err != nil {
		return nil, err
	}
	return decodeDoc[T](doc)
}

func (b *baseOwnedRepo[T]) getByID(ctx context.Context, id, userID string) (*T, error) {
	doc, err := b.getOwnedDoc(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return decodeDoc[T](doc)
}

func (b *baseOwnedRepo[T]) listByUser(ctx context.Context, userID string, opts ...store.ListOption) ([]*T, error) {
	docs, err := b.store.List(ctx, b.collection, []store.Filter{{Field: fieldUserID, Value: userID}}, opts...)
	if err != nil {
		return nil, err
	}
	return decodeDocs[T](docs)
}

func (b *baseOwnedRepo[T]) list(ctx context.Context, filters []store.Filter, opts ...store.ListOption) ([]*T, error) {
	docs, err := b.store.List(ctx, b.collection, filters, opts...)
	if err != nil {
		return nil, err
	}
	return decodeDocs[T](docs)
}

func (b *baseOwnedRepo[T]) update(ctx context.Context, id, userID string, partial map[string]any) (*T, error) {
	if _, err := b.getOwnedDoc(ctx, id, userID); err != nil {
		return nil, err
	}
	doc, err := b.store.Update(ctx, b.collection, id, partial)
	if err != nil {
		return nil, err
	}
	return decodeDoc[T](doc)
}

func (b *baseOwnedRepo[T]) delete(ctx context.Context, id, userID string) error {
	if _, err := b.getOwnedDoc(ctx, id, userID); err != nil {
		return err
	}
	return b.store.Delete(ctx, b.collection, id)
}

// getOwnedDoc collapses "missing" and "not yours" into the same error.
func (b *baseOwnedRepo[T]) getOwnedDoc(ctx context.Context, id, userID string) (*store.Document, error) {
	doc, err := b.store.GetByID(ctx, b.collection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFoundOrForbidden
		}
		return nil, err
	}
	if doc.Fields[fieldUserID] != userID {
		return nil, ErrNotFoundOrForbidden
	}
	return doc, nil
}

/* ---------- document <-> model mapping ---------- */

// decodeDoc normalizes the store-native identifier to the model's `id`
// field and surfaces the store's creation time as `createdAt` for models
// that carry it.
func decodeDoc[T any](doc *store.Document) (*T, error) {
	m := make(map[string]any, len(doc.Fields)+2)
	for k, v := range doc.Fields {
		m[k] = v
	}
	m["id"] = doc.ID
	m["createdAt"] = doc.CreatedAt.Format(time.RFC3339Nano)

	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeDocs[T any](docs []*store.Document) ([]*T, error) {
	out := make([]*T, 0, len(docs))
	for _, doc := range docs {
		v, err := decodeDoc[T](doc)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// toFields flattens a model into store fields. The normalized id and the
// store-owned createdAt never round-trip back into the document payload.
func toFields(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	delete(m, "id")
	delete(m, "createdAt")
	return m, nil
}

// numField reads a numeric document field, treating absent/null as 0.
func numField(fields map[string]any, key string) float64 {
	switch n := fields[key].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
