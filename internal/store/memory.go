package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memDoc struct {
	doc *Document
	seq uint64
}

// Memory is the process-local Store used for local development and as the
// behavioral reference in tests. Safe for concurrent use.
type Memory struct {
	mu          sync.Mutex
	collections map[string]map[string]*memDoc
	nextSeq     uint64
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string]map[string]*memDoc)}
}

func (m *Memory) Create(ctx context.Context, collection, id string, fields map[string]any) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	coll := m.collections[collection]
	if coll == nil {
		coll = make(map[string]*memDoc)
		m.collections[collection] = coll
	}
	if id == "" {
		id = NewID()
	}
	if _, exists := coll[id]; exists {
		return nil, ErrDuplicateID
	}

	now := time.Now().UTC()
	m.nextSeq++
	d := &Document{
		ID:        id,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
		Fields:    cloneFields(fields),
	}
	coll[id] = &memDoc{doc: d, seq: m.nextSeq}
	return copyDoc(d), nil
}

func (m *Memory) GetByID(ctx context.Context, collection, id string) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	md, ok := m.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyDoc(md.doc), nil
}

func (m *Memory) List(ctx context.Context, collection string, filters []Filter, opts ...ListOption) ([]*Document, error) {
	o := applyListOptions(opts)

	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []*memDoc
	for _, md := range m.collections[collection] {
		if matchesFilters(md.doc.Fields, filters) {
			matched = append(matched, md)
		}
	}

	// Stable creation order; seq breaks same-instant ties.
	sort.Slice(matched, func(i, j int) bool {
		if o.descendingCreation {
			return matched[i].seq > matched[j].seq
		}
		return matched[i].seq < matched[j].seq
	})

	out := make([]*Document, 0, len(matched))
	for _, md := range matched {
		out = append(out, copyDoc(md.doc))
	}
	return out, nil
}

func (m *Memory) Update(ctx context.Context, collection, id string, partial map[string]any) (*Document, error) {
	return m.update(ctx, collection, id, partial, false, 0)
}

func (m *Memory) UpdateIfVersion(ctx context.Context, collection, id string, partial map[string]any, expected int64) (*Document, error) {
	return m.update(ctx, collection, id, partial, true, expected)
}

func (m *Memory) update(_ context.Context, collection, id string, partial map[string]any, check bool, expected int64) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	md, ok := m.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	if check && md.doc.Version != expected {
		return nil, ErrVersionConflict
	}

	mergeFields(md.doc.Fields, partial)
	md.doc.Version++
	md.doc.UpdatedAt = time.Now().UTC()
	return copyDoc(md.doc), nil
}

func (m *Memory) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	coll := m.collections[collection]
	if _, ok := coll[id]; !ok {
		return ErrNotFound
	}
	delete(coll, id)
	return nil
}

/* ---------- internals ---------- */

func matchesFilters(fields map[string]any, filters []Filter) bool {
	for _, f := range filters {
		if fields[f.Field] != f.Value {
			return false
		}
	}
	return true
}

// mergeFields applies document-style partial updates: nil clears a field,
// anything else replaces it.
func mergeFields(dst, partial map[string]any) {
	for k, v := range partial {
		if v == nil {
			delete(dst, k)
			continue
		}
		dst[k] = v
	}
}

func cloneFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if v == nil {
			continue
		}
		out[k] = v
	}
	return out
}

func copyDoc(d *Document) *Document {
	cp := *d
	cp.Fields = cloneFields(d.Fields)
	return &cp
}
