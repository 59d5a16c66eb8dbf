package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	doc, err := m.Create(ctx, CollectionProperties, "", map[string]any{
		"name":   "Villa Rawda",
		"userId": "u1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, doc.ID)
	require.Equal(t, int64(1), doc.Version)
	require.False(t, doc.CreatedAt.IsZero())

	got, err := m.GetByID(ctx, CollectionProperties, doc.ID)
	require.NoError(t, err)
	require.Equal(t, "Villa Rawda", got.Fields["name"])
	require.Equal(t, "u1", got.Fields["userId"])

	_, err = m.GetByID(ctx, CollectionProperties, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCreateDuplicateID(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Create(ctx, CollectionTenants, "t-1", map[string]any{"name": "Ali"})
	require.NoError(t, err)

	_, err = m.Create(ctx, CollectionTenants, "t-1", map[string]any{"name": "Omar"})
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestMemoryListFiltersAndOrdering(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	for _, name := range []string{"first", "second", "third"} {
		_, err := m.Create(ctx, CollectionNotifications, "", map[string]any{
			"title":  name,
			"userId": "u1",
		})
		require.NoError(t, err)
	}
	_, err := m.Create(ctx, CollectionNotifications, "", map[string]any{
		"title":  "foreign",
		"userId": "u2",
	})
	require.NoError(t, err)

	docs, err := m.List(ctx, CollectionNotifications, []Filter{{Field: "userId", Value: "u1"}})
	require.NoError(t, err)
	require.Len(t, docs, 3)
	require.Equal(t, "first", docs[0].Fields["title"])
	require.Equal(t, "third", docs[2].Fields["title"])

	desc, err := m.List(ctx, CollectionNotifications, []Filter{{Field: "userId", Value: "u1"}}, DescendingCreation())
	require.NoError(t, err)
	require.Equal(t, "third", desc[0].Fields["title"])
	require.Equal(t, "first", desc[2].Fields["title"])
}

func TestMemoryUpdateMergesAndClears(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	doc, err := m.Create(ctx, CollectionUnits, "", map[string]any{
		"unitNumber": "A-1",
		"tenantId":   "t-1",
		"status":     "occupied",
	})
	require.NoError(t, err)

	updated, err := m.Update(ctx, CollectionUnits, doc.ID, map[string]any{
		"status":   "vacant",
		"tenantId": nil,
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), updated.Version)
	require.Equal(t, "vacant", updated.Fields["status"])
	require.NotContains(t, updated.Fields, "tenantId")
	// untouched fields survive the merge
	require.Equal(t, "A-1", updated.Fields["unitNumber"])
}

func TestMemoryUpdateIfVersion(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	doc, err := m.Create(ctx, CollectionProperties, "", map[string]any{"income": float64(0)})
	require.NoError(t, err)

	updated, err := m.UpdateIfVersion(ctx, CollectionProperties, doc.ID, map[string]any{"income": float64(100)}, doc.Version)
	require.NoError(t, err)
	require.Equal(t, int64(2), updated.Version)

	// stale version loses
	_, err = m.UpdateIfVersion(ctx, CollectionProperties, doc.ID, map[string]any{"income": float64(999)}, doc.Version)
	require.ErrorIs(t, err, ErrVersionConflict)

	got, err := m.GetByID(ctx, CollectionProperties, doc.ID)
	require.NoError(t, err)
	require.Equal(t, float64(100), got.Fields["income"])
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	doc, err := m.Create(ctx, CollectionLeases, "", map[string]any{"tenantId": "t-1"})
	require.NoError(t, err)

	require.NoError(t, m.Delete(ctx, CollectionLeases, doc.ID))
	require.ErrorIs(t, m.Delete(ctx, CollectionLeases, doc.ID), ErrNotFound)

	_, err = m.GetByID(ctx, CollectionLeases, doc.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDocumentsAreCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	doc, err := m.Create(ctx, CollectionTenants, "", map[string]any{"name": "Ali"})
	require.NoError(t, err)

	// mutating a returned document must not leak into the store
	doc.Fields["name"] = "mutated"

	got, err := m.GetByID(ctx, CollectionTenants, doc.ID)
	require.NoError(t, err)
	require.Equal(t, "Ali", got.Fields["name"])
}
