package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Collection names. Every entity lives in its own named collection as a
// flat document keyed by id; children reference parents by foreign key
// (propertyId), never by nesting.
const (
	CollectionProperties    = "properties"
	CollectionUnits         = "units"
	CollectionTenants       = "tenants"
	CollectionLeases        = "leases"
	CollectionPayments      = "payments"
	CollectionExpenses      = "expenses"
	CollectionNotifications = "notifications"
)

var (
	ErrNotFound        = errors.New("document_not_found")
	ErrVersionConflict = errors.New("document_version_conflict")
	ErrDuplicateID     = errors.New("duplicate_document_id")
)

// Document is the store-native record shape. Fields holds the entity
// payload as decoded JSON (string/float64/bool/nil values).
type Document struct {
	ID        string
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Fields    map[string]any
}

// Filter is an exact-match equality predicate. Multiple filters are ANDed.
type Filter struct {
	Field string
	Value any
}

type listOptions struct {
	descendingCreation bool
}

type ListOption func(*listOptions)

// DescendingCreation orders results most-recently-created first.
func DescendingCreation() ListOption {
	return func(o *listOptions) { o.descendingCreation = true }
}

/* ------------------------------------------------------------------
   Store interface
------------------------------------------------------------------ */

// Store is generic CRUD over named collections. There are no transactions
// and no multi-document atomicity; callers sequence their own writes and
// tolerate partial failure. Update merges partial fields into the stored
// document; a nil value clears the field. UpdateIfVersion is a conditional
// write that fails with ErrVersionConflict when the stored version moved.
type Store interface {
	Create(ctx context.Context, collection, id string, fields map[string]any) (*Document, error)
	GetByID(ctx context.Context, collection, id string) (*Document, error)
	List(ctx context.Context, collection string, filters []Filter, opts ...ListOption) ([]*Document, error)
	Update(ctx context.Context, collection, id string, partial map[string]any) (*Document, error)
	UpdateIfVersion(ctx context.Context, collection, id string, partial map[string]any, expected int64) (*Document, error)
	Delete(ctx context.Context, collection, id string) error
}

// NewID returns a fresh store-unique document id.
func NewID() string {
	return uuid.NewString()
}

func applyListOptions(opts []ListOption) listOptions {
	var o listOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
