package repositories

import (
	"context"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/models"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/store"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

// NotificationRepository is the append-only notification feed. Nearly
// every mutating operation in the other repositories and services appends
// exactly one record for the acting user.
type NotificationRepository interface {
	Append(ctx context.Context, userID, title, message string) error
	ListByUser(ctx context.Context, userID string) ([]*models.Notification, error)
	Delete(ctx context.Context, id, userID string) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type notificationRepo struct {
	baseOwnedRepo[models.Notification]
}

func NewNotificationRepository(s store.Store) NotificationRepository {
	return &notificationRepo{baseOwnedRepo[models.Notification]{store: s, collection: store.CollectionNotifications}}
}

func (r *notificationRepo) Append(ctx context.Context, userID, title, message string) error {
	_, err := r.create(ctx, map[string]any{
		fieldUserID: userID,
		"title":     title,
		"message":   message,
	})
	return err
}

func (r *notificationRepo) ListByUser(ctx context.Context, userID string) ([]*models.Notification, error) {
	return r.listByUser(ctx, userID, store.DescendingCreation())
}

func (r *notificationRepo) Delete(ctx context.Context, id, userID string) error {
	return r.delete(ctx, id, userID)
}
