package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/repositories"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

type NotificationController struct {
	notifications repositories.NotificationRepository
}

func NewNotificationController(notifications repositories.NotificationRepository) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// ----------------------------------------------------------------
// GET /api/v1/notifications
// ----------------------------------------------------------------
func (c *NotificationController) ListHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	notifications, err := c.notifications.ListByUser(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err, "Could not list notifications")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, notifications)
}

// ----------------------------------------------------------------
// DELETE /api/v1/notifications/{id}
// ----------------------------------------------------------------
func (c *NotificationController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	if err := c.notifications.Delete(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		respondDomainError(w, err, "Could not delete notification")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
