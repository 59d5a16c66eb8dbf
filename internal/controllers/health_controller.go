package controllers

import (
	"net/http"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/app"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/dtos"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

// HealthController checks store connectivity.
type HealthController struct {
	app *app.App
}

func NewHealthController(app *app.App) *HealthController {
	return &HealthController{app}
}

// HealthCheckHandler => GET /health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.app.Ping(r.Context()); err != nil {
		utils.Logger.WithError(err).Error("Store unreachable")
		utils.RespondErrorWithCode(w, http.StatusServiceUnavailable, utils.ErrCodeInternal, "Store unreachable", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "OK"})
}
