package controllers

import (
	"net/http"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/services"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

type DashboardController struct {
	portfolio *services.PortfolioService
}

func NewDashboardController(portfolio *services.PortfolioService) *DashboardController {
	return &DashboardController{portfolio: portfolio}
}

// ----------------------------------------------------------------
// GET /api/v1/dashboard/summary
// ----------------------------------------------------------------
func (c *DashboardController) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	summary, err := c.portfolio.Summary(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err, "Could not build dashboard summary")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}
