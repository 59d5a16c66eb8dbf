package services

import (
	"context"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/dtos"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/models"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/repositories"
)

// PortfolioService aggregates an owner's whole portfolio for the
// dashboard. Totals read the cached property aggregates; net profit
// additionally subtracts manually-entered operating costs.
type PortfolioService struct {
	properties repositories.PropertyRepository
	units      repositories.UnitRepository
}

func NewPortfolioService(properties repositories.PropertyRepository, units repositories.UnitRepository) *PortfolioService {
	return &PortfolioService{properties: properties, units: units}
}

func (s *PortfolioService) Summary(ctx context.Context, userID string) (*dtos.DashboardSummaryResponse, error) {
	props, err := s.properties.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	units, err := s.units.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var out dtos.DashboardSummaryResponse
	out.TotalProperties = len(props)

	for _, p := range props {
		out.TotalIncome += p.Income
		out.TotalExpenses += p.Expenses
		out.TotalOperatingCosts += p.OperatingCosts

		// Non-building properties are rentable as a whole.
		if p.Type != models.PropertyTypeBuilding {
			out.TotalUnits++
			if p.Status == models.StatusOccupied {
				out.OccupiedUnits++
			} else {
				out.VacantUnits++
			}
		}
	}

	for _, u := range units {
		out.TotalUnits++
		if u.Status == models.StatusOccupied {
			out.OccupiedUnits++
		} else {
			out.VacantUnits++
		}
	}

	out.NetProfit = out.TotalIncome - (out.TotalExpenses + out.TotalOperatingCosts)
	return &out, nil
}
