package services

import (
	"context"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/models"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/store"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

/*
ReconcilerService is the recovery mechanism for the two consistency gaps
the write path tolerates:

  - aggregate drift – a ledger write that succeeded while the follow-up
    property aggregate write failed leaves income/expenses stale; the
    reconciler recomputes them by summation over the payment/expense
    documents, which are the source of truth.
  - orphaned dependents – deleting a property does not cascade; units,
    payments and expenses that still reference the deleted property are
    swept here.

It operates on raw documents across all owners, so it talks to the store
directly rather than through the owner-scoped repositories.
*/
type ReconcilerService struct {
	store store.Store
}

func NewReconcilerService(s store.Store) *ReconcilerService {
	return &ReconcilerService{store: s}
}

func (s *ReconcilerService) Run(ctx context.Context) error {
	props, err := s.store.List(ctx, store.CollectionProperties, nil)
	if err != nil {
		return err
	}
	payments, err := s.store.List(ctx, store.CollectionPayments, nil)
	if err != nil {
		return err
	}
	expenses, err := s.store.List(ctx, store.CollectionExpenses, nil)
	if err != nil {
		return err
	}

	propOwner := make(map[string]any, len(props))
	for _, p := range props {
		propOwner[p.ID] = p.Fields["userId"]
	}

	incomeByProp := sumByProperty(payments, propOwner)
	expensesByProp := sumByProperty(expenses, propOwner)

	repaired := 0
	for _, p := range props {
		income := incomeByProp[p.ID]
		expense := expensesByProp[p.ID]
		if num(p.Fields["income"]) == income && num(p.Fields["expenses"]) == expense {
			continue
		}

		_, err := s.store.Update(ctx, store.CollectionProperties, p.ID, map[string]any{
			"income":        income,
			"expenses":      expense,
			"profitability": models.Profitability(income, expense),
		})
		if err != nil {
			utils.Logger.WithError(err).Warnf("Failed to repair aggregates on property %s", p.ID)
			continue
		}
		repaired++
	}

	swept, err := s.sweepOrphans(ctx, propOwner)
	if err != nil {
		return err
	}

	if repaired > 0 || swept > 0 {
		utils.Logger.Infof("Reconciler repaired %d properties and swept %d orphaned documents", repaired, swept)
	}
	return nil
}

// sweepOrphans deletes units, payments and expenses whose parent property
// no longer exists. Leases only reference a property optionally, so only
// leases with a dangling propertyId are removed.
func (s *ReconcilerService) sweepOrphans(ctx context.Context, propOwner map[string]any) (int, error) {
	swept := 0
	for _, collection := range []string{store.CollectionUnits, store.CollectionPayments, store.CollectionExpenses, store.CollectionLeases} {
		docs, err := s.store.List(ctx, collection, nil)
		if err != nil {
			return swept, err
		}
		for _, d := range docs {
			propID, _ := d.Fields["propertyId"].(string)
			if propID == "" {
				continue
			}
			if _, ok := propOwner[propID]; ok {
				continue
			}
			if err := s.store.Delete(ctx, collection, d.ID); err != nil {
				utils.Logger.WithError(err).Warnf("Failed to sweep orphaned %s document %s", collection, d.ID)
				continue
			}
			swept++
		}
	}
	return swept, nil
}

// sumByProperty totals ledger amounts per property, counting only
// documents whose owner matches the property's owner.
func sumByProperty(docs []*store.Document, propOwner map[string]any) map[string]float64 {
	out := make(map[string]float64)
	for _, d := range docs {
		propID, _ := d.Fields["propertyId"].(string)
		owner, ok := propOwner[propID]
		if !ok || owner != d.Fields["userId"] {
			continue
		}
		out[propID] += num(d.Fields["amount"])
	}
	return out
}

func num(v any) float64 {
	switch n := v.(type) {
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
