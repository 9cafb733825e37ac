package services

import (
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/domain/gamedata"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
	"github.com/andrescamacho/satisplanner-go/internal/domain/shared"
)

// ProductionSolver expands each product's recipe into per-minute ingredient
// demand and byproduct output. A bad product degrades per-item: it is
// skipped, reported, and the rest of the factory still solves.
type ProductionSolver struct {
	catalogue gamedata.Catalogue
	notifier  common.Notifier
}

// NewProductionSolver creates a solver against an injected read-only catalogue
func NewProductionSolver(catalogue gamedata.Catalogue, notifier common.Notifier) *ProductionSolver {
	return &ProductionSolver{catalogue: catalogue, notifier: notifier}
}

// Solve rebuilds every product's derived requirements and byproducts and the
// factory-level byproduct list. Returns the per-item problems it skipped over.
func (s *ProductionSolver) Solve(f *plan.Factory) []error {
	var issues []error

	f.ByProducts = make([]plan.ByProductItem, 0)
	merged := make(map[string]int)

	for _, product := range f.Products {
		product.Requirements = make(map[string]plan.ProductRequirement)
		product.ByProducts = make([]plan.ByProductItem, 0)

		// No recipe selected: the product is inert.
		if product.Recipe == "" {
			continue
		}

		recipe, ok := s.catalogue.Recipe(product.Recipe)
		if !ok {
			issues = append(issues, &plan.ErrUnknownRecipe{Recipe: product.Recipe})
			continue
		}
		primary := recipe.PrimaryProduct()
		if primary == nil || primary.PerMin <= 0 {
			issues = append(issues, shared.NewValidationError("recipe",
				fmt.Sprintf("recipe %s has no usable primary product", recipe.ID)))
			continue
		}

		if product.Amount <= 0 {
			product.Amount = 1
			common.Warn(s.notifier, fmt.Sprintf(
				"amount for %s must be positive, corrected to 1/min", s.catalogue.PartName(product.ID)))
		}

		ratio := product.Amount / primary.PerMin
		for _, ing := range recipe.Ingredients {
			amount := shared.RoundAmount(ing.PerMin * ratio)
			req := product.Requirements[ing.Part]
			req.Amount = shared.RoundAmount(req.Amount + amount)
			product.Requirements[ing.Part] = req
		}

		if primary.Amount <= 0 {
			continue
		}
		for _, bp := range recipe.ByProducts {
			qty := shared.RoundAmount(product.Amount * (bp.Amount / primary.Amount))
			product.ByProducts = append(product.ByProducts, plan.ByProductItem{
				ID:          bp.Part,
				Amount:      qty,
				ByProductOf: product.ID,
			})

			// Factory-level byproducts merge by part id across products.
			if idx, seen := merged[bp.Part]; seen {
				f.ByProducts[idx].Amount = shared.RoundAmount(f.ByProducts[idx].Amount + qty)
			} else {
				merged[bp.Part] = len(f.ByProducts)
				f.ByProducts = append(f.ByProducts, plan.ByProductItem{
					ID:          bp.Part,
					Amount:      qty,
					ByProductOf: product.ID,
				})
			}
		}
	}

	return issues
}
