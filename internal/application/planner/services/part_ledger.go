package services

import (
	"github.com/andrescamacho/satisplanner-go/internal/domain/gamedata"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
	"github.com/andrescamacho/satisplanner-go/internal/domain/shared"
)

// LedgerBuilder rebuilds a factory's part ledger from scratch: demand from
// production, exports and power, supply from imports, raw resources and
// internal production.
type LedgerBuilder struct {
	catalogue gamedata.Catalogue
}

// NewLedgerBuilder creates a ledger builder against an injected catalogue
func NewLedgerBuilder(catalogue gamedata.Catalogue) *LedgerBuilder {
	return &LedgerBuilder{catalogue: catalogue}
}

// Build replaces factory.Parts with a fresh ledger and computes the
// satisfaction of every part.
func (b *LedgerBuilder) Build(f *plan.Factory) {
	f.Parts = make(map[string]*plan.PartMetrics)

	for _, product := range f.Products {
		for part, req := range product.Requirements {
			m := f.Part(part)
			m.AmountRequiredProduction = shared.RoundAmount(m.AmountRequiredProduction + req.Amount)
		}
		m := f.Part(product.ID)
		m.AmountSuppliedViaProduction = shared.RoundAmount(m.AmountSuppliedViaProduction + product.Amount)
		for _, bp := range product.ByProducts {
			bm := f.Part(bp.ID)
			bm.AmountSuppliedViaProduction = shared.RoundAmount(bm.AmountSuppliedViaProduction + bp.Amount)
		}
	}

	for _, producer := range f.PowerProducers {
		for _, ing := range producer.Ingredients {
			m := f.Part(ing.Part)
			m.AmountRequiredPower = shared.RoundAmount(m.AmountRequiredPower + ing.Amount)
		}
		if producer.ByProduct != nil {
			m := f.Part(producer.ByProduct.ID)
			m.AmountSuppliedViaProduction = shared.RoundAmount(m.AmountSuppliedViaProduction + producer.ByProduct.Amount)
		}
	}

	for _, input := range f.Inputs {
		m := f.Part(input.Part)
		m.AmountSuppliedViaInput = shared.RoundAmount(m.AmountSuppliedViaInput + input.Amount)
	}

	// Exports: every request other factories have registered against this one.
	for _, requests := range f.Dependencies.Requests {
		for _, req := range requests {
			m := f.Part(req.Part)
			m.AmountRequiredExports = shared.RoundAmount(m.AmountRequiredExports + req.Amount)
		}
	}

	for id, m := range f.Parts {
		m.AmountRequired = shared.RoundAmount(
			m.AmountRequiredProduction + m.AmountRequiredExports + m.AmountRequiredPower)

		if part, ok := b.catalogue.Part(id); ok {
			m.IsRaw = part.IsRaw
		}
		// Raw resources are treated as infinitely available: supply matches
		// whatever is required.
		if m.IsRaw {
			m.AmountSuppliedViaRaw = m.AmountRequired
		}

		m.AmountSupplied = shared.RoundAmount(
			m.AmountSuppliedViaInput + m.AmountSuppliedViaRaw + m.AmountSuppliedViaProduction)
		m.AmountRemaining = shared.RoundAmount(m.AmountSupplied - m.AmountRequired)
		m.Satisfied = m.IsRaw || m.AmountRemaining >= 0
		m.Exportable = m.AmountSuppliedViaProduction > 0
	}
}
