package services

import (
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
	"github.com/andrescamacho/satisplanner-go/internal/domain/shared"
)

// DependencyResolver computes, across the whole factory list, which parts
// are requested from which factories and whether each request is covered by
// the supplying factory's surplus.
//
// Satisfaction depends on supply, which is only known after a factory's own
// solver pass, and factories may reference each other mutually. The pipeline
// therefore resolves twice: once against provisional supply (after which
// hopeless imports are pruned), and once against the settled numbers.
type DependencyResolver struct{}

// NewDependencyResolver creates a resolver
func NewDependencyResolver() *DependencyResolver {
	return &DependencyResolver{}
}

// Resolve rebuilds every factory's dependency requests and metrics. Input
// links referencing a factory that no longer exists, or carrying no part or
// a non-positive amount, are pruned; each pruned link is reported as a
// validation error and the resolve continues degraded-but-usable.
func (r *DependencyResolver) Resolve(factories []*plan.Factory) []error {
	var issues []error

	for _, f := range factories {
		f.Dependencies = plan.NewDependencies()
	}

	for _, f := range factories {
		kept := make([]plan.InputLink, 0, len(f.Inputs))
		for _, input := range f.Inputs {
			source := plan.FindByID(factories, input.FactoryID)
			if source == nil {
				issues = append(issues, shared.NewValidationError("inputs", fmt.Sprintf(
					"factory %q imports %s from missing factory %s; link removed",
					f.Name, input.Part, input.FactoryID)))
				continue
			}
			if input.Part == "" || input.Amount <= 0 {
				issues = append(issues, shared.NewValidationError("inputs", fmt.Sprintf(
					"factory %q has an empty import link from %q; link removed",
					f.Name, source.Name)))
				continue
			}

			kept = append(kept, input)
			source.Dependencies.Requests[f.ID] = append(
				source.Dependencies.Requests[f.ID],
				plan.DependencyRequest{Part: input.Part, Amount: input.Amount},
			)
		}
		f.Inputs = kept
	}

	for _, f := range factories {
		for _, requests := range f.Dependencies.Requests {
			for _, req := range requests {
				m, ok := f.Dependencies.Metrics[req.Part]
				if !ok {
					m = &plan.RequestMetrics{}
					f.Dependencies.Metrics[req.Part] = m
				}
				m.RequestedAmount = shared.RoundAmount(m.RequestedAmount + req.Amount)
			}
		}

		for part, m := range f.Dependencies.Metrics {
			m.SuppliedAmount = exportableSupply(f, part)
			m.Difference = shared.RoundAmount(m.SuppliedAmount - m.RequestedAmount)
			m.IsRequestSatisfied = m.SuppliedAmount >= m.RequestedAmount
		}
	}

	return issues
}

// PruneUnsupplied removes import links whose source factory does not produce
// the requested part at all. Partially covered requests stay and are only
// flagged unsatisfied. Run between the two resolve passes, once provisional
// supply is known.
func (r *DependencyResolver) PruneUnsupplied(factories []*plan.Factory) []error {
	var issues []error

	for _, f := range factories {
		kept := make([]plan.InputLink, 0, len(f.Inputs))
		for _, input := range f.Inputs {
			source := plan.FindByID(factories, input.FactoryID)
			if source != nil && !isExportable(source, input.Part) {
				issues = append(issues, shared.NewValidationError("inputs", fmt.Sprintf(
					"factory %q imports %s from %q, which does not produce it; link removed",
					f.Name, input.Part, source.Name)))
				continue
			}
			kept = append(kept, input)
		}
		f.Inputs = kept
	}

	return issues
}

// exportableSupply is what a factory can actually send out for one part:
// everything supplied minus its own production and power consumption.
func exportableSupply(f *plan.Factory, part string) float64 {
	m, ok := f.Parts[part]
	if !ok || !m.Exportable {
		return 0
	}
	return shared.RoundAmount(m.AmountSupplied - m.AmountRequiredProduction - m.AmountRequiredPower)
}

func isExportable(f *plan.Factory, part string) bool {
	m, ok := f.Parts[part]
	return ok && m.Exportable
}
