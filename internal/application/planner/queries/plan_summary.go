package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
	"github.com/andrescamacho/satisplanner-go/internal/domain/shared"
)

// PlanSummaryQuery represents a query for the rolled-up numbers of a plan
type PlanSummaryQuery struct {
	PlanID string
}

// FactorySummaryDTO is the per-factory rollup inside a plan summary.
type FactorySummaryDTO struct {
	FactoryID      string
	Name           string
	Products       int
	PowerProducers int
	PowerConsumed  float64
	PowerProduced  float64
	HasProblem     bool
	InSync         *bool
}

// PlanSummaryResponse represents the plan-wide rollup
type PlanSummaryResponse struct {
	PlanID        string
	Name          string
	Factories     []FactorySummaryDTO
	PowerConsumed float64
	PowerProduced float64
	Problems      int
}

// PlanSummaryHandler handles the PlanSummary query
type PlanSummaryHandler struct {
	plans plan.PlanRepository
}

// NewPlanSummaryHandler creates a new PlanSummaryHandler
func NewPlanSummaryHandler(plans plan.PlanRepository) *PlanSummaryHandler {
	return &PlanSummaryHandler{plans: plans}
}

// Handle executes the PlanSummary query
func (h *PlanSummaryHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*PlanSummaryQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *PlanSummaryQuery")
	}

	p, err := h.plans.FindByID(ctx, query.PlanID)
	if err != nil {
		return nil, err
	}

	resp := &PlanSummaryResponse{PlanID: p.ID, Name: p.Name}
	for _, f := range p.Factories {
		resp.Factories = append(resp.Factories, FactorySummaryDTO{
			FactoryID:      f.ID,
			Name:           f.Name,
			Products:       len(f.Products),
			PowerProducers: len(f.PowerProducers),
			PowerConsumed:  f.Power.Consumed,
			PowerProduced:  f.Power.Produced,
			HasProblem:     f.HasProblem,
			InSync:         f.InSync,
		})
		resp.PowerConsumed = shared.RoundPower(resp.PowerConsumed + f.Power.Consumed)
		resp.PowerProduced = shared.RoundPower(resp.PowerProduced + f.Power.Produced)
		if f.HasProblem {
			resp.Problems++
		}
	}

	return resp, nil
}
