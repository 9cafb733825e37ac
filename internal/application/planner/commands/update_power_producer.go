package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// UpdatePowerProducerCommand represents a command to edit one of a producer's
// four requested quantities. Source names the quantity being edited and
// becomes the producer's source of truth; the other three are re-derived on
// the next recompute.
type UpdatePowerProducerCommand struct {
	PlanID     string
	FactoryID  string
	ProducerID string
	Source     string
	Amount     float64
}

// UpdatePowerProducerResponse represents the re-derived producer quantities
type UpdatePowerProducerResponse struct {
	BuildingAmount   float64
	PowerAmount      float64
	FuelAmount       float64
	IngredientAmount float64
}

// UpdatePowerProducerHandler handles the UpdatePowerProducer command
type UpdatePowerProducerHandler struct {
	plans    plan.PlanRepository
	pipeline *services.Pipeline
}

// NewUpdatePowerProducerHandler creates a new UpdatePowerProducerHandler
func NewUpdatePowerProducerHandler(plans plan.PlanRepository, pipeline *services.Pipeline) *UpdatePowerProducerHandler {
	return &UpdatePowerProducerHandler{plans: plans, pipeline: pipeline}
}

// Handle executes the UpdatePowerProducer command
func (h *UpdatePowerProducerHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*UpdatePowerProducerCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *UpdatePowerProducerCommand")
	}

	source := plan.UpdateSource(cmd.Source)
	if !source.Valid() {
		return nil, &plan.ErrUnknownUpdateSource{Source: cmd.Source}
	}

	p, f, err := loadFactory(ctx, h.plans, cmd.PlanID, cmd.FactoryID)
	if err != nil {
		return nil, err
	}

	var producer *plan.PowerProducer
	for _, candidate := range f.PowerProducers {
		if candidate.ID == cmd.ProducerID {
			producer = candidate
			break
		}
	}
	if producer == nil {
		return nil, &plan.ErrProducerNotFound{FactoryID: f.ID, ProducerID: cmd.ProducerID}
	}

	switch source {
	case plan.UpdatedBuildings:
		producer.BuildingAmount = cmd.Amount
	case plan.UpdatedFuel:
		producer.FuelAmount = cmd.Amount
	case plan.UpdatedPower:
		producer.PowerAmount = cmd.Amount
	case plan.UpdatedIngredient:
		producer.IngredientAmount = cmd.Amount
	}
	producer.Updated = source

	if err := recalculateAndSave(ctx, h.plans, h.pipeline, p); err != nil {
		return nil, err
	}

	return &UpdatePowerProducerResponse{
		BuildingAmount:   producer.BuildingAmount,
		PowerAmount:      producer.PowerAmount,
		FuelAmount:       producer.FuelAmount,
		IngredientAmount: producer.IngredientAmount,
	}, nil
}
