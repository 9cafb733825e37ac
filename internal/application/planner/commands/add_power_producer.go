package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/domain/gamedata"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// AddPowerProducerCommand represents a command to add a generator batch to a
// factory
type AddPowerProducerCommand struct {
	PlanID         string
	FactoryID      string
	Building       string
	Recipe         string
	BuildingAmount float64
}

// AddPowerProducerResponse represents the result of adding a power producer
type AddPowerProducerResponse struct {
	ProducerID string
}

// AddPowerProducerHandler handles the AddPowerProducer command
type AddPowerProducerHandler struct {
	plans     plan.PlanRepository
	catalogue gamedata.Catalogue
	pipeline  *services.Pipeline
}

// NewAddPowerProducerHandler creates a new AddPowerProducerHandler
func NewAddPowerProducerHandler(plans plan.PlanRepository, catalogue gamedata.Catalogue, pipeline *services.Pipeline) *AddPowerProducerHandler {
	return &AddPowerProducerHandler{plans: plans, catalogue: catalogue, pipeline: pipeline}
}

// Handle executes the AddPowerProducer command
func (h *AddPowerProducerHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*AddPowerProducerCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AddPowerProducerCommand")
	}

	if _, ok := h.catalogue.PowerRecipe(cmd.Recipe); !ok {
		return nil, &plan.ErrUnknownPowerRecipe{Recipe: cmd.Recipe}
	}
	if _, ok := h.catalogue.Building(cmd.Building); !ok {
		return nil, &plan.ErrUnknownBuilding{Building: cmd.Building}
	}

	p, f, err := loadFactory(ctx, h.plans, cmd.PlanID, cmd.FactoryID)
	if err != nil {
		return nil, err
	}

	producer := f.AddPowerProducer(cmd.Building, cmd.Recipe, cmd.BuildingAmount)
	if err := recalculateAndSave(ctx, h.plans, h.pipeline, p); err != nil {
		return nil, err
	}

	return &AddPowerProducerResponse{ProducerID: producer.ID}, nil
}
