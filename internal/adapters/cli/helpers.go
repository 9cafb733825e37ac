package cli

import (
	"context"
	"fmt"
	"log"
	"reflect"

	"gorm.io/gorm"

	gamedataadapter "github.com/andrescamacho/satisplanner-go/internal/adapters/gamedata"
	"github.com/andrescamacho/satisplanner-go/internal/adapters/notify"
	"github.com/andrescamacho/satisplanner-go/internal/adapters/persistence"
	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/commands"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/queries"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
	"github.com/andrescamacho/satisplanner-go/internal/infrastructure/config"
	"github.com/andrescamacho/satisplanner-go/internal/infrastructure/database"
)

// app holds the wired application for one CLI invocation.
type app struct {
	cfg       *config.Config
	db        *gorm.DB
	plans     *persistence.GormPlanRepository
	catalogue *gamedataadapter.Catalogue
	pipeline  *services.Pipeline
	mediator  common.Mediator
}

// newApp loads config, opens the database, loads game data and registers
// every command and query handler on the mediator.
func newApp() (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	catalogue, err := gamedataadapter.LoadCatalogue(cfg.GameData.Path)
	if err != nil {
		return nil, err
	}
	if cfg.GameData.ExpectedVersion != "" && catalogue.Version() != cfg.GameData.ExpectedVersion {
		return nil, fmt.Errorf("game data version mismatch: have %s, want %s",
			catalogue.Version(), cfg.GameData.ExpectedVersion)
	}

	plans := persistence.NewGormPlanRepository(db)
	pipeline := services.NewPipeline(catalogue, notify.NewConsoleNotifier())

	m := common.NewMediator()
	if err := registerHandlers(m, plans, catalogue, pipeline); err != nil {
		return nil, err
	}

	return &app{
		cfg:       cfg,
		db:        db,
		plans:     plans,
		catalogue: catalogue,
		pipeline:  pipeline,
		mediator:  m,
	}, nil
}

// close releases the database connection.
func (a *app) close() {
	if err := database.Close(a.db); err != nil && verbose {
		log.Printf("failed to close database: %v", err)
	}
}

// send dispatches a request through the mediator with a context-scoped
// logger when verbose output is on.
func (a *app) send(request common.Request) (common.Response, error) {
	ctx := context.Background()
	if verbose {
		ctx = common.WithLogger(ctx, stdLogger{})
	}
	return a.mediator.Send(ctx, request)
}

func registerHandlers(m common.Mediator, plans *persistence.GormPlanRepository,
	catalogue *gamedataadapter.Catalogue, pipeline *services.Pipeline) error {

	registrations := []struct {
		request common.Request
		handler common.RequestHandler
	}{
		{&commands.CreatePlanCommand{}, commands.NewCreatePlanHandler(plans)},
		{&commands.DeletePlanCommand{}, commands.NewDeletePlanHandler(plans)},
		{&commands.AddFactoryCommand{}, commands.NewAddFactoryHandler(plans)},
		{&commands.CalculatePlanCommand{}, commands.NewCalculatePlanHandler(plans, pipeline)},
		{&commands.AddProductCommand{}, commands.NewAddProductHandler(plans, catalogue, pipeline)},
		{&commands.UpdateProductCommand{}, commands.NewUpdateProductHandler(plans, catalogue, pipeline)},
		{&commands.AddPowerProducerCommand{}, commands.NewAddPowerProducerHandler(plans, catalogue, pipeline)},
		{&commands.UpdatePowerProducerCommand{}, commands.NewUpdatePowerProducerHandler(plans, pipeline)},
		{&commands.AddInputCommand{}, commands.NewAddInputHandler(plans, pipeline)},
		{&commands.RemoveInputCommand{}, commands.NewRemoveInputHandler(plans, pipeline)},
		{&commands.AddBuildingGroupCommand{}, commands.NewAddBuildingGroupHandler(plans, pipeline)},
		{&commands.DeleteBuildingGroupCommand{}, commands.NewDeleteBuildingGroupHandler(plans, pipeline)},
		{&commands.RebalanceBuildingGroupsCommand{}, commands.NewRebalanceBuildingGroupsHandler(plans, pipeline)},
		{&commands.RemainderToLastGroupCommand{}, commands.NewRemainderToLastGroupHandler(plans, pipeline)},
		{&commands.RemainderToNewGroupCommand{}, commands.NewRemainderToNewGroupHandler(plans, pipeline)},
		{&commands.UpdateBuildingGroupCommand{}, commands.NewUpdateBuildingGroupHandler(plans, pipeline)},
		{&commands.UpdateGroupPartCommand{}, commands.NewUpdateGroupPartHandler(plans, pipeline)},
		{&commands.SnapshotFactoryCommand{}, commands.NewSnapshotFactoryHandler(plans, pipeline)},
		{&commands.CheckSyncCommand{}, commands.NewCheckSyncHandler(plans, pipeline)},
		{&queries.GetFactoryQuery{}, queries.NewGetFactoryHandler(plans)},
		{&queries.PlanSummaryQuery{}, queries.NewPlanSummaryHandler(plans)},
		{&queries.ListPlansQuery{}, queries.NewListPlansHandler(plans)},
	}

	for _, r := range registrations {
		if err := m.Register(requestType(r.request), r.handler); err != nil {
			return err
		}
	}
	return nil
}

func requestType(request common.Request) reflect.Type {
	return reflect.TypeOf(request)
}

// stdLogger adapts the standard library logger to the plan logger port for
// verbose CLI runs.
type stdLogger struct{}

func (stdLogger) Log(level, message string, metadata map[string]interface{}) {
	log.Printf("[%s] %s %v", level, message, metadata)
}
