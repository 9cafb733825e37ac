package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
	"github.com/andrescamacho/satisplanner-go/internal/domain/gamedata"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// Pipeline is the full production-chain recompute as an explicit, named
// sequence, so evaluation order is a visible contract:
//
//	solve every factory -> resolve dependencies -> prune hopeless imports ->
//	solve every factory again -> resolve dependencies -> finalize flags
//
// The double pass exists because dependency satisfiability depends on
// supply, which depends on aggregated parts, which can depend on inputs
// removed only after the first satisfiability check. Everything is pure
// in-memory arithmetic: the run is synchronous, deterministic, and
// idempotent on stable input.
type Pipeline struct {
	production *ProductionSolver
	power      *PowerSolver
	buildings  *BuildingAggregator
	ledger     *LedgerBuilder
	allocator  *GroupAllocator
	deps       *DependencyResolver
	sync       *SyncTracker
	notifier   common.Notifier
}

// NewPipeline wires the engine services against one catalogue and one
// notification sink.
func NewPipeline(catalogue gamedata.Catalogue, notifier common.Notifier) *Pipeline {
	return &Pipeline{
		production: NewProductionSolver(catalogue, notifier),
		power:      NewPowerSolver(catalogue, notifier),
		buildings:  NewBuildingAggregator(catalogue),
		ledger:     NewLedgerBuilder(catalogue),
		allocator:  NewGroupAllocator(catalogue, notifier),
		deps:       NewDependencyResolver(),
		sync:       NewSyncTracker(),
		notifier:   notifier,
	}
}

// Allocator exposes the building-group allocator for command handlers that
// perform group-level edits. Any such partial edit must be followed by a
// full CalculateAll before cross-factory numbers are trusted.
func (p *Pipeline) Allocator() *GroupAllocator {
	return p.allocator
}

// SyncTracker exposes the sync-state tracker for snapshot commands.
func (p *Pipeline) SyncTracker() *SyncTracker {
	return p.sync
}

// CalculateAll runs the two-pass settle over the whole factory list and
// returns the factories it mutated in place. Corrections made along the way
// (pruned links, clamped amounts, skipped items) are reported once, as a
// single aggregated alert.
func (p *Pipeline) CalculateAll(ctx context.Context, factories []*plan.Factory) []*plan.Factory {
	logger := common.LoggerFromContext(ctx)
	started := time.Now()

	var issues []error

	for _, f := range factories {
		issues = append(issues, p.calculate(f)...)
	}
	issues = append(issues, p.deps.Resolve(factories)...)
	issues = append(issues, p.deps.PruneUnsupplied(factories)...)

	for _, f := range factories {
		issues = append(issues, p.calculate(f)...)
	}
	issues = append(issues, p.deps.Resolve(factories)...)

	for _, f := range factories {
		p.finalize(f)
	}

	logger.Log("debug", "plan recompute finished", map[string]interface{}{
		"factories": len(factories),
		"issues":    len(issues),
		"elapsed":   time.Since(started).String(),
	})

	if len(issues) > 0 {
		p.reportIssues(issues)
	}

	return factories
}

// calculate runs the per-factory stages: recipe expansion, power
// derivation, building and power aggregation, ledger rebuild, and
// building-group reconciliation.
func (p *Pipeline) calculate(f *plan.Factory) []error {
	var issues []error
	issues = append(issues, p.production.Solve(f)...)
	issues = append(issues, p.power.Solve(f)...)
	p.buildings.Aggregate(f)
	p.ledger.Build(f)
	for _, item := range f.GroupedItems() {
		p.allocator.Reconcile(item)
	}
	return issues
}

// finalize runs the sync check and settles the factory-level problem flag
// from part deficits, uncovered export requests, and group mismatches.
func (p *Pipeline) finalize(f *plan.Factory) {
	p.sync.CheckSync(f)

	hasProblem := false
	for _, m := range f.Parts {
		if !m.Satisfied {
			hasProblem = true
		}
	}
	for _, m := range f.Dependencies.Metrics {
		if !m.IsRequestSatisfied {
			hasProblem = true
		}
	}
	for _, product := range f.Products {
		if product.BuildingGroupsHaveProblem {
			hasProblem = true
		}
	}
	for _, producer := range f.PowerProducers {
		if producer.BuildingGroupsHaveProblem {
			hasProblem = true
		}
	}
	f.HasProblem = hasProblem
}

// reportIssues emits one aggregated alert for the whole validation pass
// rather than one notification per field.
func (p *Pipeline) reportIssues(issues []error) {
	if p.notifier == nil {
		return
	}
	messages := make([]string, 0, len(issues))
	for _, err := range issues {
		messages = append(messages, err.Error())
	}
	p.notifier.Notify(common.Notification{
		Severity: common.SeverityWarning,
		Message: fmt.Sprintf("plan recalculated with %d correction(s):\n  %s",
			len(issues), strings.Join(messages, "\n  ")),
	})
}
