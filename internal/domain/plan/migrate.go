package plan

import "github.com/google/uuid"

// CurrentDataVersion marks the newest plan record shape. It is bumped
// whenever a migration patch below adds fields to serialized factories, so
// re-loading an older plan triggers a one-time backfill before recompute.
const CurrentDataVersion = "4"

// Migrate backfills fields added after a serialized factory was written and
// stamps the current data version. It is idempotent and safe to run on every
// load.
func Migrate(f *Factory) {
	if f.Products == nil {
		f.Products = make([]*Product, 0)
	}
	if f.PowerProducers == nil {
		f.PowerProducers = make([]*PowerProducer, 0)
	}
	if f.ByProducts == nil {
		f.ByProducts = make([]ByProductItem, 0)
	}
	if f.Parts == nil {
		f.Parts = make(map[string]*PartMetrics)
	}
	if f.BuildingRequirements == nil {
		f.BuildingRequirements = make(map[string]*BuildingRequirement)
	}
	if f.Inputs == nil {
		f.Inputs = make([]InputLink, 0)
	}
	if f.Dependencies.Requests == nil || f.Dependencies.Metrics == nil {
		f.Dependencies = NewDependencies()
	}
	if f.SyncState == nil {
		f.SyncState = make(map[string]ProductSnapshot)
	}
	if f.SyncStatePower == nil {
		f.SyncStatePower = make(map[string]PowerProducerSnapshot)
	}

	for _, p := range f.Products {
		if p.Requirements == nil {
			p.Requirements = make(map[string]ProductRequirement)
		}
		if p.ByProducts == nil {
			p.ByProducts = make([]ByProductItem, 0)
		}
		if p.BuildingGroups == nil {
			// Plans written before building groups existed get a single
			// empty group; the next recompute rebalances it to the
			// aggregate requirement.
			p.BuildingGroups = []*BuildingGroup{NewBuildingGroup(0, 100)}
			p.BuildingGroupItemSync = true
		}
	}

	for _, p := range f.PowerProducers {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if p.Ingredients == nil {
			p.Ingredients = make([]PowerIngredient, 0)
		}
		if !p.Updated.Valid() {
			p.Updated = UpdatedBuildings
		}
		if p.BuildingGroups == nil {
			p.BuildingGroups = []*BuildingGroup{NewBuildingGroup(0, 100)}
			p.BuildingGroupItemSync = true
		}
	}

	f.DataVersion = CurrentDataVersion
}
