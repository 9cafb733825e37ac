package services

import "github.com/andrescamacho/satisplanner-go/internal/domain/plan"

// SyncTracker detects whether a factory's products or power producers have
// drifted from a recorded baseline, e.g. after a collaborative edit or an
// imported plan. InSync stays nil until a snapshot is taken; the checker
// never promotes an untracked factory to a boolean state.
type SyncTracker struct{}

// NewSyncTracker creates a tracker
func NewSyncTracker() *SyncTracker {
	return &SyncTracker{}
}

// Snapshot records the current baseline and marks the factory in sync.
func (t *SyncTracker) Snapshot(f *plan.Factory) {
	f.SyncState = make(map[string]plan.ProductSnapshot, len(f.Products))
	for _, p := range f.Products {
		f.SyncState[p.ID] = plan.ProductSnapshot{Amount: p.Amount, Recipe: p.Recipe}
	}

	f.SyncStatePower = make(map[string]plan.PowerProducerSnapshot, len(f.PowerProducers))
	for _, p := range f.PowerProducers {
		f.SyncStatePower[p.ID] = plan.PowerProducerSnapshot{
			BuildingAmount: p.BuildingAmount,
			PowerAmount:    p.PowerAmount,
			Recipe:         p.Recipe,
		}
	}

	inSync := true
	f.InSync = &inSync
}

// CheckSync compares live values against the snapshot and flips InSync to
// false on any drift: value change, recipe change, or an item added or
// removed. Untracked factories (InSync == nil) are left untouched.
func (t *SyncTracker) CheckSync(f *plan.Factory) {
	if f.InSync == nil {
		return
	}

	inSync := t.productsMatch(f) && t.producersMatch(f)
	f.InSync = &inSync
}

func (t *SyncTracker) productsMatch(f *plan.Factory) bool {
	if len(f.Products) != len(f.SyncState) {
		return false
	}
	for _, p := range f.Products {
		snap, ok := f.SyncState[p.ID]
		if !ok || snap.Amount != p.Amount || snap.Recipe != p.Recipe {
			return false
		}
	}
	return true
}

func (t *SyncTracker) producersMatch(f *plan.Factory) bool {
	if len(f.PowerProducers) != len(f.SyncStatePower) {
		return false
	}
	for _, p := range f.PowerProducers {
		snap, ok := f.SyncStatePower[p.ID]
		if !ok || snap.BuildingAmount != p.BuildingAmount ||
			snap.PowerAmount != p.PowerAmount || snap.Recipe != p.Recipe {
			return false
		}
	}
	return true
}
