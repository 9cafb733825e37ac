package plan

import "github.com/google/uuid"

// Plan is the persistence root: a named set of factories that are calculated
// together. Cross-factory dependency resolution only ever happens between
// factories of the same plan.
type Plan struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Factories []*Factory `json:"factories"`
}

// NewPlan creates an empty plan with a fresh id.
func NewPlan(name string) *Plan {
	return &Plan{
		ID:        uuid.NewString(),
		Name:      name,
		Factories: make([]*Factory, 0),
	}
}

// AddFactory creates a factory inside the plan and returns it.
func (p *Plan) AddFactory(name string) *Factory {
	f := NewFactory(name)
	p.Factories = append(p.Factories, f)
	return f
}

// Factory returns the factory with the given id, or nil.
func (p *Plan) Factory(id string) *Factory {
	return FindByID(p.Factories, id)
}

// RemoveFactory deletes a factory and every input link other factories hold
// against it. Removing an unknown id is a no-op.
func (p *Plan) RemoveFactory(id string) {
	kept := p.Factories[:0]
	for _, f := range p.Factories {
		if f.ID == id {
			continue
		}
		inputs := f.Inputs[:0]
		for _, in := range f.Inputs {
			if in.FactoryID != id {
				inputs = append(inputs, in)
			}
		}
		f.Inputs = inputs
		kept = append(kept, f)
	}
	p.Factories = kept
}

// Migrate backfills every factory in the plan to the current data version.
func (p *Plan) Migrate() {
	if p.Factories == nil {
		p.Factories = make([]*Factory, 0)
	}
	for _, f := range p.Factories {
		Migrate(f)
	}
}
