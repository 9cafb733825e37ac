package plan

import (
	"fmt"

	"github.com/google/uuid"
)

// InputLink is a directed edge meaning "this factory wants Amount per minute
// of Part supplied by FactoryID". Links refer to other factories by id, never
// by direct reference. At most one link may exist per (FactoryID, Part) pair.
type InputLink struct {
	FactoryID string  `json:"factoryId"`
	Part      string  `json:"part"`
	Amount    float64 `json:"amount"`
}

// DependencyRequest is one incoming export request recorded on the supplying
// factory.
type DependencyRequest struct {
	Part   string  `json:"part"`
	Amount float64 `json:"amount"`
}

// RequestMetrics summarizes all requests for one part against a supplying
// factory.
type RequestMetrics struct {
	RequestedAmount    float64 `json:"requestedAmount"`
	SuppliedAmount     float64 `json:"suppliedAmount"`
	Difference         float64 `json:"difference"`
	IsRequestSatisfied bool    `json:"isRequestSatisfied"`
}

// Dependencies holds the resolver's output for one factory: who requests
// what from it, and whether each requested part is covered.
type Dependencies struct {
	// Requests is keyed by requesting factory id.
	Requests map[string][]DependencyRequest `json:"requests"`

	// Metrics is keyed by part id.
	Metrics map[string]*RequestMetrics `json:"metrics"`
}

// NewDependencies returns an empty dependency record.
func NewDependencies() Dependencies {
	return Dependencies{
		Requests: make(map[string][]DependencyRequest),
		Metrics:  make(map[string]*RequestMetrics),
	}
}

// PowerSummary aggregates factory power in megawatts.
type PowerSummary struct {
	Consumed   float64 `json:"consumed"`
	Produced   float64 `json:"produced"`
	Difference float64 `json:"difference"`
}

// ProductSnapshot is the sync-tracking baseline for one product.
type ProductSnapshot struct {
	Amount float64 `json:"amount"`
	Recipe string  `json:"recipe"`
}

// PowerProducerSnapshot is the sync-tracking baseline for one power producer.
type PowerProducerSnapshot struct {
	BuildingAmount float64 `json:"buildingAmount"`
	PowerAmount    float64 `json:"powerAmount"`
	Recipe         string  `json:"recipe"`
}

// Factory is the aggregate root of one factory in a plan. It owns its
// products, power producers, part ledger, building requirements, input links
// and sync snapshots; nothing inside it is shared with other factories.
type Factory struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Products       []*Product       `json:"products"`
	PowerProducers []*PowerProducer `json:"powerProducers"`
	ByProducts     []ByProductItem  `json:"byProducts"`

	Parts                map[string]*PartMetrics         `json:"parts"`
	BuildingRequirements map[string]*BuildingRequirement `json:"buildingRequirements"`
	Power                PowerSummary                    `json:"power"`

	Inputs       []InputLink  `json:"inputs"`
	Dependencies Dependencies `json:"dependencies"`

	SyncState      map[string]ProductSnapshot       `json:"syncState"`
	SyncStatePower map[string]PowerProducerSnapshot `json:"syncStatePower"`

	// InSync starts nil (never tracked) and only becomes a boolean once a
	// snapshot has been taken.
	InSync *bool `json:"inSync"`

	HasProblem  bool   `json:"hasProblem"`
	DataVersion string `json:"dataVersion"`
}

// NewFactory creates an empty factory with a fresh id.
func NewFactory(name string) *Factory {
	return &Factory{
		ID:                   uuid.NewString(),
		Name:                 name,
		Products:             make([]*Product, 0),
		PowerProducers:       make([]*PowerProducer, 0),
		ByProducts:           make([]ByProductItem, 0),
		Parts:                make(map[string]*PartMetrics),
		BuildingRequirements: make(map[string]*BuildingRequirement),
		Inputs:               make([]InputLink, 0),
		Dependencies:         NewDependencies(),
		SyncState:            make(map[string]ProductSnapshot),
		SyncStatePower:       make(map[string]PowerProducerSnapshot),
		DataVersion:          CurrentDataVersion,
	}
}

// AddProduct appends a product and returns it.
func (f *Factory) AddProduct(partID, recipe string, amount float64) *Product {
	product := NewProduct(partID, recipe, amount)
	product.DisplayOrder = len(f.Products)
	f.Products = append(f.Products, product)
	return product
}

// AddPowerProducer appends a power producer and returns it.
func (f *Factory) AddPowerProducer(building, recipe string, buildingAmount float64) *PowerProducer {
	producer := NewPowerProducer(building, recipe, buildingAmount)
	producer.DisplayOrder = len(f.PowerProducers)
	f.PowerProducers = append(f.PowerProducers, producer)
	return producer
}

// Product returns the product for a part id, or nil.
func (f *Factory) Product(partID string) *Product {
	for _, p := range f.Products {
		if p.ID == partID {
			return p
		}
	}
	return nil
}

// AddInput records an import link. Adding a second link for the same
// (source factory, part) pair is an error.
func (f *Factory) AddInput(sourceFactoryID, part string, amount float64) error {
	for _, in := range f.Inputs {
		if in.FactoryID == sourceFactoryID && in.Part == part {
			return &ErrDuplicateInput{FactoryID: sourceFactoryID, Part: part}
		}
	}
	f.Inputs = append(f.Inputs, InputLink{FactoryID: sourceFactoryID, Part: part, Amount: amount})
	return nil
}

// RemoveInput deletes the link for the given (source factory, part) pair.
// Removing a link that does not exist is a no-op.
func (f *Factory) RemoveInput(sourceFactoryID, part string) {
	kept := f.Inputs[:0]
	for _, in := range f.Inputs {
		if in.FactoryID == sourceFactoryID && in.Part == part {
			continue
		}
		kept = append(kept, in)
	}
	f.Inputs = kept
}

// Part returns the ledger record for a part id, creating it if missing.
func (f *Factory) Part(id string) *PartMetrics {
	if f.Parts == nil {
		f.Parts = make(map[string]*PartMetrics)
	}
	metrics, ok := f.Parts[id]
	if !ok {
		metrics = &PartMetrics{}
		f.Parts[id] = metrics
	}
	return metrics
}

// GroupedItems returns every product and power producer behind the shared
// capability interface, in display order.
func (f *Factory) GroupedItems() []GroupedItem {
	items := make([]GroupedItem, 0, len(f.Products)+len(f.PowerProducers))
	for _, p := range f.Products {
		items = append(items, p)
	}
	for _, p := range f.PowerProducers {
		items = append(items, p)
	}
	return items
}

// FindByID returns the factory with the given id from a list, or nil.
func FindByID(factories []*Factory, id string) *Factory {
	for _, f := range factories {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// String provides a human-readable representation.
func (f *Factory) String() string {
	return fmt.Sprintf("Factory[%s, name=%s, products=%d, producers=%d]",
		f.ID, f.Name, len(f.Products), len(f.PowerProducers))
}
