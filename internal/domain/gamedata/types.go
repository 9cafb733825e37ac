package gamedata

// Part is any in-game item or resource, identified by a stable string id.
type Part struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// IsRaw marks parts with no recipe producing them (ores, water, oil).
	// Raw parts are always considered satisfied by the planner.
	IsRaw bool `json:"isRaw"`
}

// RecipeItem is one ingredient or output line of a recipe.
// Amount is per recipe cycle, PerMin the per-building per-minute rate.
type RecipeItem struct {
	Part   string  `json:"part"`
	Amount float64 `json:"amount"`
	PerMin float64 `json:"perMin"`
}

// Recipe is a fixed ratio of ingredient parts to output parts per minute,
// associated with one building type. The first product line is the primary
// product; any further lines are byproducts.
type Recipe struct {
	ID          string       `json:"id"`
	DisplayName string       `json:"displayName"`
	Building    string       `json:"building"`
	Ingredients []RecipeItem `json:"ingredients"`
	Products    []RecipeItem `json:"products"`
	ByProducts  []RecipeItem `json:"byProducts"`
	IsAlternate bool         `json:"isAlternate"`
}

// PrimaryProduct returns the recipe's primary output line, or nil for a
// malformed recipe with no products.
func (r *Recipe) PrimaryProduct() *RecipeItem {
	if len(r.Products) == 0 {
		return nil
	}
	return &r.Products[0]
}

// PowerFuel is the primary ingredient of a power recipe. MWPerItem is how
// many megawatts one item per minute sustains.
type PowerFuel struct {
	Part      string  `json:"part"`
	MWPerItem float64 `json:"mwPerItem"`
}

// PowerSupplement is an optional secondary ingredient consumed at a fixed
// ratio to power output (e.g. water per MW).
type PowerSupplement struct {
	Part       string  `json:"part"`
	RatioPerMW float64 `json:"ratioPerMW"`
}

// PowerByProduct is an optional waste output produced at a fixed ratio to
// fuel burned.
type PowerByProduct struct {
	Part         string  `json:"part"`
	RatioPerFuel float64 `json:"ratioPerFuel"`
}

// PowerRecipe describes how a generator building turns fuel into megawatts.
type PowerRecipe struct {
	ID           string           `json:"id"`
	DisplayName  string           `json:"displayName"`
	Building     string           `json:"building"`
	Fuel         PowerFuel        `json:"fuel"`
	Supplemental *PowerSupplement `json:"supplemental,omitempty"`
	ByProduct    *PowerByProduct  `json:"byProduct,omitempty"`
}

// Building describes a production or generator building type.
// Power is the base power draw (consumers) or base output (generators)
// in megawatts at 100% clock speed.
type Building struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Power float64 `json:"power"`
}
