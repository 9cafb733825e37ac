package plan

// PartMetrics is the per-part ledger record for one factory. The ledger is
// rebuilt from scratch on every calculation pass; nothing in it is patched
// incrementally.
//
// Invariants:
//   - AmountRequired = production + exports + power requirements
//   - AmountSupplied = input + raw + internal production
//   - AmountRemaining = AmountSupplied - AmountRequired
//   - Satisfied       = IsRaw || AmountRemaining >= 0
type PartMetrics struct {
	AmountRequired           float64 `json:"amountRequired"`
	AmountRequiredProduction float64 `json:"amountRequiredProduction"`
	AmountRequiredExports    float64 `json:"amountRequiredExports"`
	AmountRequiredPower      float64 `json:"amountRequiredPower"`

	AmountSupplied              float64 `json:"amountSupplied"`
	AmountSuppliedViaInput      float64 `json:"amountSuppliedViaInput"`
	AmountSuppliedViaRaw        float64 `json:"amountSuppliedViaRaw"`
	AmountSuppliedViaProduction float64 `json:"amountSuppliedViaProduction"`

	AmountRemaining float64 `json:"amountRemaining"`

	IsRaw      bool `json:"isRaw"`
	Satisfied  bool `json:"satisfied"`
	Exportable bool `json:"exportable"`
}

// Surplus returns the amount available beyond this factory's own needs.
// Negative when the part is in deficit.
func (m *PartMetrics) Surplus() float64 {
	return m.AmountRemaining
}
