package config

// PlannerConfig holds tunables of the calculation engine. The defaults match
// the in-game limits; overriding them is mainly useful for experiments.
type PlannerConfig struct {
	// Overclock bounds in percent
	MinOverclock float64 `mapstructure:"min_overclock" validate:"gt=0"`
	MaxOverclock float64 `mapstructure:"max_overclock" validate:"gtfield=MinOverclock"`

	// Allowed drift between a building target and the effective count of its
	// groups before the item is flagged
	GroupTolerance float64 `mapstructure:"group_tolerance" validate:"gt=0"`
}
