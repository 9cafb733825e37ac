package services

import (
	"math"

	"github.com/andrescamacho/satisplanner-go/internal/domain/shared"
)

// ClockSpeedExponent is the documented in-game power curve exponent:
// powerUsage = initialPower x (clockSpeed/100)^1.321928.
const ClockSpeedExponent = 1.321928

// PowerForBuildings applies the clock-speed curve to a fractional building
// count: whole buildings cost linearly, the fractional remainder is treated
// as a pseudo-clock and cost-weighted by the overclock exponent.
func PowerForBuildings(basePower, buildingCount float64) float64 {
	if basePower <= 0 || buildingCount <= 0 {
		return 0
	}
	whole := math.Floor(buildingCount)
	frac := buildingCount - whole
	power := basePower * whole
	if frac > 0 {
		power += basePower * math.Pow(frac, ClockSpeedExponent)
	}
	return shared.RoundAmount(power)
}

// BuildingsForPower inverts the clock-speed curve: given a target power
// figure it recovers the fractional building count whose forward curve
// reproduces that power.
func BuildingsForPower(basePower, power float64) float64 {
	if basePower <= 0 || power <= 0 {
		return 0
	}
	whole := math.Floor(power / basePower)
	remainder := power - whole*basePower
	if remainder <= 0 {
		return whole
	}
	return whole + math.Pow(remainder/basePower, 1/ClockSpeedExponent)
}

// GroupPower is the power of a building group: every building in the group
// runs at the group's clock, so the exponent applies per building.
func GroupPower(basePower, buildingCount, overclockPercent float64) float64 {
	if basePower <= 0 || buildingCount <= 0 {
		return 0
	}
	return shared.RoundAmount(basePower * buildingCount * math.Pow(overclockPercent/100, ClockSpeedExponent))
}
