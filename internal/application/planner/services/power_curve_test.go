package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/satisplanner-go/internal/application/planner/services"
)

func TestPowerForBuildings_WholeCount(t *testing.T) {
	// Whole buildings cost linearly: 8 smelters at 4 MW draw exactly 32 MW.
	assert.Equal(t, 32.0, services.PowerForBuildings(4, 8))
}

func TestPowerForBuildings_FractionalCount(t *testing.T) {
	// The fractional building runs as an underclock, so it draws less than
	// its linear share: 1.92 buildings cost under 1.92 x 4 MW.
	power := services.PowerForBuildings(4, 1.92)

	assert.InDelta(t, 7.583, power, 0.0005)
	assert.Less(t, power, 1.92*4)
}

func TestPowerForBuildings_Degenerate(t *testing.T) {
	assert.Equal(t, 0.0, services.PowerForBuildings(0, 10))
	assert.Equal(t, 0.0, services.PowerForBuildings(4, 0))
	assert.Equal(t, 0.0, services.PowerForBuildings(4, -1))
}

func TestBuildingsForPower_InvertsTheCurve(t *testing.T) {
	assert.InDelta(t, 8.0, services.BuildingsForPower(4, 32), 1e-9)

	// Round-trip through a fractional count.
	power := services.PowerForBuildings(4, 1.92)
	assert.InDelta(t, 1.92, services.BuildingsForPower(4, power), 0.001)
}

func TestGroupPower_AppliesClockPerBuilding(t *testing.T) {
	// At 100% the group is linear.
	assert.Equal(t, 12.0, services.GroupPower(4, 3, 100))

	// Underclocking is cheaper than linear, overclocking dearer.
	assert.InDelta(t, 9.43, services.GroupPower(4, 3, 83.3333), 0.01)
	assert.Greater(t, services.GroupPower(4, 1, 200), 8.0)
}
