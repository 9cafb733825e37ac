package gamedata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/satisplanner-go/internal/adapters/gamedata"
)

const sampleData = `{
	"version": "1.0-test",
	"parts": [
		{"id": "iron-ore", "name": "Iron Ore", "isRaw": true},
		{"id": "iron-ingot", "name": "Iron Ingot"},
		{"id": "coal", "name": "Coal", "isRaw": true}
	],
	"recipes": [
		{
			"id": "iron-ingot",
			"building": "smelter",
			"ingredients": [{"part": "iron-ore", "amount": 1, "perMin": 30}],
			"products": [{"part": "iron-ingot", "amount": 1, "perMin": 30}]
		}
	],
	"powerRecipes": [
		{
			"id": "coal-power",
			"building": "coal-generator",
			"fuel": {"part": "coal", "mwPerItem": 5}
		}
	],
	"buildings": [
		{"id": "smelter", "name": "Smelter", "power": 4},
		{"id": "coal-generator", "name": "Coal Generator", "power": 75}
	]
}`

func TestParseCatalogue(t *testing.T) {
	catalogue, err := gamedata.ParseCatalogue([]byte(sampleData))
	require.NoError(t, err)

	assert.Equal(t, "1.0-test", catalogue.Version())

	recipe, ok := catalogue.Recipe("iron-ingot")
	require.True(t, ok)
	assert.Equal(t, "smelter", recipe.Building)

	power, ok := catalogue.PowerRecipe("coal-power")
	require.True(t, ok)
	assert.Equal(t, 5.0, power.Fuel.MWPerItem)

	part, ok := catalogue.Part("iron-ore")
	require.True(t, ok)
	assert.True(t, part.IsRaw)

	assert.Equal(t, 75.0, catalogue.BuildingPower("coal-generator"))

	parts, recipes, powerRecipes, buildings := catalogue.Counts()
	assert.Equal(t, 3, parts)
	assert.Equal(t, 1, recipes)
	assert.Equal(t, 1, powerRecipes)
	assert.Equal(t, 2, buildings)
}

func TestParseCatalogue_RejectsMissingVersion(t *testing.T) {
	_, err := gamedata.ParseCatalogue([]byte(`{"parts": []}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no version")
}

func TestParseCatalogue_RejectsInvalidJSON(t *testing.T) {
	_, err := gamedata.ParseCatalogue([]byte(`{not json`))

	require.Error(t, err)
}

func TestParseCatalogue_RejectsRecipeWithoutProducts(t *testing.T) {
	_, err := gamedata.ParseCatalogue([]byte(`{
		"version": "1",
		"recipes": [{"id": "broken", "building": "smelter"}]
	}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no products")
}

func TestParseCatalogue_RejectsPowerRecipeWithoutFuel(t *testing.T) {
	_, err := gamedata.ParseCatalogue([]byte(`{
		"version": "1",
		"powerRecipes": [{"id": "broken", "building": "coal-generator"}]
	}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no usable fuel")
}

func TestCatalogue_PartNameFallsBackToID(t *testing.T) {
	catalogue, err := gamedata.ParseCatalogue([]byte(sampleData))
	require.NoError(t, err)

	assert.Equal(t, "Iron Ore", catalogue.PartName("iron-ore"))
	assert.Equal(t, "mystery-part", catalogue.PartName("mystery-part"))
}

func TestCatalogue_UnknownLookups(t *testing.T) {
	catalogue, err := gamedata.ParseCatalogue([]byte(sampleData))
	require.NoError(t, err)

	_, ok := catalogue.Recipe("nope")
	assert.False(t, ok)
	_, ok = catalogue.Building("nope")
	assert.False(t, ok)
	assert.Equal(t, 0.0, catalogue.BuildingPower("nope"))
}
