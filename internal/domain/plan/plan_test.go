package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

func TestFactory_AddInputRejectsDuplicates(t *testing.T) {
	f := plan.NewFactory("plates")

	require.NoError(t, f.AddInput("source-1", "iron-ingot", 100))
	err := f.AddInput("source-1", "iron-ingot", 200)

	var dup *plan.ErrDuplicateInput
	require.ErrorAs(t, err, &dup)
	assert.Len(t, f.Inputs, 1)

	// Same part from a different factory is a separate link.
	require.NoError(t, f.AddInput("source-2", "iron-ingot", 200))
	assert.Len(t, f.Inputs, 2)
}

func TestFactory_RemoveInput(t *testing.T) {
	f := plan.NewFactory("plates")
	require.NoError(t, f.AddInput("source-1", "iron-ingot", 100))
	require.NoError(t, f.AddInput("source-1", "coal", 50))

	f.RemoveInput("source-1", "iron-ingot")

	require.Len(t, f.Inputs, 1)
	assert.Equal(t, "coal", f.Inputs[0].Part)

	// Removing a link that does not exist is a no-op.
	f.RemoveInput("source-1", "iron-ingot")
	assert.Len(t, f.Inputs, 1)
}

func TestPlan_FactoryLookup(t *testing.T) {
	p := plan.NewPlan("main")
	f := p.AddFactory("ingots")

	assert.Same(t, f, p.Factory(f.ID))
	assert.Nil(t, p.Factory("nope"))
}

func TestPlan_RemoveFactoryStripsInboundLinks(t *testing.T) {
	p := plan.NewPlan("main")
	supplier := p.AddFactory("ingots")
	consumer := p.AddFactory("plates")
	require.NoError(t, consumer.AddInput(supplier.ID, "iron-ingot", 100))
	require.NoError(t, consumer.AddInput("elsewhere", "coal", 50))

	p.RemoveFactory(supplier.ID)

	require.Len(t, p.Factories, 1)
	require.Len(t, consumer.Inputs, 1)
	assert.Equal(t, "coal", consumer.Inputs[0].Part)
}

func TestPlan_RemoveUnknownFactoryIsNoOp(t *testing.T) {
	p := plan.NewPlan("main")
	p.AddFactory("ingots")

	p.RemoveFactory("nope")

	assert.Len(t, p.Factories, 1)
}
