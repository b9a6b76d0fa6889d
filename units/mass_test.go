package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sushydev/ring_go/units"
)

func TestCastMass(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1200.0, units.CastMass[units.Gram](units.Kilograms(1.2)).Count(), 1e-9)
	assert.InDelta(t, 0.0012, units.CastMass[units.Gram](units.Milligrams(1.2)).Count(), 1e-12)
	assert.InDelta(t, 1200000.0, units.CastMass[units.Milligram](units.Kilograms(1.2)).Count(), 1e-6)
}

func TestMassComparison(t *testing.T) {
	t.Parallel()

	assert.True(t, units.EqualMass(units.Milligrams(1200000), units.Kilograms(1.2)))
	assert.False(t, units.EqualMass(units.Grams(1), units.Milligrams(999)))
	assert.True(t, units.LessMass(units.Milligrams(999), units.Grams(1)))
}

func TestMassArithmetic(t *testing.T) {
	t.Parallel()

	assert.True(t, units.EqualMass(units.AddMass(units.Kilograms(0.6), units.Grams(600)), units.Kilograms(1.2)))
	assert.True(t, units.EqualMass(units.SubMass(units.Kilograms(0.6), units.Kilograms(0.5)), units.Grams(100)))
	assert.True(t, units.EqualMass(units.Grams(10).Scale(0.5), units.Grams(5)))
	assert.True(t, units.EqualMass(units.Grams(10).Div(4), units.Milligrams(2500)))
}

func TestMassString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2 kg", units.Kilograms(2).String())
	assert.Equal(t, "1.5 g", units.Milligrams(1500).String())
}
