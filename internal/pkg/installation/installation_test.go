package installation

import (
	"math"
	"strings"
	"testing"

	"github.com/ohowland/cgc_load/internal/pkg/config"
	"github.com/ohowland/cgc_load/internal/pkg/device"
	"github.com/ohowland/cgc_load/internal/pkg/environment"
	"gotest.tools/v3/assert"
)

func assertClose(t *testing.T, got, want float64) {
	t.Helper()
	assert.Assert(t, math.Abs(got-want) <= 1e-9*math.Max(1, math.Abs(want)), "got %v, want %v", got, want)
}

func newHeater(t *testing.T, power float64) device.Device {
	t.Helper()
	d, err := device.New("heater", device.Quantities{Power: power, PowerFactor: 1})
	assert.NilError(t, err)
	return d
}

func newEnvironment(t *testing.T, name string, w, h float64, kind environment.Type, devices ...device.Device) environment.Environment {
	t.Helper()
	light, err := device.NewLight("", 10, device.LED)
	assert.NilError(t, err)
	e, err := environment.New(name, w, h, kind, light, devices)
	assert.NilError(t, err)
	return e
}

func newInstallation(t *testing.T, envs []environment.Environment, requested Type, opts ...Option) Installation {
	t.Helper()
	i, err := New(envs, requested, opts...)
	assert.NilError(t, err)
	return i
}

// house has a 3x3 bedroom and a 3x4 kitchen with a heater and an air conditioner.
func house(t *testing.T) []environment.Environment {
	ac, err := device.NewAirConditioner("split", 1000, 0)
	assert.NilError(t, err)

	return []environment.Environment{
		newEnvironment(t, "bedroom", 3, 3, environment.Bedrooms),
		newEnvironment(t, "kitchen", 3, 4, environment.KitchensAndDiningRooms, newHeater(t, 1500), ac),
	}
}

// withDemand returns a bedroom whose installation demands 430 W plus dedicated power W.
func withDemand(t *testing.T, dedicated float64) []environment.Environment {
	return []environment.Environment{
		newEnvironment(t, "bedroom", 3, 3, environment.Bedrooms, newHeater(t, dedicated)),
	}
}

func TestAggregation(t *testing.T) {
	i := newInstallation(t, house(t), TypeUnspecified)

	assert.Equal(t, i.LightPower(), 260.0)
	assert.Equal(t, i.LightNumber(), 6)
	assert.Equal(t, i.TUGPower(), 2300.0)
	assert.Equal(t, i.TUGNumber(), 8)
	assert.Equal(t, i.TUEPower(), 2500.0)
	assert.Equal(t, i.TUENumber(), 2)

	assertClose(t, i.DemandFactorForLightingTUG(), 0.66)
	assertClose(t, i.TotalDemandedPower(), 2560*0.66+2500)
	assertClose(t, i.TotalDemandedApparentPower(), (2560*0.66+2500)/0.95)

	assert.Equal(t, i.MinimumType(), SinglePhase)
	assert.Equal(t, i.Type(), SinglePhase)
	assert.Equal(t, i.Phases(), 1)
	assertClose(t, i.TotalDemandedCurrent(), (2560*0.66+2500)/220)
	assertClose(t, i.InputBranchCurrent(), (2560*0.66+2500)/220*1.25)
}

func TestAggregationIsOrderIndependent(t *testing.T) {
	envs := house(t)
	reversed := []environment.Environment{envs[1], envs[0]}

	a := newInstallation(t, envs, TypeUnspecified)
	b := newInstallation(t, reversed, TypeUnspecified)
	assertClose(t, a.TotalDemandedPower(), b.TotalDemandedPower())
	assert.Equal(t, a.LightNumber(), b.LightNumber())
}

func TestEmptyInstallation(t *testing.T) {
	i := newInstallation(t, nil, TypeUnspecified)

	assert.Equal(t, i.TotalDemandedPower(), 0.0)
	assert.Equal(t, i.Type(), SinglePhase)
	assert.Equal(t, i.TotalDemandedCurrent(), 0.0)
}

func TestDemandFactorForTUE(t *testing.T) {
	i := newInstallation(t, nil, TypeUnspecified)

	assert.Equal(t, i.DemandFactorForTUE(0), 0.38)
	assert.Equal(t, i.DemandFactorForTUE(-1), 0.38)
	assert.Equal(t, i.DemandFactorForTUE(1), 1.00)
	assert.Equal(t, i.DemandFactorForTUE(2), 1.00)
	assert.Equal(t, i.DemandFactorForTUE(3), 0.84)
	assert.Equal(t, i.DemandFactorForTUE(10), 0.52)
	assert.Equal(t, i.DemandFactorForTUE(25), 0.38)
	assert.Equal(t, i.DemandFactorForTUE(30), 0.38)

	for n := 2; n <= 30; n++ {
		assert.Assert(t, tueDemandFactor(n) <= tueDemandFactor(n-1), "n=%v", n)
	}
}

func TestLightingTUGDemandFactor(t *testing.T) {
	cases := []struct {
		power float64
		want  float64
	}{
		{0, 0.86},
		{1000, 0.86},
		{1000.5, 0.75},
		{2500, 0.66},
		{4000, 0.59},
		{5500, 0.45},
		{7000, 0.40},
		{7500, 0.35},
		{9000, 0.31},
		{10000, 0.27},
		{10001, 0.24},
	}
	for _, c := range cases {
		assert.Equal(t, lightingTUGDemandFactor(c.power), c.want, "power %v", c.power)
	}

	for p := 500.0; p <= 12000; p += 500 {
		assert.Assert(t, lightingTUGDemandFactor(p) <= lightingTUGDemandFactor(p-500))
	}
}

func TestMinimumType(t *testing.T) {
	assert.Equal(t, minimumType(12000), SinglePhase)
	assert.Equal(t, minimumType(15000), SinglePhase)
	assert.Equal(t, minimumType(15000.01), TwoPhase)
	assert.Equal(t, minimumType(25000), TwoPhase)
	assert.Equal(t, minimumType(50000), ThreePhase)
	assert.Equal(t, minimumType(50000.01), ExclusiveTransformer)
}

func TestTypeOrdering(t *testing.T) {
	assert.Assert(t, TwoPhase.Exceeds(SinglePhase))
	assert.Assert(t, ExclusiveTransformer.Exceeds(ThreePhase))
	assert.Assert(t, !SinglePhase.Exceeds(SinglePhase))
	assert.Assert(t, !TypeUnspecified.Exceeds(SinglePhase))
	assert.Assert(t, !Type(42).Exceeds(SinglePhase))

	assert.Equal(t, SinglePhase.Phases(), 1)
	assert.Equal(t, TwoPhase.Phases(), 2)
	assert.Equal(t, ThreePhase.Phases(), 3)
	assert.Equal(t, ExclusiveTransformer.Phases(), 3)
}

func TestResolvedType(t *testing.T) {
	envs := withDemand(t, 19570)

	cases := []struct {
		name      string
		requested Type
		want      Type
	}{
		{"unspecified", TypeUnspecified, TwoPhase},
		{"smaller than minimum", SinglePhase, TwoPhase},
		{"equal to minimum", TwoPhase, TwoPhase},
		{"larger than minimum", ThreePhase, ThreePhase},
		{"exclusive transformer", ExclusiveTransformer, ExclusiveTransformer},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			i := newInstallation(t, envs, c.requested)
			assert.Equal(t, i.MinimumType(), TwoPhase)
			assert.Equal(t, i.Type(), c.want)
		})
	}
}

func TestCurrentUsesResolvedPhases(t *testing.T) {
	i := newInstallation(t, withDemand(t, 19570), ThreePhase)
	power := i.TotalDemandedPower()

	assertClose(t, power, 500*0.86+19570)
	assert.Equal(t, i.Phases(), 3)
	assertClose(t, i.TotalDemandedCurrent(), power/(220*3))
	assertClose(t, i.InputBranchCurrent(), power/(220*3)*1.25)
}

func TestExclusiveTransformer(t *testing.T) {
	i := newInstallation(t, withDemand(t, 60000), SinglePhase)
	assert.Equal(t, i.Type(), ExclusiveTransformer)
	assert.Equal(t, i.Phases(), 3)
}

func TestWithParameters(t *testing.T) {
	params := config.Parameters{SupplyVoltage: 127, AggregatePowerFactor: 0.9, BranchCurrentMargin: 1.5}
	i := newInstallation(t, house(t), TypeUnspecified, WithParameters(params))
	power := i.TotalDemandedPower()

	assert.Equal(t, i.Parameters(), params)
	assertClose(t, i.TotalDemandedApparentPower(), power/0.9)
	assertClose(t, i.TotalDemandedCurrent(), power/127)
	assertClose(t, i.InputBranchCurrent(), power/127*1.5)
}

func TestString(t *testing.T) {
	i := newInstallation(t, house(t), TypeUnspecified)
	s := i.String()

	assert.Assert(t, strings.HasPrefix(s, "Installation:"))
	assert.Assert(t, strings.Contains(s, "Installation Type: SINGLE_PHASE"))
	assert.Assert(t, strings.Contains(s, "Phases: 1"))
	assert.Assert(t, strings.Contains(s, "Tue Power: 2500.00W"))
	assert.Equal(t, strings.Count(s, "Environment:"), 2)
}

func TestNewRejectsInvalidParameters(t *testing.T) {
	cases := []struct {
		name   string
		params config.Parameters
	}{
		{"zero", config.Parameters{}},
		{"zero voltage", config.Parameters{SupplyVoltage: 0, AggregatePowerFactor: 0.95, BranchCurrentMargin: 1.25}},
		{"power factor above one", config.Parameters{SupplyVoltage: 220, AggregatePowerFactor: 1.1, BranchCurrentMargin: 1.25}},
		{"nan margin", config.Parameters{SupplyVoltage: 220, AggregatePowerFactor: 0.95, BranchCurrentMargin: math.NaN()}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(house(t), TypeUnspecified, WithParameters(c.params))
			assert.ErrorIs(t, err, config.ErrInvalidParameter)
		})
	}
}
