package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/viper"
)

const envPrefix = "CGC_LOAD"

const (
	keySupplyVoltage        = "SUPPLY_VOLTAGE"
	keyAggregatePowerFactor = "AGGREGATE_POWER_FACTOR"
	keyBranchCurrentMargin  = "BRANCH_CURRENT_MARGIN"
)

// ErrInvalidParameter is returned by Load when an override is out of range.
var ErrInvalidParameter = errors.New("invalid calculation parameter")

// Parameters are the installation wide constants used to turn demanded power into current.
type Parameters struct {
	SupplyVoltage        float64
	AggregatePowerFactor float64
	BranchCurrentMargin  float64
}

// Default returns the parameters of a 220 V supply.
func Default() Parameters {
	return Parameters{
		SupplyVoltage:        220,
		AggregatePowerFactor: 0.95,
		BranchCurrentMargin:  1.25,
	}
}

// Load returns Default overridden by CGC_LOAD_* environment variables.
func Load() (Parameters, error) {
	v := viper.New()
	d := Default()
	v.SetDefault(keySupplyVoltage, d.SupplyVoltage)
	v.SetDefault(keyAggregatePowerFactor, d.AggregatePowerFactor)
	v.SetDefault(keyBranchCurrentMargin, d.BranchCurrentMargin)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	p := Parameters{
		SupplyVoltage:        v.GetFloat64(keySupplyVoltage),
		AggregatePowerFactor: v.GetFloat64(keyAggregatePowerFactor),
		BranchCurrentMargin:  v.GetFloat64(keyBranchCurrentMargin),
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

// Validate checks every parameter is finite and positive and the power factor is at most 1.
func (p Parameters) Validate() error {
	if !finitePositive(p.SupplyVoltage) {
		return fmt.Errorf("%v %v: %w", keySupplyVoltage, p.SupplyVoltage, ErrInvalidParameter)
	}
	if !finitePositive(p.AggregatePowerFactor) || p.AggregatePowerFactor > 1 {
		return fmt.Errorf("%v %v: %w", keyAggregatePowerFactor, p.AggregatePowerFactor, ErrInvalidParameter)
	}
	if !finitePositive(p.BranchCurrentMargin) {
		return fmt.Errorf("%v %v: %w", keyBranchCurrentMargin, p.BranchCurrentMargin, ErrInvalidParameter)
	}
	return nil
}

func finitePositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
