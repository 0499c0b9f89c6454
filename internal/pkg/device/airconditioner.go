package device

import "fmt"

const (
	btuPerWatt                = 3412.14
	airConditionerPowerFactor = 0.8
	defaultAirConditionerName = "Ar Condicionado"
)

// NewAirConditioner returns an air conditioner sized by power in W or by btu.
// When both are given they are used as is.
func NewAirConditioner(name string, power, btu float64) (Device, error) {
	if name == "" {
		name = defaultAirConditionerName
	}

	if power != 0 && btu == 0 {
		btu = power * btuPerWatt
	}
	if btu != 0 && power == 0 {
		power = btu / btuPerWatt
	}
	if power == 0 && btu == 0 {
		return Device{}, fmt.Errorf("power or btu must be defined on %v: %w", name, ErrMissingCoolingCapacity)
	}

	d, err := build(name, KindAirConditioner, Quantities{Power: power, PowerFactor: airConditionerPowerFactor})
	if err != nil {
		return Device{}, err
	}
	d.cooling = coolingPayload{btu: btu}
	return d, nil
}

// BTU returns the cooling capacity and false when d is not an air conditioner.
func (d Device) BTU() (float64, bool) {
	if d.kind != KindAirConditioner {
		return 0, false
	}
	return d.cooling.btu, true
}
