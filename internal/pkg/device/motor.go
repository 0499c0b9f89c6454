package device

import "fmt"

const (
	wattsPerHorsePower = 746.0
	defaultMotorName   = "Motor"
)

// MotorConfig holds the motor nameplate values. Either HorsePower or the
// Power and Efficiency pair must be set.
type MotorConfig struct {
	Name        string  `json:"Name"`
	Power       float64 `json:"Power"`
	PowerFactor float64 `json:"PowerFactor"`
	HorsePower  float64 `json:"HorsePower"`
	Efficiency  float64 `json:"Efficiency"`
}

// NewMotor returns a motor whose power is derived from its horse power.
func NewMotor(c MotorConfig) (Device, error) {
	name := c.Name
	if name == "" {
		name = defaultMotorName
	}

	hp := motorHorsePower(c)
	if hp == 0 {
		return Device{}, fmt.Errorf("%v: two of the following must be defined: power, horse_power: %w",
			name, ErrMissingHorsePower)
	}

	power := hp * wattsPerHorsePower
	pf := c.PowerFactor
	if pf == 0 {
		pf = motorPowerFactor(power, hp)
	}

	d, err := build(name, KindMotor, Quantities{Power: power, PowerFactor: pf})
	if err != nil {
		return Device{}, err
	}
	d.motor = motorPayload{horsePower: hp, efficiency: c.Efficiency}
	return d, nil
}

// motorHorsePower adds the efficiency loss on top of the shaft power when
// horse power is not given directly.
func motorHorsePower(c MotorConfig) float64 {
	if c.HorsePower != 0 {
		return c.HorsePower
	}
	if c.Power != 0 && c.Efficiency != 0 {
		hp := c.Power / wattsPerHorsePower
		return hp + hp*(1-c.Efficiency)
	}
	return 0
}

func motorPowerFactor(power, horsePower float64) float64 {
	switch {
	case power < 600:
		return 0.5
	case horsePower < 4:
		return 0.75
	case horsePower < 50:
		return 0.85
	default:
		return 0.9
	}
}

// HorsePower returns the motor horse power and false when d is not a motor.
func (d Device) HorsePower() (float64, bool) {
	if d.kind != KindMotor {
		return 0, false
	}
	return d.motor.horsePower, true
}

// Efficiency returns the efficiency the motor was configured with, zero when
// horse power was given directly.
func (d Device) Efficiency() (float64, bool) {
	if d.kind != KindMotor {
		return 0, false
	}
	return d.motor.efficiency, true
}
