package device

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingElectricalQuantity is returned when fewer than two of power,
	// power factor and apparent power can be resolved.
	ErrMissingElectricalQuantity = errors.New("missing electrical quantity")
	// ErrMissingHorsePower is returned by NewMotor when neither horse power nor a
	// power and efficiency pair is given.
	ErrMissingHorsePower = errors.New("missing horse power")
	// ErrMissingCoolingCapacity is returned by NewAirConditioner when neither power nor btu is given.
	ErrMissingCoolingCapacity = errors.New("missing cooling capacity")
)

// QuantityError names the device and the quantity left unresolved.
type QuantityError struct {
	Device   string
	Quantity Quantity
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("%v not defined on %v, two of the following must be defined: power, power_factor, apparent_power",
		e.Quantity, e.Device)
}

// Unwrap allows errors.Is(err, ErrMissingElectricalQuantity)
func (e *QuantityError) Unwrap() error {
	return ErrMissingElectricalQuantity
}

// Quantity identifies a member of the electrical triple.
type Quantity int

const (
	Power Quantity = iota
	PowerFactor
	ApparentPower
)

func (q Quantity) String() string {
	switch q {
	case Power:
		return "power"
	case PowerFactor:
		return "power factor"
	case ApparentPower:
		return "apparent power"
	default:
		return "unknown quantity"
	}
}
