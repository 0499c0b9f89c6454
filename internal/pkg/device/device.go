package device

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Kind tags the device variant.
type Kind int

const (
	KindGeneric Kind = iota
	KindLight
	KindMotor
	KindAirConditioner
)

func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "GENERIC"
	case KindLight:
		return "LIGHT"
	case KindMotor:
		return "MOTOR"
	case KindAirConditioner:
		return "AIR_CONDITIONER"
	default:
		return "UNKNOWN"
	}
}

// Device is an electrical load with a resolved power triple. Variant specific
// inputs live in the light, motor and cooling payloads; only the one matching
// kind is populated.
type Device struct {
	pid        uuid.UUID
	name       string
	kind       Kind
	quantities Quantities

	light   lightPayload
	motor   motorPayload
	cooling coolingPayload
}

type lightPayload struct {
	lightType LightType
}

type motorPayload struct {
	horsePower float64
	efficiency float64
}

type coolingPayload struct {
	btu float64
}

// New returns a generic Device. Two of the three quantities must be supplied.
func New(name string, q Quantities) (Device, error) {
	return build(name, KindGeneric, q)
}

func build(name string, kind Kind, q Quantities) (Device, error) {
	resolved, err := q.Resolve(name)
	if err != nil {
		return Device{}, err
	}

	pid, err := uuid.NewUUID()
	if err != nil {
		return Device{}, err
	}

	log.Debug().
		Str("device", name).
		Stringer("kind", kind).
		Float64("power", resolved.Power).
		Float64("power_factor", resolved.PowerFactor).
		Float64("apparent_power", resolved.ApparentPower).
		Msg("device resolved")

	return Device{pid: pid, name: name, kind: kind, quantities: resolved}, nil
}

// PID is a getter for the device PID
func (d Device) PID() uuid.UUID {
	return d.pid
}

// Name is a getter for the device name
func (d Device) Name() string {
	return d.name
}

// Kind returns the device variant
func (d Device) Kind() Kind {
	return d.kind
}

// Quantities returns the resolved power triple
func (d Device) Quantities() Quantities {
	return d.quantities
}

// Power returns the real power in W
func (d Device) Power() float64 {
	return d.quantities.Power
}

// PowerFactor returns the power factor
func (d Device) PowerFactor() float64 {
	return d.quantities.PowerFactor
}

// ApparentPower returns the apparent power in VA
func (d Device) ApparentPower() float64 {
	return d.quantities.ApparentPower
}

func (d Device) String() string {
	return fmt.Sprintf("%v - %.2f W - PF: %.2f - %.2f VA",
		d.name, d.Power(), d.PowerFactor(), d.ApparentPower())
}
