package device

// Quantities is the electrical triple of a device. A zero field is treated as
// not supplied; at least two of the three must be non-zero for Resolve to succeed.
type Quantities struct {
	Power         float64 `json:"Power"`
	PowerFactor   float64 `json:"PowerFactor"`
	ApparentPower float64 `json:"ApparentPower"`
}

// Resolve derives the missing member of the triple from the other two.
// name is only used to label the returned error.
func (q Quantities) Resolve(name string) (Quantities, error) {
	resolved := Quantities{
		Power:         resolvePower(q),
		PowerFactor:   resolvePowerFactor(q),
		ApparentPower: resolveApparentPower(q),
	}

	if resolved.Power == 0 {
		return Quantities{}, &QuantityError{Device: name, Quantity: Power}
	}
	if resolved.PowerFactor == 0 {
		return Quantities{}, &QuantityError{Device: name, Quantity: PowerFactor}
	}
	if resolved.ApparentPower == 0 {
		return Quantities{}, &QuantityError{Device: name, Quantity: ApparentPower}
	}
	return resolved, nil
}

func resolvePower(q Quantities) float64 {
	if q.Power != 0 {
		return q.Power
	}
	if q.ApparentPower != 0 && q.PowerFactor != 0 {
		return q.ApparentPower * q.PowerFactor
	}
	return 0
}

func resolvePowerFactor(q Quantities) float64 {
	if q.PowerFactor != 0 {
		return q.PowerFactor
	}
	if q.Power != 0 && q.ApparentPower != 0 {
		return q.Power / q.ApparentPower
	}
	return 0
}

func resolveApparentPower(q Quantities) float64 {
	if q.ApparentPower != 0 {
		return q.ApparentPower
	}
	if q.Power != 0 && q.PowerFactor != 0 {
		return q.Power / q.PowerFactor
	}
	return 0
}
