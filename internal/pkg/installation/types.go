package installation

// Type is the supply arrangement of an installation, ordered from the smallest
// to the largest service.
type Type int

const (
	// TypeUnspecified lets New pick the minimum type for the demanded power.
	TypeUnspecified Type = iota
	SinglePhase
	TwoPhase
	ThreePhase
	ExclusiveTransformer
)

func (t Type) String() string {
	switch t {
	case TypeUnspecified:
		return "UNSPECIFIED"
	case SinglePhase:
		return "SINGLE_PHASE"
	case TwoPhase:
		return "TWO_PHASE"
	case ThreePhase:
		return "THREE_PHASE"
	case ExclusiveTransformer:
		return "EXCLUSIVE_TRANSFORMER"
	default:
		return "UNKNOWN"
	}
}

// rank orders the types; unknown values rank with TypeUnspecified.
func (t Type) rank() int {
	switch t {
	case SinglePhase:
		return 1
	case TwoPhase:
		return 2
	case ThreePhase:
		return 3
	case ExclusiveTransformer:
		return 4
	default:
		return 0
	}
}

// Exceeds reports whether t is a larger service than o.
func (t Type) Exceeds(o Type) bool {
	return t.rank() > o.rank()
}

// Phases returns the number of live conductors of the service.
func (t Type) Phases() int {
	switch t {
	case SinglePhase:
		return 1
	case TwoPhase:
		return 2
	default:
		return 3
	}
}

// minimumType returns the smallest service able to supply power W.
func minimumType(power float64) Type {
	switch {
	case power <= 15000:
		return SinglePhase
	case power <= 25000:
		return TwoPhase
	case power <= 50000:
		return ThreePhase
	default:
		return ExclusiveTransformer
	}
}
