package device

// LightType is the lamp technology of a light fixture.
type LightType int

const (
	Incandescent LightType = iota
	LED
	CompactFluorescent
	Mixed
	LowPressureSodium
	HighPressureSodium
	MetalHalide
	FluorescentWithStarterLowPF
	QuickStartFluorescentLowPF
	MercuryVaporLowPF
	FluorescentWithStarterHighPF
	QuickStartFluorescentHighPF
	MercuryVaporHighPF
)

const (
	defaultLightName        = "Lampada"
	defaultLightPowerFactor = 0.8
)

// PowerFactor returns the typical power factor of the lamp technology, 0.8 when unknown.
func (t LightType) PowerFactor() float64 {
	switch t {
	case Incandescent, Mixed:
		return 1.0
	case LED:
		return 0.65
	case CompactFluorescent:
		return 0.7
	case LowPressureSodium, FluorescentWithStarterHighPF, QuickStartFluorescentHighPF, MercuryVaporHighPF:
		return 0.85
	case HighPressureSodium:
		return 0.4
	case MetalHalide:
		return 0.6
	case FluorescentWithStarterLowPF, QuickStartFluorescentLowPF, MercuryVaporLowPF:
		return 0.5
	default:
		return defaultLightPowerFactor
	}
}

func (t LightType) String() string {
	switch t {
	case Incandescent:
		return "INCANDESCENT"
	case LED:
		return "LED"
	case CompactFluorescent:
		return "COMPACT_FLUORESCENT"
	case Mixed:
		return "MIXED"
	case LowPressureSodium:
		return "LOW_PRESSURE_SODIUM"
	case HighPressureSodium:
		return "HIGH_PRESSURE_SODIUM"
	case MetalHalide:
		return "METAL_HALIDE"
	case FluorescentWithStarterLowPF:
		return "FLUORESCENT_WITH_STARTER_LOW_PF"
	case QuickStartFluorescentLowPF:
		return "QUICK_START_FLUORESCENT_LOW_PF"
	case MercuryVaporLowPF:
		return "MERCURY_VAPOR_LOW_PF"
	case FluorescentWithStarterHighPF:
		return "FLUORESCENT_WITH_STARTER_HIGH_PF"
	case QuickStartFluorescentHighPF:
		return "QUICK_START_FLUORESCENT_HIGH_PF"
	case MercuryVaporHighPF:
		return "MERCURY_VAPOR_HIGH_PF"
	default:
		return "UNKNOWN"
	}
}

// NewLight returns a light fixture drawing power W. The power factor comes from the lamp technology.
func NewLight(name string, power float64, lightType LightType) (Device, error) {
	if name == "" {
		name = defaultLightName
	}

	d, err := build(name, KindLight, Quantities{Power: power, PowerFactor: lightType.PowerFactor()})
	if err != nil {
		return Device{}, err
	}
	d.light = lightPayload{lightType: lightType}
	return d, nil
}

// LightType returns the lamp technology and false when d is not a light.
func (d Device) LightType() (LightType, bool) {
	if d.kind != KindLight {
		return 0, false
	}
	return d.light.lightType, true
}
