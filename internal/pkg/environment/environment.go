package environment

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/ohowland/cgc_load/internal/pkg/device"
)

var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("invalid environment dimensions")
	// ErrInvalidLight is returned when the light fixture is not a light device.
	ErrInvalidLight = errors.New("invalid light fixture")
)

// maxLightPoints is the largest even int.
const maxLightPoints = math.MaxInt - 1

// Environment is a room of the installation. Every load value is derived from
// the geometry, the usage category, the light fixture and the dedicated devices.
type Environment struct {
	pid     uuid.UUID
	name    string
	width   float64
	height  float64
	kind    Type
	light   device.Device
	devices []device.Device
}

// New returns a configured Environment. width and height are in meters.
func New(name string, width, height float64, t Type, light device.Device, specific []device.Device) (Environment, error) {
	if !finitePositive(width) || !finitePositive(height) || !finitePositive(width*height) {
		return Environment{}, fmt.Errorf("%v: %vm x %vm: %w", name, width, height, ErrInvalidDimensions)
	}
	if light.Kind() != device.KindLight || !finitePositive(light.Power()) {
		return Environment{}, fmt.Errorf("%v: %v is a %v device: %w", name, light.Name(), light.Kind(), ErrInvalidLight)
	}

	pid, err := uuid.NewUUID()
	if err != nil {
		return Environment{}, err
	}

	devices := make([]device.Device, len(specific))
	copy(devices, specific)

	return Environment{
		pid:     pid,
		name:    name,
		width:   width,
		height:  height,
		kind:    t,
		light:   light,
		devices: devices,
	}, nil
}

// PID is a getter for the environment PID
func (e Environment) PID() uuid.UUID {
	return e.pid
}

// Name is a getter for the environment name
func (e Environment) Name() string {
	return e.name
}

// Width in meters
func (e Environment) Width() float64 {
	return e.width
}

// Height in meters
func (e Environment) Height() float64 {
	return e.height
}

// Type returns the usage category
func (e Environment) Type() Type {
	return e.kind
}

// Light returns the light fixture used to count light points
func (e Environment) Light() device.Device {
	return e.light
}

// Devices returns a copy of the dedicated circuit devices
func (e Environment) Devices() []device.Device {
	devices := make([]device.Device, len(e.devices))
	copy(devices, e.devices)
	return devices
}

// Area in m²
func (e Environment) Area() float64 {
	return e.width * e.height
}

// Perimeter in m
func (e Environment) Perimeter() float64 {
	return 2 * (e.width + e.height)
}

// LightDensity returns the lighting load per m² of the environment type
func (e Environment) LightDensity() float64 {
	return e.kind.LightDensity()
}

// RecommendedPower is the lighting load from the type density in VA
func (e Environment) RecommendedPower() float64 {
	return e.Area() * e.LightDensity()
}

// MinimumLightPower is 100 VA for the first 6 m² plus 60 VA for each whole 4 m² above it.
func (e Environment) MinimumLightPower() float64 {
	area := e.Area()
	if area < 6 {
		return 100
	}
	return 100 + math.Floor((area-6)/4)*60
}

// LightPower is the greater of the minimum and the recommended lighting load
func (e Environment) LightPower() float64 {
	return math.Max(e.MinimumLightPower(), e.RecommendedPower())
}

// MinimumLightPoints returns the number of fixtures, rounded up to an even count.
// Counts too large for an int are capped at maxLightPoints.
func (e Environment) MinimumLightPoints() int {
	points := math.Floor(e.RecommendedPower() * math.Exp(-0.09*e.Area()) / e.light.Power())
	if !(points >= 0) {
		return 0
	}
	if points >= float64(maxLightPoints) {
		return maxLightPoints
	}

	n := int(points)
	if n%2 != 0 {
		return n + 1
	}
	return n
}

// MinimumTUGNumber returns the number of general purpose outlets required by the
// perimeter and area of the environment.
func (e Environment) MinimumTUGNumber() int {
	perimeter := e.Perimeter()
	area := e.Area()

	switch e.kind {
	case KitchensAndDiningRooms, LaundriesAndWorkshops:
		return max(ceil(perimeter/3.5), 2)
	case BathroomsAndOtherFacilities,
		Various, Garages, CorridorsStaircasesCirculationAreasAndLockerRooms:
		return max(ceil(perimeter/6), 2)
	case ShopsAndCommercialEstablishments:
		if area <= 40 {
			return max(ceil(perimeter/3), ceil(area/4))
		}
		return 10 + ceil((area-40)/10)
	default:
		if area <= 6 {
			return 2
		}
		return 1 + ceil(perimeter/5)
	}
}

// MinimumTUGPower returns the general purpose outlet load in VA. Wet areas get
// 600 VA for each of the first three outlets and 100 VA for the rest.
func (e Environment) MinimumTUGPower() float64 {
	n := e.MinimumTUGNumber()

	switch e.kind {
	case KitchensAndDiningRooms, BathroomsAndOtherFacilities, LaundriesAndWorkshops:
		if n <= 3 {
			return float64(600 * n)
		}
		return float64(1800 + (n-3)*100)
	case ShopsAndCommercialEstablishments:
		return float64(200 * n)
	default:
		return float64(100 * n)
	}
}

// TUGNumber is the number of general purpose outlets
func (e Environment) TUGNumber() int {
	return e.MinimumTUGNumber()
}

// TUGPower is the general purpose outlet load
func (e Environment) TUGPower() float64 {
	return e.MinimumTUGPower()
}

// TUENumber is the number of dedicated circuits, one per specific device
func (e Environment) TUENumber() int {
	return len(e.devices)
}

// TUEPower is the summed real power of the specific devices
func (e Environment) TUEPower() float64 {
	var power float64
	for _, d := range e.devices {
		power += d.Power()
	}
	return power
}

func (e Environment) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Environment:\n")
	fmt.Fprintf(&b, "\tName: %v - Type: %v - Area: %.2fm² - Perimeter: %.2fm\n", e.name, e.kind, e.Area(), e.Perimeter())
	fmt.Fprintf(&b, "\tLight:\n")
	fmt.Fprintf(&b, "\t\tLight: %v\n", e.light)
	fmt.Fprintf(&b, "\t\tRecommended Power: %.2fW\n", e.RecommendedPower())
	fmt.Fprintf(&b, "\t\tMinimum Light Power: %.2fW\n", e.MinimumLightPower())
	fmt.Fprintf(&b, "\t\tLight Power: %.2fW\n", e.LightPower())
	fmt.Fprintf(&b, "\t\tMinimum Light Points: %d\n", e.MinimumLightPoints())
	fmt.Fprintf(&b, "\tTug:\n")
	fmt.Fprintf(&b, "\t\tMinimum Tug Number: %d\n", e.MinimumTUGNumber())
	fmt.Fprintf(&b, "\t\tMinimum Tug Power: %.2fW\n", e.MinimumTUGPower())
	fmt.Fprintf(&b, "\tTue:\n")
	fmt.Fprintf(&b, "\t\tMinimum Tue Number: %d\n", e.TUENumber())
	fmt.Fprintf(&b, "\t\tTue Power: %.2fW", e.TUEPower())
	return b.String()
}

func finitePositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

func ceil(x float64) int {
	return int(math.Ceil(x))
}
