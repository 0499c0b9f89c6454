package installation

import (
	"fmt"
	"strings"

	"github.com/ohowland/cgc_load/internal/pkg/config"
	"github.com/ohowland/cgc_load/internal/pkg/environment"
	"github.com/rs/zerolog/log"
)

// Installation aggregates the loads of its environments into the demanded
// power, supply type and input current.
type Installation struct {
	environments []environment.Environment
	kind         Type
	params       config.Parameters
}

// Option configures an Installation.
type Option func(*Installation)

// WithParameters replaces the default supply parameters.
func WithParameters(p config.Parameters) Option {
	return func(i *Installation) {
		i.params = p
	}
}

// New returns an Installation supplied by requested, or by the minimum type
// for its demanded power when requested is smaller. It fails when the supply
// parameters do not validate.
func New(environments []environment.Environment, requested Type, opts ...Option) (Installation, error) {
	envs := make([]environment.Environment, len(environments))
	copy(envs, environments)

	i := Installation{
		environments: envs,
		params:       config.Default(),
	}
	for _, opt := range opts {
		opt(&i)
	}
	if err := i.params.Validate(); err != nil {
		return Installation{}, fmt.Errorf("installation parameters: %w", err)
	}

	minimum := i.MinimumType()
	if requested.Exceeds(minimum) {
		i.kind = requested
		return i, nil
	}

	if requested != TypeUnspecified && requested != minimum {
		log.Warn().
			Stringer("requested", requested).
			Stringer("minimum", minimum).
			Float64("demanded_power", i.TotalDemandedPower()).
			Msg("requested installation type below minimum")
	}
	i.kind = minimum
	return i, nil
}

// Environments returns a copy of the environments
func (i Installation) Environments() []environment.Environment {
	envs := make([]environment.Environment, len(i.environments))
	copy(envs, i.environments)
	return envs
}

// Type returns the resolved installation type
func (i Installation) Type() Type {
	return i.kind
}

// Parameters returns the supply parameters used for current calculation
func (i Installation) Parameters() config.Parameters {
	return i.params
}

// LightPower is the summed lighting load in W
func (i Installation) LightPower() float64 {
	var power float64
	for _, e := range i.environments {
		power += e.LightPower()
	}
	return power
}

// LightNumber is the summed number of light points
func (i Installation) LightNumber() int {
	var n int
	for _, e := range i.environments {
		n += e.MinimumLightPoints()
	}
	return n
}

// TUGPower is the summed general purpose outlet load in W
func (i Installation) TUGPower() float64 {
	var power float64
	for _, e := range i.environments {
		power += e.MinimumTUGPower()
	}
	return power
}

// TUGNumber is the summed number of general purpose outlets
func (i Installation) TUGNumber() int {
	var n int
	for _, e := range i.environments {
		n += e.MinimumTUGNumber()
	}
	return n
}

// TUEPower is the summed dedicated circuit load in W
func (i Installation) TUEPower() float64 {
	var power float64
	for _, e := range i.environments {
		power += e.TUEPower()
	}
	return power
}

// TUENumber is the summed number of dedicated circuits
func (i Installation) TUENumber() int {
	var n int
	for _, e := range i.environments {
		n += e.TUENumber()
	}
	return n
}

// DemandFactorForLightingTUG is the demand factor of the lighting plus outlet load.
func (i Installation) DemandFactorForLightingTUG() float64 {
	return lightingTUGDemandFactor(i.LightPower() + i.TUGPower())
}

// DemandFactorForTUE is the demand factor for n dedicated circuits.
func (i Installation) DemandFactorForTUE(n int) float64 {
	return tueDemandFactor(n)
}

// TotalDemandedPower is the connected load reduced by the demand factors, in W.
func (i Installation) TotalDemandedPower() float64 {
	general := (i.LightPower() + i.TUGPower()) * i.DemandFactorForLightingTUG()
	dedicated := i.TUEPower() * i.DemandFactorForTUE(i.TUENumber())
	return general + dedicated
}

// TotalDemandedApparentPower in VA, at the aggregate power factor.
func (i Installation) TotalDemandedApparentPower() float64 {
	return i.TotalDemandedPower() / i.params.AggregatePowerFactor
}

// MinimumType is the smallest installation type able to supply the demanded power.
func (i Installation) MinimumType() Type {
	return minimumType(i.TotalDemandedPower())
}

// Phases of the resolved installation type
func (i Installation) Phases() int {
	return i.kind.Phases()
}

// TotalDemandedCurrent per phase, in A.
func (i Installation) TotalDemandedCurrent() float64 {
	return i.TotalDemandedPower() / (i.params.SupplyVoltage * float64(i.Phases()))
}

// InputBranchCurrent is the demanded current with the branch margin applied, in A.
func (i Installation) InputBranchCurrent() float64 {
	return i.TotalDemandedCurrent() * i.params.BranchCurrentMargin
}

func (i Installation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Installation:\n")
	fmt.Fprintf(&b, "\tLight Power: %.2fW\n", i.LightPower())
	fmt.Fprintf(&b, "\tLight Number: %d\n", i.LightNumber())
	fmt.Fprintf(&b, "\tTug Power: %.2fW\n", i.TUGPower())
	fmt.Fprintf(&b, "\tTug Number: %d\n", i.TUGNumber())
	fmt.Fprintf(&b, "\tTue Power: %.2fW\n", i.TUEPower())
	fmt.Fprintf(&b, "\tTue Number: %d\n", i.TUENumber())
	fmt.Fprintf(&b, "\tTotal Demanded Power: %.2fW\n", i.TotalDemandedPower())
	fmt.Fprintf(&b, "\tInstallation Type: %v\n", i.kind)
	fmt.Fprintf(&b, "\tPhases: %d\n", i.Phases())
	fmt.Fprintf(&b, "\tTotal Demanded Apparent Power: %.2fVA\n", i.TotalDemandedApparentPower())
	fmt.Fprintf(&b, "\tTotal Demanded Current: %.2fA\n", i.TotalDemandedCurrent())
	fmt.Fprintf(&b, "\tInput Branch Current: %.2fA", i.InputBranchCurrent())
	for _, e := range i.environments {
		fmt.Fprintf(&b, "\n%v", e)
	}
	return b.String()
}
