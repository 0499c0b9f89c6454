package installation

const defaultTUEDemandFactor = 0.38

// tueDemandFactors holds the factor for 1 to 25 dedicated circuits.
var tueDemandFactors = []float64{
	1.00, 1.00, 0.84, 0.76, 0.70,
	0.65, 0.60, 0.57, 0.54, 0.52,
	0.49, 0.48, 0.46, 0.45, 0.44,
	0.43, 0.42, 0.41, 0.40, 0.40,
	0.39, 0.39, 0.39, 0.38, 0.38,
}

// tueDemandFactor returns the demand factor for n dedicated circuits. Counts
// outside the table, zero included, get 0.38.
func tueDemandFactor(n int) float64 {
	if n < 1 || n > len(tueDemandFactors) {
		return defaultTUEDemandFactor
	}
	return tueDemandFactors[n-1]
}

// lightingTUGDemandFactor returns the demand factor for the combined lighting
// and general purpose outlet load in W.
func lightingTUGDemandFactor(power float64) float64 {
	switch {
	case power <= 1000:
		return 0.86
	case power <= 2000:
		return 0.75
	case power <= 3000:
		return 0.66
	case power <= 4000:
		return 0.59
	case power <= 5000:
		return 0.52
	case power <= 6000:
		return 0.45
	case power <= 7000:
		return 0.40
	case power <= 8000:
		return 0.35
	case power <= 9000:
		return 0.31
	case power <= 10000:
		return 0.27
	default:
		return 0.24
	}
}
