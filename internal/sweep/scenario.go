package sweep

import "math/rand"

// Synthesize generates the demand scenario for one job: Samples independent
// normal draws with mean Mu and standard deviation Sigma, each clamped to be
// non-negative.
//
// The pseudorandom generator is seeded from the job seed and is private to
// this call, so repeated calls with the same seed and economics produce a
// bit-identical scenario regardless of what other jobs run concurrently.
//
// Parameters:
//   - seed: The job's seed from its Config.
//   - econ: The fixed economic and statistical constants.
//
// Returns:
//   - []float64: The ordered demand scenario of length econ.Samples.
func Synthesize(seed int64, econ Economics) []float64 {
	rng := rand.New(rand.NewSource(seed))
	scenario := make([]float64, econ.Samples)
	for i := range scenario {
		d := econ.Mu + econ.Sigma*rng.NormFloat64()
		if d < 0 {
			d = 0
		}
		scenario[i] = d
	}
	return scenario
}

// Bounds computes the two revenue bounds passed to the solver as
// numerical-stability hints. They are derived from the scenario envelope and
// the fixed economics; they do not constrain the solver's output.
//
//	maxRevenue = max(scenario) * (retail - cost)
//	minRevenue = max(scenario) * (recover - cost) + min(scenario) * retail
//
// Parameters:
//   - scenario: A non-empty demand scenario.
//   - econ: The fixed economic constants.
//
// Returns:
//   - maxRevenue: The upper revenue hint.
//   - minRevenue: The lower revenue hint.
func Bounds(scenario []float64, econ Economics) (maxRevenue, minRevenue float64) {
	maxDemand := scenario[0]
	minDemand := scenario[0]
	for _, d := range scenario[1:] {
		if d > maxDemand {
			maxDemand = d
		}
		if d < minDemand {
			minDemand = d
		}
	}
	maxRevenue = maxDemand * (econ.Retail - econ.Cost)
	minRevenue = maxDemand*(econ.Recover-econ.Cost) + minDemand*econ.Retail
	return maxRevenue, minRevenue
}
