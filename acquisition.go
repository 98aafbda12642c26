package cvreport

import "math"

//////
// Available acquisition functions for the Bayesian trial search.
// Each function helps decide which configuration to evaluate next by
// balancing exploration (trying uncertain regions) and exploitation
// (focusing on regions known to score well).
//////

// UCB implements the Upper Confidence Bound acquisition function.
//
// How it works:
// - Combines the predicted mean score with the uncertainty (variance)
// - Higher values are better (we're maximizing validation score)
// - The Beta parameter controls the trade-off between exploration and exploitation
//
// Parameters:
// - mean: Predicted mean validation score at this configuration
// - variance: Uncertainty in the prediction
// - params.Beta: Exploration weight (higher = more exploration)
//
// When to use:
// - General purpose, works well in most cases
// - When you want direct control over exploration-exploitation trade-off
//
// Example:
//
//	params := AcquisitionParams{
//	    Beta: 2.0,  // Balance between exploration and exploitation
//	}
//	value := UCB(0.9, 0.02, params)
func UCB(mean, variance float64, params AcquisitionParams) float64 {
	return mean + params.Beta*math.Sqrt(variance)
}

// ProbabilityOfImprovement (PI) calculates the probability that a
// configuration will improve upon the best score observed so far.
//
// How it works:
// - Estimates the probability of beating the current best score
// - Uses a normal distribution assumption
// - Xi parameter adds a minimum improvement requirement
//
// Parameters:
// - mean: Predicted mean validation score at this configuration
// - variance: Uncertainty in the prediction
// - params.BestSoFar: Best score observed so far
// - params.Xi: Minimum improvement desired
//
// When to use:
// - When you want to be conservative in exploring new configurations
// - In problems where being "probably better" matters more than "how
//   much better"
//
// Example:
//
//	params := AcquisitionParams{
//	    BestSoFar: 0.93,  // Current best mean validation score
//	    Xi: 0.01,         // Require a meaningful improvement
//	}
//	prob := ProbabilityOfImprovement(0.94, 0.02, params)
func ProbabilityOfImprovement(mean, variance float64, params AcquisitionParams) float64 {
	z := (mean - params.BestSoFar - params.Xi) / math.Sqrt(variance)

	return normalCDF(z)
}

// ExpectedImprovement (EI) calculates the expected magnitude of the
// improvement over the best score observed so far.
//
// How it works:
// - Combines the probability of improvement with its magnitude
// - Balances how likely and how large the improvement might be
// - Often provides better exploration than PI
//
// Parameters:
// - mean: Predicted mean validation score at this configuration
// - variance: Uncertainty in the prediction
// - params.BestSoFar: Best score observed so far
// - params.Xi: Minimum improvement desired
//
// When to use:
// - Most commonly used acquisition function
// - In problems where the magnitude of improvement matters
//
// Example:
//
//	params := AcquisitionParams{
//	    BestSoFar: 0.93,
//	    Xi: 0.01,
//	}
//	expected := ExpectedImprovement(0.94, 0.02, params)
func ExpectedImprovement(mean, variance float64, params AcquisitionParams) float64 {
	sigma := math.Sqrt(variance)

	z := (mean - params.BestSoFar - params.Xi) / sigma

	return (mean-params.BestSoFar-params.Xi)*normalCDF(z) + sigma*normalPDF(z)
}

// ThompsonSampling implements Thompson Sampling acquisition by drawing
// random samples from the posterior distribution.
//
// How it works:
// - Takes random samples from our belief about the score surface
// - Naturally balances exploration and exploitation
//
// Parameters:
// - mean: Predicted mean validation score at this configuration
// - variance: Uncertainty in the prediction
// - params.RandomState: Random number generator (required!)
//
// When to use:
// - When you want a simple but effective approach
// - When you want to avoid the complexity of tuning Beta or Xi
//
// Warning:
// - Always initialize RandomState before using this function
// - Don't share RandomState between different search runs.
func ThompsonSampling(mean, variance float64, params AcquisitionParams) float64 {
	return mean + math.Sqrt(variance)*params.RandomState.NormFloat64()
}
