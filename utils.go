package cvreport

import (
	"math"
	"sort"
	"strings"
)

//////
// Helper functions.
//////

// Helper function used by PI and EI to compute the cumulative distribution
// function of the standard normal distribution.
//
// Returns:
// - Probability that a standard normal random variable is less than x.
func normalCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}

// Helper function used by EI to compute the probability density function
// of the standard normal distribution.
//
// Returns:
// - Value of the standard normal PDF at x.
func normalPDF(x float64) float64 {
	return math.Exp(-x*x/2.0) / math.Sqrt(2.0*math.Pi)
}

// welfordStd computes the population standard deviation of the values in
// a single numerically stable pass (Welford's online algorithm).
//
// Parameters:
// - values: Fold scores to summarize
//
// Returns:
// - float64: Population standard deviation (N divisor); 0 for fewer than
//   two values
//
// Important notes:
// - Population convention (divide by N, not N-1) matches the mean/std
//   summary printed for cross-validation folds: the folds are the whole
//   set of observations being described, not a sample of a larger one
// - A single fold has no spread, so its standard deviation is defined
//   as 0
// - Single pass; does not allocate; input is not modified.
func welfordStd(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	var (
		count float64
		mean  float64
		m2    float64
	)

	for _, v := range values {
		count++

		delta := v - mean
		mean += delta / count
		m2 += delta * (v - mean)
	}

	return math.Sqrt(m2 / count)
}

// mean returns the arithmetic mean of the values. Callers guarantee a
// non-empty slice.
func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// formatParams renders a parameter mapping as "name=value, name=value"
// with names in lexicographic order, so the same mapping always renders
// the same way regardless of map iteration order.
//
// Usage example:
//
//	formatParams(Params{"b": IntValue(2), "a": None})
//	// "a=none, b=2"
func formatParams(params Params) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}

	sort.Strings(names)

	var sb strings.Builder

	for i, name := range names {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(params[name].String())
	}

	return sb.String()
}
