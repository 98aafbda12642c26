package cvreport

import (
	"math"
	"sync"
)

//////
// Const, vars, types.
//////

// gaussianProcess implements a thread-safe Gaussian Process model for
// regression over float-encoded hyperparameter configurations. It is used
// to predict the validation score of untested configurations based on
// previously observed trials.
//
// Thread safety:
// - All fields are protected by the RWMutex
// - Uses RLock for read operations (Predict, RBFKernel)
// - Uses Lock for write operations (Update, SetSigma)
//
// Memory usage:
// - Grows linearly with number of observations
// - Each observation stores a copy of its encoded configuration.
type gaussianProcess struct {
	// mu protects access to all fields
	mu sync.RWMutex

	// X stores the encoded configurations that were observed. Each
	// element is a float vector with one axis per hyperparameter; inner
	// lengths must be consistent.
	X [][]float64

	// Y stores the observed mean validation scores at each point in X.
	// Must have same length as X.
	Y []float64

	// sigma is the kernel width parameter.
	// Larger values = smoother interpolation.
	// Smaller values = more local influence.
	sigma float64
}

// newGaussianProcess returns an empty model with a unit kernel width.
func newGaussianProcess() *gaussianProcess {
	return &gaussianProcess{sigma: 1.0}
}

//////
// Methods.
//////

// RBFKernel implements the Radial Basis Function (Gaussian) kernel. It
// measures the similarity between two encoded configurations, decreasing
// exponentially with distance.
//
// Parameters:
// - x1, x2: Encoded configurations to compare (must have same length)
//
// Returns:
// - float64: Similarity between the points (0.0 to 1.0)
//
// Mathematical formula:
//
//	k(x1, x2) = exp(-sum((x1 - x2)^2) / (2 * sigma^2))
//
// Important notes:
// - Panics if input vectors have different lengths
// - Returns 1.0 for identical points.
func (gp *gaussianProcess) RBFKernel(x1, x2 []float64) float64 {
	if len(x1) != len(x2) {
		panic("input vectors must have the same length")
	}

	gp.mu.RLock()
	sigma := gp.sigma
	gp.mu.RUnlock()

	// Squared Euclidean distance.
	var sum float64

	for i := range x1 {
		diff := x1[i] - x2[i]

		sum += diff * diff
	}

	return math.Exp(-sum / (2 * sigma * sigma))
}

// Predict estimates the expected mean validation score and uncertainty at
// an encoded configuration based on previously observed trials.
//
// Parameters:
// - x: Encoded configuration at which to make the prediction
//
// Returns:
// - mean: Expected mean validation score at the configuration
// - variance: Uncertainty in the prediction (higher = less certain)
//
// Mathematical details:
// - Uses the RBF kernel to measure similarity to known points
// - Mean is a kernel-weighted average of observed scores
// - Returns (0, 1) if no observations exist
//
// Important notes:
// - Thread-safe (uses read lock)
// - O(n^2) time for the variance term, n being the observation count
// - Predictions far from observed points carry high variance; the
//   acquisition functions account for that.
func (gp *gaussianProcess) Predict(x []float64) (mean, variance float64) {
	gp.mu.RLock()
	defer gp.mu.RUnlock()

	// No observations yet.
	if len(gp.X) == 0 {
		return 0, 1
	}

	// Kernel values between x and all observed points.
	k := make([]float64, len(gp.X))
	for i := range gp.X {
		k[i] = gp.RBFKernel(x, gp.X[i])
	}

	var sum float64

	for i := range gp.X {
		sum += k[i] * gp.Y[i]
	}

	mean = sum / float64(len(gp.X))

	variance = 1.0

	for i := range gp.X {
		for j := range gp.X {
			variance -= k[i] * k[j] / float64(len(gp.X))
		}
	}

	// The approximation can drive the variance below zero once many
	// similar points have been observed; clamp so sqrt stays defined.
	if variance < 0 {
		variance = 0
	}

	return mean, variance
}

// Update adds a new observation to the model.
//
// Parameters:
// - x: Encoded configuration that was evaluated
// - y: Observed mean validation score at x
//
// Important notes:
// - Creates a deep copy of x to prevent external modifications
// - Thread-safe (uses write lock)
// - Memory grows with each update.
func (gp *gaussianProcess) Update(x []float64, y float64) {
	gp.mu.Lock()
	defer gp.mu.Unlock()

	newX := make([]float64, len(x))
	copy(newX, x)

	gp.X = append(gp.X, newX)
	gp.Y = append(gp.Y, y)
}

// SetSigma updates the kernel width parameter. Larger values produce
// smoother interpolation; smaller values give each observation a more
// local influence. Affects all subsequent predictions. The caller is
// responsible for passing a positive value.
func (gp *gaussianProcess) SetSigma(sigma float64) {
	gp.mu.Lock()
	defer gp.mu.Unlock()

	gp.sigma = sigma
}
