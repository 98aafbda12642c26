package cvreport

import (
	"math/rand"
	"strconv"
)

//////
// Trial data model.
//////

// valueKind discriminates the variants of ParamValue.
type valueKind int

const (
	kindNone valueKind = iota
	kindInt
	kindFloat
	kindBool
	kindString
)

// ParamValue is a single hyperparameter value as it was tried in a trial.
// It is a closed tagged union over the value kinds a hyperparameter space
// can contain: integers, floats, booleans, strings, and an explicit "none"
// sentinel meaning "unbounded/default" (e.g. an unlimited tree depth).
//
// Values are immutable; build them with the constructors below or use the
// package-level None variable for the sentinel.
//
// Usage example:
//
//	params := Params{
//	    "max_depth":    None,              // Unbounded depth.
//	    "max_features": IntValue(3),
//	    "bootstrap":    BoolValue(false),
//	    "criterion":    StringValue("gini"),
//	}
type ParamValue struct {
	kind valueKind
	i    int64
	f    float64
	b    bool
	s    string
}

// None is the sentinel ParamValue meaning "unbounded/default". It renders
// as the string "none" in reports.
var None = ParamValue{kind: kindNone}

// IntValue returns a ParamValue holding an integer hyperparameter value.
func IntValue(v int64) ParamValue {
	return ParamValue{kind: kindInt, i: v}
}

// FloatValue returns a ParamValue holding a floating-point hyperparameter
// value.
func FloatValue(v float64) ParamValue {
	return ParamValue{kind: kindFloat, f: v}
}

// BoolValue returns a ParamValue holding a boolean hyperparameter value.
func BoolValue(v bool) ParamValue {
	return ParamValue{kind: kindBool, b: v}
}

// StringValue returns a ParamValue holding a string hyperparameter value.
func StringValue(v string) ParamValue {
	return ParamValue{kind: kindString, s: v}
}

// IsNone reports whether the value is the "unbounded/default" sentinel.
func (v ParamValue) IsNone() bool {
	return v.kind == kindNone
}

// String renders the value for human-readable output. The sentinel renders
// as "none"; floats use the shortest representation that round-trips.
func (v ParamValue) String() string {
	switch v.kind {
	case kindInt:
		return strconv.FormatInt(v.i, 10)
	case kindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case kindBool:
		return strconv.FormatBool(v.b)
	case kindString:
		return v.s
	default:
		return "none"
	}
}

// feature returns the value projected onto a single float64 axis. The
// Gaussian Process surrogate works in a float space, so sampled values
// need a numeric embedding: numbers map to themselves, booleans to 0/1,
// and the sentinel and strings to 0 (Fixed domains embed by index instead,
// so non-numeric values normally never reach this fallback).
func (v ParamValue) feature() float64 {
	switch v.kind {
	case kindInt:
		return float64(v.i)
	case kindFloat:
		return v.f
	case kindBool:
		if v.b {
			return 1
		}

		return 0
	default:
		return 0
	}
}

// Params maps hyperparameter names to the values tried for one trial.
type Params map[string]ParamValue

// TrialResult represents one evaluated hyperparameter configuration, as
// produced by a search process (this package's SearchTrials or any
// external Search Provider).
//
// Invariants:
// - FoldScores is non-empty
// - MeanScore is consistent with the arithmetic mean of FoldScores
//
// The Reporter trusts the producer and does not verify the invariants.
// TrialResult values are read-only inputs; nothing in this package mutates
// them after creation.
type TrialResult struct {
	// Params holds the hyperparameter configuration that was evaluated.
	Params Params

	// MeanScore is the average cross-validation score for this
	// configuration. Higher is better.
	MeanScore float64

	// FoldScores holds one score per cross-validation fold, in fold
	// order. Used to derive the standard deviation shown in reports.
	FoldScores []float64
}

//////
// Search configuration and progress.
//////

// Objective evaluates one hyperparameter configuration and returns its
// per-fold validation scores. Model fitting and cross-validation happen
// inside the objective, typically by delegating to an external modeling
// library; this package only consumes the resulting scores.
//
// Returns:
// - []float64: One score per fold, non-empty on success (higher is better)
// - error: Non-nil if the configuration could not be evaluated
//
// Usage example:
//
//	objective := Objective(func(params Params) ([]float64, error) {
//	    model := buildModel(params)
//	    return crossValidate(model, features, labels, 5)
//	})
//
// A failing objective does not abort the search; the failed configuration
// is penalized in the surrogate model and excluded from the returned
// trials.
type Objective func(params Params) ([]float64, error)

// SearchProgress represents the current state of a SearchTrials run, sent
// on SearchConfig.ProgressChan when one is set.
type SearchProgress struct {
	// Phase indicates whether we're in initial sampling or optimization phase
	Phase string

	// CurrentIteration is the current iteration number within the phase
	CurrentIteration int

	// TotalIterations is the total number of iterations in the phase
	TotalIterations int

	// CurrentParams holds the configuration being evaluated
	CurrentParams Params

	// BestScore holds the best mean validation score found so far
	BestScore float64

	// LastScore holds the mean validation score of the last evaluation
	LastScore float64
}

// SearchConfig holds all configuration parameters for the Bayesian trial
// search. It controls the computational budget and the exploration
// strategy.
//
// Fields explanation:
// - Iterations: Number of optimization steps after initial sampling
// - InitialSamples: Number of random samples to take before starting optimization
// - NumCandidates: Number of random candidates to consider per iteration
// - AcquisitionFunc: Strategy for choosing next configurations to evaluate
// - AcqParams: Parameters for the acquisition function
//
// Usage example:
//
//	config := DefaultSearchConfig()
//	config.Iterations = 30
//	config.AcquisitionFunc = ExpectedImprovement
//
// Default values recommendations:
// - Iterations: 50 (increase for more thorough optimization)
// - InitialSamples: 10 (increase for more stable initial model)
// - NumCandidates: 50-100 (increase for more thorough search per iteration)
//
// Note:
// - Create separate configs for parallel searches.
type SearchConfig struct {
	// Iterations determines how many optimization steps to perform after
	// the initial sampling phase. Each iteration considers NumCandidates
	// configurations and evaluates the most promising one.
	// Recommended range: 20-200
	Iterations int

	// InitialSamples determines how many random configurations to
	// evaluate before starting the optimization process. These samples
	// build the initial Gaussian Process model.
	// Recommended range: 5-20
	InitialSamples int

	// NumCandidates determines how many random candidates to consider in
	// each iteration before selecting the best one to evaluate.
	// Higher values = more thorough search but slower iterations.
	// Recommended range: 50-500
	NumCandidates int

	// AcquisitionFunc determines the strategy for selecting the next
	// configuration to evaluate. See AcquisitionFunc for built-in
	// options.
	AcquisitionFunc AcquisitionFunc

	// AcqParams holds the parameters for the acquisition function.
	// Must be properly initialized based on the chosen AcquisitionFunc.
	AcqParams AcquisitionParams

	// ProgressChan is used to send progress updates during the search.
	// If nil, no updates will be sent.
	ProgressChan chan<- SearchProgress
}

//////
// Acquisition machinery.
//////

// AcquisitionFunc defines the signature for acquisition functions used by
// the Bayesian search to decide which configuration to evaluate next.
//
// Parameters:
// - mean: The predicted mean validation score at a configuration (higher is better)
// - variance: The predicted variance/uncertainty at that configuration
// - params: Additional parameters needed by specific acquisition functions
//
// Returns:
// - float64: Acquisition value (higher values indicate more promising configurations)
//
// Built-in acquisition functions:
// - UCB: Upper Confidence Bound
// - ProbabilityOfImprovement: Probability of beating the best score so far
// - ExpectedImprovement: Expected magnitude of improvement
// - ThompsonSampling: Random sampling from the posterior
//
// Implementation notes for custom acquisition functions:
// - Should handle edge cases (zero variance, extreme means)
// - Must be thread-safe and deterministic (Thompson Sampling excepted)
// - Should return higher values for more promising configurations
// - Must properly use parameters from AcquisitionParams.
type AcquisitionFunc func(mean, variance float64, params AcquisitionParams) float64

// AcquisitionParams holds parameters used by the acquisition functions to
// balance exploring uncertain regions of the hyperparameter space against
// exploiting regions known to score well.
type AcquisitionParams struct {
	// Beta controls the exploration-exploitation trade-off in the Upper
	// Confidence Bound (UCB) acquisition function.
	// - Higher values (e.g., 3.0 or 5.0) encourage more exploration
	// - Lower values (e.g., 0.1 or 0.5) focus on known good regions
	// Typical values range from 0.1 to 5.0, with 2.0 being a good default.
	Beta float64

	// Xi is an exploration parameter used by Probability of Improvement
	// and Expected Improvement. It sets how much improvement over the
	// current best score is worth pursuing.
	// Typical values range from 0.01 to 0.1.
	Xi float64

	// BestSoFar tracks the best (highest) mean validation score observed
	// so far. Must start at -math.MaxFloat64; the searcher updates it
	// automatically during the run.
	BestSoFar float64

	// RandomState is the random number generator used by Thompson
	// Sampling. Must be initialized with rand.New(rand.NewSource(seed))
	// and must not be shared between concurrent searches.
	RandomState *rand.Rand
}

//////
// External collaborator contracts.
//////

// Estimator is an opaque handle to a model supplied by an external
// modeling library (e.g. a random forest classifier). This package never
// inspects it; it only passes it through to a Search Provider.
type Estimator any

// GridSearcher is the exhaustive Search Provider capability: it evaluates
// every combination in a discrete hyperparameter space and returns one
// TrialResult per combination. The space must contain only Fixed domains.
//
// Implementations perform model fitting and cross-validation internally;
// any failure there propagates unchanged to the caller.
type GridSearcher interface {
	SearchGrid(est Estimator, space ParamSpace) ([]TrialResult, error)
}

// RandomizedSearcher is the sampled Search Provider capability: it
// evaluates a fixed number of configurations drawn from the space's
// domains (discrete sets or distributions) and returns one TrialResult
// per draw.
type RandomizedSearcher interface {
	SearchRandom(est Estimator, space ParamSpace, trials int) ([]TrialResult, error)
}

// Dataset is a feature matrix with its label vector, as returned by a
// DatasetProvider. Rows of Features correspond to entries of Labels.
type Dataset struct {
	Features [][]float64
	Labels   []float64
}

// DatasetProvider loads a fixed, named dataset. Dataset ingestion is out
// of scope for this package; the interface exists so workflows can be
// wired end to end against an external loader.
type DatasetProvider interface {
	Load(name string) (Dataset, error)
}
