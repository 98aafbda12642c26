package cvreport

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

//////
// Exported functionalities.
//////

// DefaultSearchConfig returns a default search configuration.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Iterations:      50,
		InitialSamples:  10,
		NumCandidates:   50,
		AcquisitionFunc: UCB,
		AcqParams: AcquisitionParams{
			BestSoFar:   -math.MaxFloat64,
			Beta:        2.0,
			RandomState: rand.New(rand.NewSource(time.Now().UnixNano())),
			Xi:          0.01,
		},
		ProgressChan: nil, // Default to no progress updates.
	}
}

// SearchTrials runs Bayesian optimization over a hyperparameter space and
// returns every successfully evaluated configuration as a TrialResult,
// ready to be ranked with Report. It combines Gaussian Process regression
// with acquisition functions to spend the evaluation budget on promising
// configurations instead of sweeping the space blindly.
//
// Parameters:
// - config: SearchConfig controlling the search budget and strategy
// - objective: Evaluates one configuration and returns its fold scores
// - space: One ParamDomain per hyperparameter (Fixed or Distribution)
//
// Returns:
// - []TrialResult: All successful trials, in evaluation order
// - error: ErrInvalidInput for an empty space or non-positive budget, or
//   an evaluation error if no configuration could be evaluated at all
//
// Usage example:
//
//	space := ParamSpace{
//	    "max_depth":    Choice(IntValue(3), None),
//	    "max_features": UniformInt(1, 11),
//	    "bootstrap":    Bools(),
//	}
//
//	objective := func(params Params) ([]float64, error) {
//	    return crossValidate(buildModel(params), data, 5)
//	}
//
//	results, err := SearchTrials(DefaultSearchConfig(), objective, space)
//	if err != nil {
//	    return err
//	}
//
//	_ = Report(DefaultReportConfig(), results...)
//
// How it works:
// 1. Takes InitialSamples random draws from the space to build the model
// 2. For each iteration:
//   - Draws NumCandidates random candidate configurations
//   - Uses the Gaussian Process to predict the score at each candidate
//   - Uses AcquisitionFunc to select the most promising candidate
//   - Evaluates it with the objective
//   - Updates the model with the new observation
//
// 3. Returns every successful evaluation
//
// Important notes:
// - Thread-safe: Can be called concurrently with different configs
// - Failed objective calls are penalized in the model and excluded from
//   the returned trials; they still consume budget
// - Total objective calls = InitialSamples + Iterations.
func SearchTrials(config SearchConfig, objective Objective, space ParamSpace) ([]TrialResult, error) {
	if len(space) == 0 {
		return nil, fmt.Errorf("%w: empty hyperparameter space", ErrInvalidInput)
	}

	if config.InitialSamples <= 0 || config.Iterations < 0 || config.NumCandidates <= 0 {
		return nil, fmt.Errorf(
			"%w: budget must be positive (initial samples %d, iterations %d, candidates %d)",
			ErrInvalidInput,
			config.InitialSamples,
			config.Iterations,
			config.NumCandidates,
		)
	}

	// Stable axis order for the float encoding fed to the model.
	names := space.names()

	// Thread-safe random number generator for drawing configurations.
	// Using current time as seed ensures different random sequences
	// across runs.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var rngMu sync.Mutex

	// safeDraw draws one configuration from the space in a thread-safe
	// manner, returning both the parameter values and their float
	// encoding for the Gaussian Process. Used for initial sampling and
	// for candidate generation.
	safeDraw := func() (Params, []float64) {
		rngMu.Lock()
		defer rngMu.Unlock()

		params := make(Params, len(names))
		encoded := make([]float64, len(names))

		for i, name := range names {
			v, f := space[name].sample(rng)
			params[name] = v
			encoded[i] = f
		}

		return params, encoded
	}

	// The surrogate model predicting scores at untested configurations.
	gp := newGaussianProcess()

	// trials collects every successful evaluation, in order.
	var trials []TrialResult

	// bestScore tracks the best mean validation score seen so far.
	bestScore := -math.MaxFloat64

	// lastErr remembers the most recent objective failure for the case
	// where every single trial fails.
	var lastErr error

	// bestMu protects bestScore.
	var bestMu sync.Mutex

	// sendProgress emits a progress update without blocking the search.
	sendProgress := func(phase string, iteration, total int, params Params, score float64) {
		if config.ProgressChan == nil {
			return
		}

		bestMu.Lock()
		update := SearchProgress{
			Phase:            phase,
			CurrentIteration: iteration,
			TotalIterations:  total,
			CurrentParams:    params,
			BestScore:        bestScore,
			LastScore:        score,
		}
		bestMu.Unlock()

		select {
		case config.ProgressChan <- update:
		default:
			// Skip update if channel is full.
		}
	}

	// evaluate runs the objective for one configuration, records the
	// trial on success, and feeds the observation to the model either
	// way. Failed configurations get a strong penalty so the model
	// learns to avoid them.
	evaluate := func(params Params, encoded []float64) float64 {
		foldScores, err := objective(params)
		if err != nil || len(foldScores) == 0 {
			if err == nil {
				err = errors.New("objective returned no fold scores")
			}

			lastErr = err

			gp.Update(encoded, -math.MaxFloat64/2)

			return -math.MaxFloat64 / 2
		}

		score := mean(foldScores)

		trials = append(trials, TrialResult{
			Params:     params,
			MeanScore:  score,
			FoldScores: foldScores,
		})

		gp.Update(encoded, score)

		bestMu.Lock()
		if score > bestScore {
			bestScore = score
		}
		bestMu.Unlock()

		return score
	}

	// Phase 1: Initial random sampling.
	//
	// Build the initial model by drawing random configurations. This
	// establishes a baseline understanding of the score surface.
	for i := 0; i < config.InitialSamples; i++ {
		params, encoded := safeDraw()

		score := evaluate(params, encoded)

		sendProgress("InitialSampling", i+1, config.InitialSamples, params, score)
	}

	// Phase 2: Bayesian optimization loop.
	//
	// Iteratively select and evaluate new configurations based on model
	// predictions.
	for i := 0; i < config.Iterations; i++ {
		var (
			nextParams  Params
			nextEncoded []float64
		)

		bestAcquisition := -math.MaxFloat64

		// Update acquisition function with the current best score.
		bestMu.Lock()
		config.AcqParams.BestSoFar = bestScore
		bestMu.Unlock()

		// Draw candidates and keep the most promising one according to
		// the acquisition function.
		for j := 0; j < config.NumCandidates; j++ {
			candidateParams, candidateEncoded := safeDraw()

			predMean, predVariance := gp.Predict(candidateEncoded)

			acquisition := config.AcquisitionFunc(predMean, predVariance, config.AcqParams)

			// The first candidate always wins so a run of NaN
			// acquisition values cannot leave the iteration without a
			// selection.
			if nextParams == nil || acquisition > bestAcquisition {
				bestAcquisition = acquisition
				nextParams = candidateParams
				nextEncoded = candidateEncoded
			}
		}

		score := evaluate(nextParams, nextEncoded)

		sendProgress("Optimization", i+1, config.Iterations, nextParams, score)
	}

	if len(trials) == 0 {
		return nil, fmt.Errorf("all trials failed: %w", lastErr)
	}

	return trials, nil
}
