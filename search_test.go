package cvreport

import (
	"bytes"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sampleSpace is a small heterogeneous space used across the searcher
// tests.
func sampleSpace() ParamSpace {
	return ParamSpace{
		"max_depth":    Choice(IntValue(3), None),
		"max_features": UniformInt(1, 11),
		"bootstrap":    Bools(),
	}
}

// sampleObjective scores a configuration deterministically from its
// parameter values, standing in for a real fit-and-cross-validate step.
func sampleObjective(params Params) ([]float64, error) {
	base := 0.5

	if params["bootstrap"] == BoolValue(true) {
		base += 0.1
	}

	if params["max_depth"].IsNone() {
		base += 0.05
	}

	// Three synthetic folds with a small fixed spread.
	return []float64{base - 0.01, base, base + 0.01}, nil
}

func TestSearchTrials(t *testing.T) {
	config := DefaultSearchConfig()
	config.InitialSamples = 5
	config.Iterations = 10
	config.NumCandidates = 20

	results, err := SearchTrials(config, sampleObjective, sampleSpace())
	assert.NoError(t, err)

	// One trial per objective call.
	assert.Len(t, results, config.InitialSamples+config.Iterations)

	for _, r := range results {
		// Every configuration covers every hyperparameter.
		assert.Len(t, r.Params, 3)
		assert.Contains(t, r.Params, "max_depth")
		assert.Contains(t, r.Params, "max_features")
		assert.Contains(t, r.Params, "bootstrap")

		// MeanScore is consistent with the folds.
		assert.Len(t, r.FoldScores, 3)
		assert.InDelta(t, mean(r.FoldScores), r.MeanScore, 1e-12)
	}
}

func TestSearchTrialsProgressChannel(t *testing.T) {
	config := DefaultSearchConfig()
	config.InitialSamples = 3
	config.Iterations = 5

	// Create a bidirectional channel for progress updates.
	progressChan := make(chan SearchProgress, config.InitialSamples+config.Iterations)

	// Assign the channel to config (will be automatically converted to
	// send-only).
	config.ProgressChan = progressChan

	var counter int32

	// Start a goroutine to handle progress updates.
	done := make(chan struct{})

	go func() {
		defer close(done)

		for update := range progressChan {
			atomic.AddInt32(&counter, int32(update.CurrentIteration))
		}
	}()

	results, err := SearchTrials(config, sampleObjective, sampleSpace())
	assert.NoError(t, err)
	assert.Len(t, results, config.InitialSamples+config.Iterations)

	// No more updates will be sent; wait for the consumer to drain the
	// channel before reading the counter.
	close(progressChan)
	<-done

	// Ensure events were emitted.
	assert.Greater(t, atomic.LoadInt32(&counter), int32(0))
}

func TestSearchTrialsEmptySpace(t *testing.T) {
	_, err := SearchTrials(DefaultSearchConfig(), sampleObjective, ParamSpace{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSearchTrialsInvalidBudget(t *testing.T) {
	config := DefaultSearchConfig()
	config.InitialSamples = 0

	_, err := SearchTrials(config, sampleObjective, sampleSpace())

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSearchTrialsSkipsFailedConfigurations(t *testing.T) {
	config := DefaultSearchConfig()
	config.InitialSamples = 4
	config.Iterations = 6
	config.NumCandidates = 10

	var calls int32

	// Every other evaluation fails; failures consume budget but never
	// show up in the results.
	objective := func(params Params) ([]float64, error) {
		if atomic.AddInt32(&calls, 1)%2 == 0 {
			return nil, errors.New("fit diverged")
		}

		return sampleObjective(params)
	}

	results, err := SearchTrials(config, objective, sampleSpace())
	assert.NoError(t, err)
	assert.Len(t, results, (config.InitialSamples+config.Iterations)/2)
}

func TestSearchTrialsAllFailed(t *testing.T) {
	config := DefaultSearchConfig()
	config.InitialSamples = 2
	config.Iterations = 2
	config.NumCandidates = 5

	objective := func(Params) ([]float64, error) {
		return nil, errors.New("fit diverged")
	}

	_, err := SearchTrials(config, objective, sampleSpace())

	assert.Error(t, err)
	assert.ErrorContains(t, err, "fit diverged")
}

func TestSearchTrialsAcquisitionVariants(t *testing.T) {
	for _, acq := range []AcquisitionFunc{
		UCB,
		ProbabilityOfImprovement,
		ExpectedImprovement,
		ThompsonSampling,
	} {
		config := DefaultSearchConfig()
		config.InitialSamples = 3
		config.Iterations = 4
		config.NumCandidates = 10
		config.AcquisitionFunc = acq

		results, err := SearchTrials(config, sampleObjective, sampleSpace())
		assert.NoError(t, err)
		assert.Len(t, results, config.InitialSamples+config.Iterations)
	}
}

func TestSearchThenReport(t *testing.T) {
	config := DefaultSearchConfig()
	config.InitialSamples = 5
	config.Iterations = 10
	config.NumCandidates = 20

	results, err := SearchTrials(config, sampleObjective, sampleSpace())
	assert.NoError(t, err)

	var out bytes.Buffer

	err = Report(ReportConfig{TopN: 3, Out: &out}, results...)
	assert.NoError(t, err)

	assert.Contains(t, out.String(), "Model with rank: 1")
	assert.Contains(t, out.String(), "Parameters: bootstrap=")
}
