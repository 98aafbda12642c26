// Package cvreport ranks and reports cross-validated hyperparameter
// trials. It consumes the trial collections produced by a model-selection
// search (its own Bayesian searcher, or any external grid/randomized
// Search Provider) and renders a ranked, human-readable summary of the
// best-performing configurations.
//
// # Features
//
// The package includes the following key features:
//
//   - Top-K Reporting: Stable, deterministic ranking of trials by mean
//     validation score with per-trial fold-score spread
//   - Typed Hyperparameters: A closed ParamValue union covering ints,
//     floats, booleans, strings, and an explicit "none" sentinel for
//     unbounded/default values
//   - Typed Search Spaces: Fixed (discrete grid axes) and Distribution
//     (samplers) domains collected into a ParamSpace
//   - Bayesian Trial Search: Gaussian Process regression with multiple
//     acquisition functions (UCB, PI, EI, Thompson Sampling) to produce
//     trials from a caller-supplied objective
//   - Progress Monitoring: Real-time updates on search progress via
//     channels
//   - Narrow Provider Contracts: GridSearcher, RandomizedSearcher, and
//     DatasetProvider interfaces for plugging in external modeling
//     libraries
//
// # Installation
//
// To install the package, use:
//
//	go get github.com/thalesfsp/cvreport
//
// # Reporting
//
// Report is the core operation. Given completed trials, it writes the top
// N (default 3) to the configured sink:
//
//	err := Report(DefaultReportConfig(), results...)
//
// Each entry looks like:
//
//	Model with rank: 1
//	Mean validation score: 0.934 (std: 0.008)
//	Parameters: bootstrap=false, criterion=gini, max_depth=none
//
// Trials are ordered by mean validation score, descending. Equal scores
// keep their input order (the sort is stable on purpose). The standard
// deviation is the population standard deviation of the trial's fold
// scores; a single fold reports 0.000. Parameters are listed by name in
// lexicographic order so the output is deterministic.
//
// # Producing Trials
//
// Trials can come from any producer. The built-in one is SearchTrials,
// which spends its evaluation budget with Bayesian optimization:
//
//	space := ParamSpace{
//	    "max_depth":    Choice(IntValue(3), None),
//	    "max_features": UniformInt(1, 11),
//	    "bootstrap":    Bools(),
//	}
//
//	results, err := SearchTrials(DefaultSearchConfig(), objective, space)
//
// Model fitting and cross-validation live inside the objective, which
// typically delegates to an external modeling library. Exhaustive and
// randomized search are deliberately not implemented here; use an
// implementation of GridSearcher or RandomizedSearcher and feed its
// trials to Report.
//
// # Acquisition Functions
//
// The searcher supports four acquisition strategies:
//
// 1. Upper Confidence Bound (UCB):
//
//   - Balances exploration and exploitation
//
//   - Controlled by Beta parameter (higher = more exploration)
//
//   - Default choice, works well in most cases
//
//     config := DefaultSearchConfig()  // Uses UCB by default
//     config.AcqParams.Beta = 2.0
//
// 2. Probability of Improvement (PI):
//
//   - Conservative exploration strategy
//
//   - Focuses on small, reliable improvements
//
//     config := DefaultSearchConfig()
//     config.AcquisitionFunc = ProbabilityOfImprovement
//     config.AcqParams.Xi = 0.01
//
// 3. Expected Improvement (EI):
//
//   - Balances improvement probability and magnitude
//
//   - Most commonly used in practice
//
//     config := DefaultSearchConfig()
//     config.AcquisitionFunc = ExpectedImprovement
//     config.AcqParams.Xi = 0.01
//
// 4. Thompson Sampling:
//
//   - Simple but effective random sampling approach
//
//   - No parameter tuning required
//
//     config := DefaultSearchConfig()
//     config.AcquisitionFunc = ThompsonSampling
//     config.AcqParams.RandomState = rand.New(rand.NewSource(time.Now().UnixNano()))
//
// # Thread Safety
//
// All components are designed to be thread-safe:
//   - Safe for concurrent searches with different configs
//   - The Gaussian Process model uses an RWMutex for updates
//   - Progress channel sends never block the search
//   - Random number generation is mutex-guarded
//
// Report itself is a pure, synchronous operation: it sorts a copy of its
// input and writes to the configured sink, holding no shared state.
package cvreport
