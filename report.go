package cvreport

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
)

//////
// Exported functionalities.
//////

// ErrInvalidInput is returned by Report and SearchTrials when their
// inputs cannot produce any output: an empty result collection, a
// non-positive TopN, or an empty search space. Test for it with
// errors.Is; the wrapped message carries the specific cause.
var ErrInvalidInput = errors.New("invalid input")

// ReportConfig controls how Report renders its ranked summary.
type ReportConfig struct {
	// TopN is the number of top-ranked trials to include. Must be
	// positive. Values larger than the number of trials are clamped; all
	// trials are reported without error.
	TopN int

	// Out is the sink the report is written to. A nil Out falls back to
	// standard output.
	Out io.Writer
}

// DefaultReportConfig returns a default configuration: the top 3 trials,
// written to standard output.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		TopN: 3,
		Out:  os.Stdout,
	}
}

// byMeanScoreDesc is the named comparator used to rank trials: higher
// MeanScore first. It is intentionally keyed on MeanScore alone; combined
// with a stable sort this gives the documented tie-break of
// first-seen-first-reported for equal scores.
func byMeanScoreDesc(results []TrialResult) func(i, j int) bool {
	return func(i, j int) bool {
		return results[i].MeanScore > results[j].MeanScore
	}
}

// Report writes a ranked, human-readable summary of the best trials to
// config.Out. Trials are ordered by mean validation score, descending;
// equal scores keep their input order.
//
// Parameters:
// - config: ReportConfig controlling TopN and the output sink
// - results: The completed trials to rank (at least one required)
//
// Returns:
// - error: ErrInvalidInput for an empty results set or non-positive
//   TopN; otherwise any write error from the sink
//
// Usage example:
//
//	results, err := SearchTrials(DefaultSearchConfig(), objective, space)
//	if err != nil {
//	    return err
//	}
//
//	if err := Report(DefaultReportConfig(), results...); err != nil {
//	    return err
//	}
//
// Output format, per trial:
//
//	Model with rank: 1
//	Mean validation score: 0.934 (std: 0.008)
//	Parameters: bootstrap=false, criterion=gini, max_depth=none
//
// The standard deviation is the population standard deviation of the
// trial's FoldScores, 0.000 for a single fold. Scores are formatted to 3
// decimal places; parameters are listed by name in lexicographic order so
// output is deterministic.
//
// Important notes:
// - The input slice is not mutated; ranking happens on a copy
// - A TopN larger than len(results) reports everything, without error
// - No recovery is attempted on write errors; they surface immediately.
func Report(config ReportConfig, results ...TrialResult) error {
	if len(results) == 0 {
		return fmt.Errorf("%w: no trial results to report", ErrInvalidInput)
	}

	if config.TopN <= 0 {
		return fmt.Errorf("%w: top N must be positive, got %d", ErrInvalidInput, config.TopN)
	}

	out := config.Out
	if out == nil {
		out = os.Stdout
	}

	// Rank on a copy so the caller's slice keeps its order.
	ranked := make([]TrialResult, len(results))
	copy(ranked, results)

	sort.SliceStable(ranked, byMeanScoreDesc(ranked))

	n := config.TopN
	if n > len(ranked) {
		n = len(ranked)
	}

	for rank := 1; rank <= n; rank++ {
		trial := ranked[rank-1]

		if _, err := fmt.Fprintf(out, "Model with rank: %d\n", rank); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(
			out,
			"Mean validation score: %.3f (std: %.3f)\n",
			trial.MeanScore,
			welfordStd(trial.FoldScores),
		); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(out, "Parameters: %s\n\n", formatParams(trial.Params)); err != nil {
			return err
		}
	}

	return nil
}
