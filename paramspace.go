package cvreport

import (
	"math/rand"
	"sort"

	"golang.org/x/exp/constraints"
)

//////
// Hyperparameter space descriptors.
//////

// ParamSpace describes the search space: one domain per hyperparameter
// name. A space made only of Fixed domains is suitable for exhaustive
// (grid) search; spaces mixing Fixed and Distribution domains are
// suitable for randomized or Bayesian search.
//
// Usage example:
//
//	space := ParamSpace{
//	    "max_depth":    Choice(IntValue(3), None),
//	    "max_features": UniformInt(1, 11),
//	    "bootstrap":    Choice(BoolValue(true), BoolValue(false)),
//	}
type ParamSpace map[string]ParamDomain

// names returns the hyperparameter names in lexicographic order. The
// float encoding fed to the Gaussian Process depends on a stable axis
// order, and Go map iteration is randomized.
func (s ParamSpace) names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// ParamDomain describes the values a single hyperparameter may take.
// It is a sealed union with exactly two implementations:
//
// - Fixed: a finite, ordered set of discrete values (a grid axis)
// - Distribution: a sampler drawing values from a distribution
//
// The two variants mirror the two Search Provider flavors: exhaustive
// search enumerates Fixed domains, randomized search samples from either.
type ParamDomain interface {
	// sample draws one value from the domain and returns it together
	// with its float encoding for the surrogate model (Fixed domains
	// encode by index, Distribution domains by numeric value).
	sample(rng *rand.Rand) (ParamValue, float64)
}

// Fixed is a discrete hyperparameter domain: a finite ordered set of
// candidate values. Sampling draws uniformly from the set.
type Fixed struct {
	// Values holds the candidate values in a stable order.
	Values []ParamValue
}

func (f Fixed) sample(rng *rand.Rand) (ParamValue, float64) {
	idx := rng.Intn(len(f.Values))

	return f.Values[idx], float64(idx)
}

// Distribution is a continuous or otherwise sampled hyperparameter
// domain. Sample must be safe to call with the generator it is given and
// must return values of a consistent kind.
type Distribution struct {
	// Sample draws one value from the underlying distribution.
	Sample func(rng *rand.Rand) ParamValue
}

func (d Distribution) sample(rng *rand.Rand) (ParamValue, float64) {
	v := d.Sample(rng)

	return v, v.feature()
}

//////
// Domain constructors.
//////

// Choice returns a Fixed domain over the given values, in the given
// order. Use it for heterogeneous axes (e.g. mixing IntValue and None).
func Choice(values ...ParamValue) Fixed {
	return Fixed{Values: values}
}

// Ints returns a Fixed domain over the given integer values.
//
// Usage example:
//
//	space := ParamSpace{
//	    "min_samples_split": Ints(2, 3, 10),
//	}
func Ints[T constraints.Integer](values ...T) Fixed {
	vs := make([]ParamValue, len(values))
	for i, v := range values {
		vs[i] = IntValue(int64(v))
	}

	return Fixed{Values: vs}
}

// Floats returns a Fixed domain over the given floating-point values.
func Floats[T constraints.Float](values ...T) Fixed {
	vs := make([]ParamValue, len(values))
	for i, v := range values {
		vs[i] = FloatValue(float64(v))
	}

	return Fixed{Values: vs}
}

// Bools returns a Fixed domain over true and false.
func Bools() Fixed {
	return Fixed{Values: []ParamValue{BoolValue(true), BoolValue(false)}}
}

// Strings returns a Fixed domain over the given string values.
func Strings(values ...string) Fixed {
	vs := make([]ParamValue, len(values))
	for i, v := range values {
		vs[i] = StringValue(v)
	}

	return Fixed{Values: vs}
}

// UniformInt returns a Distribution drawing integers uniformly from
// [min, max], both inclusive.
//
// Usage example:
//
//	space := ParamSpace{
//	    "max_features": UniformInt(1, 11),
//	}
func UniformInt[T constraints.Integer](min, max T) Distribution {
	return Distribution{
		Sample: func(rng *rand.Rand) ParamValue {
			return IntValue(int64(min) + rng.Int63n(int64(max)-int64(min)+1))
		},
	}
}

// UniformFloat returns a Distribution drawing floats uniformly from
// [min, max).
func UniformFloat[T constraints.Float](min, max T) Distribution {
	return Distribution{
		Sample: func(rng *rand.Rand) ParamValue {
			return FloatValue(float64(min) + rng.Float64()*(float64(max)-float64(min)))
		},
	}
}
