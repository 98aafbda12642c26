package cvreport

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedSampleStaysInSet(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	domain := Choice(IntValue(3), None, StringValue("auto"))

	for i := 0; i < 100; i++ {
		v, f := domain.sample(rng)

		// Encoding is the index of the chosen value.
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 3.0)
		assert.Equal(t, domain.Values[int(f)], v)
	}
}

func TestUniformIntSampleStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	domain := UniformInt(1, 11)

	for i := 0; i < 100; i++ {
		v, f := domain.sample(rng)

		assert.GreaterOrEqual(t, f, 1.0)
		assert.LessOrEqual(t, f, 11.0)

		// Encoding of a numeric draw is the value itself.
		assert.Equal(t, v.String(), IntValue(int64(f)).String())
	}
}

func TestUniformFloatSampleStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	domain := UniformFloat(0.1, 0.9)

	for i := 0; i < 100; i++ {
		_, f := domain.sample(rng)

		assert.GreaterOrEqual(t, f, 0.1)
		assert.Less(t, f, 0.9)
	}
}

func TestDomainConstructors(t *testing.T) {
	assert.Equal(t,
		[]ParamValue{IntValue(2), IntValue(3), IntValue(10)},
		Ints(2, 3, 10).Values,
	)

	assert.Equal(t,
		[]ParamValue{FloatValue(0.1), FloatValue(0.5)},
		Floats(0.1, 0.5).Values,
	)

	assert.Equal(t,
		[]ParamValue{BoolValue(true), BoolValue(false)},
		Bools().Values,
	)

	assert.Equal(t,
		[]ParamValue{StringValue("gini"), StringValue("entropy")},
		Strings("gini", "entropy").Values,
	)
}

func TestParamSpaceNamesAreSorted(t *testing.T) {
	space := ParamSpace{
		"criterion": Strings("gini"),
		"bootstrap": Bools(),
		"max_depth": Choice(None),
	}

	assert.Equal(t, []string{"bootstrap", "criterion", "max_depth"}, space.names())
}

func TestParamValueRendering(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "3", IntValue(3).String())
	assert.Equal(t, "0.01", FloatValue(0.01).String())
	assert.Equal(t, "false", BoolValue(false).String())
	assert.Equal(t, "gini", StringValue("gini").String())

	assert.True(t, None.IsNone())
	assert.False(t, IntValue(0).IsNone())
}
