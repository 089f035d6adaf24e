package args

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotEmpty(t *testing.T) {
	assert.NoError(t, NotEmpty("x", "name"))
	assert.NoError(t, NotEmpty(" x ", "name"))

	err := NotEmpty("   ", "selector")
	require.Error(t, err)
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "selector", argErr.Name)
	assert.Contains(t, argErr.Error(), `"selector"`)
}

func TestMatches(t *testing.T) {
	ident := regexp.MustCompile(`^[a-z]+$`)
	assert.NoError(t, Matches("abc", ident, "name"))
	assert.Error(t, Matches("abc1", ident, "name"))
}

func TestStartsWith(t *testing.T) {
	assert.NoError(t, StartsWith("-fx-fill", "-fx-", "property"))
	assert.Error(t, StartsWith("fill", "-fx-", "property"))
}

func TestInInterval(t *testing.T) {
	assert.NoError(t, InInterval(0, 0, 1, "value"))
	assert.NoError(t, InInterval(1, 0, 1, "value"))
	assert.Error(t, InInterval(1.0001, 0, 1, "value"))
	assert.Error(t, InInterval(math.NaN(), 0, 1, "value"))
}

func TestAtLeast(t *testing.T) {
	assert.NoError(t, AtLeast(1, 1, "limit"))
	assert.Error(t, AtLeast(0.999, 1, "limit"))
	assert.Error(t, AtLeast(math.NaN(), 1, "limit"))
}

func TestFinite(t *testing.T) {
	assert.NoError(t, Finite(-1e300, "v"))
	assert.Error(t, Finite(math.Inf(1), "v"))
	assert.Error(t, Finite(math.NaN(), "v"))

	assert.NoError(t, AllFinite([]float64{1, 2, 3}, "vs"))
	assert.Error(t, AllFinite([]float64{1, math.Inf(-1)}, "vs"))
}
