package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofxcss/fxcss"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		input string
		unit  fxcss.Unit
		value float64
	}{
		{"8px", fxcss.UnitPx, 8},
		{"8", fxcss.UnitPx, 8},
		{"1.5em", fxcss.UnitEm, 1.5},
		{"12pt", fxcss.UnitPt, 12},
		{"50%", fxcss.UnitPercent, 50},
		{"-2px", fxcss.UnitPx, -2},
		{" 4px ", fxcss.UnitPx, 4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			unit, value, err := parseLength(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.unit, unit)
			assert.Equal(t, tt.value, value)
		})
	}

	for _, bad := range []string{"", "px", "8vw", "abc", "1 2px3"} {
		_, _, err := parseLength(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseLengths(t *testing.T) {
	unit, values, err := parseLengths("8px 12px")
	require.NoError(t, err)
	assert.Equal(t, fxcss.UnitPx, unit)
	assert.Equal(t, []float64{8, 12}, values)

	_, _, err = parseLengths("8px 1em")
	assert.ErrorContains(t, err, "mixed units")

	_, _, err = parseLengths("   ")
	assert.ErrorContains(t, err, "empty length list")
}

func TestParseFontWeight(t *testing.T) {
	w, err := parseFontWeight("bold")
	require.NoError(t, err)
	assert.Equal(t, fxcss.WeightBold, w)

	w, err = parseFontWeight("550")
	require.NoError(t, err)
	assert.Equal(t, fxcss.FontWeight(550), w)

	for _, bad := range []string{"", "heavy", "50", "950"} {
		_, err := parseFontWeight(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestPaletteResolve(t *testing.T) {
	pal, err := buildPalette(map[string]string{"Primary": "#4682B4"})
	require.NoError(t, err)

	c, err := pal.resolve("primary")
	require.NoError(t, err)
	assert.Equal(t, fxcss.SteelBlue.CSS(), c.CSS())

	c, err = pal.resolve("#FF0000")
	require.NoError(t, err)
	assert.Equal(t, "#FF0000FF", c.CSS())

	c, err = pal.resolve("lighten(primary, 1)")
	require.NoError(t, err)
	assert.Equal(t, fxcss.White.CSS(), c.CSS())

	c, err = pal.resolve("darken(lighten(primary, 1), 1)")
	require.NoError(t, err)
	assert.Equal(t, fxcss.Black.CSS(), c.CSS())

	_, err = pal.resolve("lighten(nope, 0.2)")
	assert.Error(t, err)
}

func TestParseCursor(t *testing.T) {
	c, err := parseCursor("hand")
	require.NoError(t, err)
	assert.Equal(t, fxcss.CursorHand, c)

	_, err = parseCursor("pointer")
	assert.Error(t, err)
}
