package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eikonal/grid"
)

func TestParseWindow(t *testing.T) {
	win, err := parseWindow("-3, 3,-2.5,2.5")
	require.NoError(t, err)
	require.Equal(t, grid.Window{XMin: -3, XMax: 3, YMin: -2.5, YMax: 2.5}, win)

	_, err = parseWindow("1,2,3")
	require.Error(t, err)

	_, err = parseWindow("a,b,c,d")
	require.Error(t, err)
}

func TestPaletteFromFlags(t *testing.T) {
	saved := *paletteFlag
	t.Cleanup(func() { *paletteFlag = saved })

	for _, name := range []string{"falloff", "gradient"} {
		*paletteFlag = name
		p, err := paletteFromFlags()
		require.NoError(t, err)
		require.NotNil(t, p)
	}

	*paletteFlag = "rainbow"
	_, err := paletteFromFlags()
	require.Error(t, err)
}

func TestConfigFromFlags_UnknownCurve(t *testing.T) {
	saved := *curveFlag
	t.Cleanup(func() { *curveFlag = saved })

	*curveFlag = "square"
	_, err := configFromFlags()
	require.Error(t, err)

	*curveFlag = "circle"
	cfg, err := configFromFlags()
	require.NoError(t, err)
	require.NotNil(t, cfg.Implicit)
}
