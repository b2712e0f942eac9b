package model

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestBoundaryModeResolve(t *testing.T) {
	t.Parallel()

	const n = 50
	tests := []struct {
		name   string
		mode   BoundaryMode
		y, x   int
		wantY  int
		wantX  int
		wantOK bool
	}{
		{"inside clipped", Clipped, 3, 4, 3, 4, true},
		{"inside toroidal", Toroidal, 3, 4, 3, 4, true},
		{"left edge clipped", Clipped, 10, -1, 0, 0, false},
		{"bottom edge clipped", Clipped, n, 10, 0, 0, false},
		{"left edge toroidal", Toroidal, 10, -1, 10, n - 1, true},
		{"right edge toroidal", Toroidal, 10, n, 10, 0, true},
		{"top edge toroidal", Toroidal, -1, 7, n - 1, 7, true},
		{"bottom edge toroidal", Toroidal, n, 7, 0, 7, true},
		{"corner toroidal", Toroidal, -1, n, n - 1, 0, true},
		{"far past edge toroidal", Toroidal, -n - 3, 2*n + 1, n - 3, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			y, x, ok := tt.mode.Resolve(tt.y, tt.x, n)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				require.Equal(t, tt.wantY, y)
				require.Equal(t, tt.wantX, x)
			}
		})
	}
}

func TestParseBoundaryMode(t *testing.T) {
	t.Parallel()

	mode, err := ParseBoundaryMode("Toroidal")
	require.NoError(t, err)
	require.Equal(t, Toroidal, mode)

	mode, err = ParseBoundaryMode(" clip ")
	require.NoError(t, err)
	require.Equal(t, Clipped, mode)

	_, err = ParseBoundaryMode("mobius")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownBoundary))

	require.Equal(t, "clipped", Clipped.String())
	require.Equal(t, "toroidal", Toroidal.String())
}
