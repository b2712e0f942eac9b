package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/lifeboard/model"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	res := Default()
	require.Empty(t, res.Rejected)
	require.Equal(t, []string{
		"block", "beehive", "loaf", "blinker", "toad", "beacon",
		"glider", "light_spaceship", "r_pentomino", "pulsar", "glider_gun",
	}, res.Names())

	gun, ok := res.Lookup("glider_gun")
	require.True(t, ok)
	require.Equal(t, 9, gun.Rows())
	require.Equal(t, 36, gun.Cols())
	require.Len(t, gun.Occupied(), 36)

	_, ok = res.Lookup("missing")
	require.False(t, ok)
}

func TestDefault_FourRotationsRestoreEveryShape(t *testing.T) {
	t.Parallel()

	for _, s := range Default().Templates {
		r := s
		for range 4 {
			r = r.RotateClockwise()
		}
		require.True(t, s.Equal(r), "%s: %s", s.Name(), cmp.Diff(s.Cells(), r.Cells()))
	}
}

func TestParseJSON_RejectsMalformedEntries(t *testing.T) {
	t.Parallel()

	doc := `{
		"dot":     [[1]],
		"ragged":  [[1, 0], [1]],
		"word":    [[1, "x"]],
		"two":     [[0, 2]],
		"flat":    [1, 0, 1],
		"scalar":  7,
		"empty":   [],
		"flags":   [[true, false], [false, true]]
	}`
	res, err := ParseJSON([]byte(doc))
	require.NoError(t, err)

	require.Equal(t, []string{"dot", "flags"}, res.Names())
	require.Equal(t, []string{"ragged", "word", "two", "flat", "scalar", "empty"}, res.Rejected.Names())

	byName := map[string]error{}
	for _, e := range res.Rejected {
		byName[e.Name] = e
	}
	require.True(t, errors.Is(byName["ragged"], model.ErrNotRectangular))
	require.True(t, errors.Is(byName["word"], ErrNotBoolean))
	require.True(t, errors.Is(byName["two"], ErrNotBoolean))
	require.True(t, errors.Is(byName["flat"], ErrMalformed))
	require.True(t, errors.Is(byName["scalar"], ErrMalformed))
	require.True(t, errors.Is(byName["empty"], model.ErrEmptyShape))
	require.Contains(t, res.Rejected.Error(), "template word")

	flags, _ := res.Lookup("flags")
	require.Equal(t, [][]bool{{true, false}, {false, true}}, flags.Cells())
}

func TestParseJSON_DocumentErrors(t *testing.T) {
	t.Parallel()

	for _, doc := range []string{``, `[]`, `{"a": [[1]]`, `{"a": }`} {
		_, err := ParseJSON([]byte(doc))
		require.Error(t, err, "document %q", doc)
	}
}

const hclCatalog = `
template "glider" {
  cells = [
    [0, 1, 0],
    [0, 0, 1],
    [1, 1, 1],
  ]
}

template "flags" {
  cells = [[true, false]]
}

template "ragged" {
  cells = [[1, 1], [1]]
}

template "word" {
  cells = [[1, "x"]]
}

template "flat" {
  cells = "###"
}

template "unknown_ref" {
  cells = [[one]]
}
`

func TestParseHCL(t *testing.T) {
	t.Parallel()

	res, err := ParseHCL([]byte(hclCatalog), "catalog.hcl")
	require.NoError(t, err)
	require.Equal(t, []string{"glider", "flags"}, res.Names())
	require.Equal(t, []string{"ragged", "word", "flat", "unknown_ref"}, res.Rejected.Names())

	require.True(t, errors.Is(res.Rejected[0], model.ErrNotRectangular))
	require.True(t, errors.Is(res.Rejected[1], ErrNotBoolean))
	require.True(t, errors.Is(res.Rejected[2], ErrMalformed))
	require.True(t, errors.Is(res.Rejected[3], ErrMalformed))

	glider, ok := res.Lookup("glider")
	require.True(t, ok)
	require.Equal(t, []model.Point{{Y: 0, X: 1}, {Y: 1, X: 2}, {Y: 2, X: 0}, {Y: 2, X: 1}, {Y: 2, X: 2}}, glider.Occupied())
}

func TestParseHCL_SyntaxError(t *testing.T) {
	t.Parallel()

	_, err := ParseHCL([]byte(`template "x" { cells = [[1]`), "broken.hcl")
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken.hcl")
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "patterns.json")
	hclPath := filepath.Join(dir, "patterns.HCL")
	txtPath := filepath.Join(dir, "patterns.txt")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"dot": [[1]]}`), 0o600))
	require.NoError(t, os.WriteFile(hclPath, []byte(hclCatalog), 0o600))
	require.NoError(t, os.WriteFile(txtPath, []byte(`dot`), 0o600))

	res, err := LoadFile(jsonPath)
	require.NoError(t, err)
	require.Equal(t, []string{"dot"}, res.Names())

	res, err = LoadFile(hclPath)
	require.NoError(t, err)
	require.Equal(t, []string{"glider", "flags"}, res.Names())

	_, err = LoadFile(txtPath)
	require.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	require.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Glider", Label("glider"))
	require.Equal(t, "Glider\ngun", Label("glider_gun"))
	require.Equal(t, "R\npentomino_x", Label("r_pentomino_x"))
	require.Equal(t, "Éclair", Label("éclair"))
	require.Equal(t, "", Label(""))
}
