package tensorio

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/23skdu/longbow-loom/form"
	"github.com/23skdu/longbow-loom/internal/fieldcodec"
	"github.com/23skdu/longbow-loom/nvector"
	"github.com/23skdu/longbow-loom/tensor"
)

func TestCSVRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "f.csv")

	src := form.FromIndices("a", 4, func(i int) float64 { return float64(i) })
	rows, err := WriteCSV(ctx, src, path, ',')
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimRight(string(raw), "\n")
	assert.Len(t, strings.Split(line, ","), 4)

	got, err := ReadCSV[float64](ctx, "a", path, ',')
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, got.Leaves())

	idx := got.Shape()[0]
	assert.Equal(t, tensor.Index{Name: 'a', Size: 4, Variance: tensor.Covariant}, idx)
}

func TestCSVCustomSeparator(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "semi.csv")

	src := form.FromIndices("v", 3, func(i int) int { return i + 10 })
	rows, err := WriteCSV(ctx, src, path, ';')
	require.NoError(t, err)
	require.Equal(t, 1, rows)

	got, err := ReadCSV[int](ctx, "v", path, ';')
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11, 12}, got.Leaves())
}

func TestWriteCSVRejectsOtherShapes(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	cases := map[string]tensor.Tensor[float64]{
		"rank2":         nvector.Const("ij", []int{2, 2}, 1.0),
		"contravariant": nvector.Const("i", []int{3}, 1.0),
		"scalar":        tensor.Scalar(1.0),
		"err":           tensor.Err[float64]("broken"),
	}
	for name, tr := range cases {
		path := filepath.Join(dir, name+".csv")
		rows, err := WriteCSV(ctx, tr, path, ',')
		require.NoError(t, err, name)
		assert.Equal(t, 0, rows, name)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "%s: no file may be created", name)
	}
}

func TestReadCSVNameArityShortCircuits(t *testing.T) {
	// The path does not exist; a bad name must fail before any file I/O.
	got, err := ReadCSV[float64](context.Background(), "ab", "/nonexistent/f.csv", ',')
	require.NoError(t, err)
	require.True(t, got.IsErr())
	assert.Equal(t, tensor.MsgSingleIndexName, got.Message())
}

func TestReadCSVMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.csv")
	_, err := ReadCSV[float64](context.Background(), "a", path, ',')
	assert.Error(t, err)
}

func TestReadCSVDiscardsUndecodableFields(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "mixed.csv")

	good, err := fieldcodec.Encode(2.5)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("garbage,"+good+",???\n"), 0o644))

	got, err := ReadCSV[float64](ctx, "a", path, ',')
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5}, got.Leaves())
}

func TestReadCSVAllFieldsUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y,z\n"), 0o644))

	_, err := ReadCSV[float64](context.Background(), "a", path, ',')
	assert.ErrorIs(t, err, ErrNoDecodableFields)
}

func TestReadCSVEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := ReadCSV[float64](context.Background(), "a", path, ',')
	assert.ErrorIs(t, err, ErrNoDecodableFields)
}

func TestReadCSVIgnoresLaterRows(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "rows.csv")

	first, err := fieldcodec.Encode(1.0)
	require.NoError(t, err)
	second, err := fieldcodec.Encode(99.0)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(first+"\n"+second+"\n"), 0o644))

	got, err := ReadCSV[float64](ctx, "a", path, ',')
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, got.Leaves())
}

func TestCSVRoundTripStrings(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "strings.csv")

	src := form.FromIndices("s", 3, func(i int) string {
		return strings.Repeat("x,\"y\"", i+1)
	})
	rows, err := WriteCSV(ctx, src, path, ',')
	require.NoError(t, err)
	require.Equal(t, 1, rows)

	got, err := ReadCSV[string](ctx, "s", path, ',')
	require.NoError(t, err)
	assert.Equal(t, src.Leaves(), got.Leaves())
}
