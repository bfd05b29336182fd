package tensorio

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/23skdu/longbow-loom/form"
	"github.com/23skdu/longbow-loom/nvector"
	"github.com/23skdu/longbow-loom/tensor"
)

func TestArrowRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "f.arrow")

	src := form.FromIndices("a", 5, func(i int) float64 { return float64(i) * 0.5 })
	n, err := WriteArrowIPC(ctx, src, path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := ReadArrowIPC(ctx, "a", path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, got.Leaves())

	idx := got.Shape()[0]
	assert.Equal(t, tensor.Index{Name: 'a', Size: 5, Variance: tensor.Covariant}, idx)
}

func TestWriteArrowIPCRejectsOtherShapes(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	cases := map[string]tensor.Tensor[float64]{
		"rank2":         nvector.Const("ij", []int{2, 2}, 1.0),
		"contravariant": nvector.Const("i", []int{3}, 1.0),
		"err":           tensor.Err[float64]("broken"),
	}
	for name, tr := range cases {
		path := filepath.Join(dir, name+".arrow")
		n, err := WriteArrowIPC(ctx, tr, path)
		require.NoError(t, err, name)
		assert.Equal(t, 0, n, name)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "%s: no file may be created", name)
	}
}

func TestReadArrowIPCNameArityShortCircuits(t *testing.T) {
	got, err := ReadArrowIPC(context.Background(), "xy", "/nonexistent/f.arrow")
	require.NoError(t, err)
	require.True(t, got.IsErr())
	assert.Equal(t, tensor.MsgSingleIndexName, got.Message())
}

func TestReadArrowIPCMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.arrow")
	_, err := ReadArrowIPC(context.Background(), "a", path)
	assert.Error(t, err)
}

func TestReadArrowIPCRejectsNonArrowFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notarrow.arrow")
	require.NoError(t, os.WriteFile(path, []byte("this is not an arrow stream"), 0o644))

	_, err := ReadArrowIPC(context.Background(), "a", path)
	assert.Error(t, err)
}
