package report

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kcluster"
	"github.com/hupe1980/kcluster/blobstore"
	"github.com/hupe1980/kcluster/codec"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"Integer", 9, 9},
		{"Down", 1.23449, 1.234},
		{"Up", 1.23451, 1.235},
		{"HalfPositive", 0.0625, 0.063},
		{"HalfNegative", -0.0625, -0.063},
		{"NegativeDown", -2.3334, -2.333},
		{"Zero", 0, 0},
		{"NegativeTiny", -0.0001, 0},
		{"NegativeZero", math.Copysign(0, -1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round([][]float64{{tt.in}}, 3)
			assert.Equal(t, tt.want, got[0][0])
			assert.Equal(t, math.Signbit(tt.want), math.Signbit(got[0][0]))
		})
	}
}

func TestWriteText_NoNegativeZero(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, &Report{Centers: Round([][]float64{{-0.0001, 0.0004}}, 3)}))
	assert.Equal(t, "Final centers are:\n0 0\n", buf.String())
}

func TestRound_DoesNotModifyInput(t *testing.T) {
	in := [][]float64{{1.23456, 2}}
	out := Round(in, 3)

	assert.Equal(t, [][]float64{{1.23456, 2}}, in)
	assert.Equal(t, [][]float64{{1.235, 2}}, out)
}

func TestRound_Places(t *testing.T) {
	assert.Equal(t, [][]float64{{3}}, Round([][]float64{{2.5}}, 0))
	assert.Equal(t, [][]float64{{-3}}, Round([][]float64{{-2.5}}, 0))
	assert.Equal(t, [][]float64{{1.2}}, Round([][]float64{{1.24}}, 1))
}

func testResult(t *testing.T) *kcluster.Result {
	t.Helper()
	res, err := kcluster.Cluster(context.Background(), [][]float64{{0, 0}, {1, 1}, {2, 0}, {9, 9}, {10, 10}}, 2)
	require.NoError(t, err)
	return res
}

func TestFromResult(t *testing.T) {
	r := FromResult("points.txt", testResult(t))

	assert.Equal(t, "points.txt", r.Name)
	assert.Equal(t, 2, r.K)
	assert.Equal(t, 2, r.M)
	assert.True(t, r.Converged)
	assert.Equal(t, []int{3, 2}, r.Sizes)
	assert.Equal(t, [][]float64{{1, 0.333}, {9.5, 9.5}}, r.Centers)
}

func TestWriteText(t *testing.T) {
	r := &Report{Centers: [][]float64{{1, 0.333}, {9.5, -9.5}}}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	assert.Equal(t, "Final centers are:\n1 0.333\n9.5 -9.5\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	r := &Report{K: 1, M: 1, Iterations: 1, Converged: true, Sizes: []int{2}, Centers: [][]float64{{1.5}}}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, r, nil))
	assert.JSONEq(t,
		`{"k":1,"m":1,"iterations":1,"converged":true,"inertia":0,"sizes":[2],"centers":[[1.5]]}`,
		buf.String())
	assert.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewLocalStore(t.TempDir())
	r := FromResult("points.txt", testResult(t))

	for _, name := range []string{"out/report.json", "out/report.json.zst", "out/report.json.lz4"} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, Save(ctx, store, name, r, SaveOptions{Codec: codec.IndentJSON{}}))

			got, err := Load(ctx, store, name, nil)
			require.NoError(t, err)
			assert.Equal(t, r, got)
		})
	}

	names, err := store.List(ctx, "out/")
	require.NoError(t, err)
	assert.Len(t, names, 3)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(context.Background(), blobstore.NewMemoryStore(), "nope.json", nil)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
