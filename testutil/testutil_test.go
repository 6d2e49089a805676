package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	p := rng.UniformPoints(8, 32)

	assert.Equal(t, 8, len(p))
	assert.Equal(t, 32, len(p[0]))
	assert.Less(t, p[0][0], 1.0)
	assert.GreaterOrEqual(t, p[1][0], 0.0)
}

func TestUniformPoints_Reproducible(t *testing.T) {
	a := NewRNG(42).UniformPoints(4, 3)
	b := NewRNG(42).UniformPoints(4, 3)
	assert.Equal(t, a, b)

	rng := NewRNG(42)
	first := rng.UniformPoints(4, 3)
	rng.Reset()
	assert.Equal(t, first, rng.UniformPoints(4, 3))
	assert.Equal(t, int64(42), rng.Seed())
}

func TestBlobPoints(t *testing.T) {
	rng := NewRNG(1)
	centers := [][]float64{{0, 0}, {100, 100}}

	pts := rng.BlobPoints(centers, 10, 0.5)
	require.Len(t, pts, 20)

	near := 0
	for _, p := range pts {
		if p[0] < 50 {
			near++
		}
	}
	assert.Equal(t, 10, near)
}

func TestFormatInput(t *testing.T) {
	out := FormatInput(2, [][]float64{{0, 1.5}, {-2, 3}})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2 2", lines[0])
	assert.Equal(t, "0 1.5", lines[1])
	assert.Equal(t, "-2 3", lines[2])
}
