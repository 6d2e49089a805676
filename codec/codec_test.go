package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "json-indent"} {
		t.Run(name, func(t *testing.T) {
			c, ok := ByName(name)
			require.True(t, ok)
			assert.Equal(t, name, c.Name())
		})
	}

	_, ok := ByName("go-json")
	assert.False(t, ok)
}

func TestJSON_Floats(t *testing.T) {
	in := [][]float64{{1, 9}, {0.1, -2.675}, {math.MaxFloat64, math.SmallestNonzeroFloat64}}

	for _, c := range []Codec{JSON{}, IndentJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out [][]float64
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestJSON_RejectsNaN(t *testing.T) {
	_, err := JSON{}.Marshal(math.NaN())
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	c, err := Lookup("json-indent")
	require.NoError(t, err)
	assert.Equal(t, IndentJSON{}, c)

	_, err = Lookup("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json-indent")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"json", "json-indent"}, Names())
}
