package codec

import (
	"testing"

	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}
	_, ok := ByName("gob")
	assert.False(t, ok)
}

func TestRowsInterchangeable(t *testing.T) {
	rows := [][]core.Index{{0, 1, 2}, {core.NullIndex, 4}}
	colors := []geom.Color{geom.Red, geom.RGBA(1, 2, 3, 4)}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := EncodeRows(c, rows)
			require.NoError(t, err)
			gotRows, err := DecodeRows[[]core.Index](JSON{}, data, len(rows))
			require.NoError(t, err)
			assert.Equal(t, rows, gotRows)

			data, err = EncodeRows(c, colors)
			require.NoError(t, err)
			gotColors, err := DecodeRows[geom.Color](GoJSON{}, data, len(colors))
			require.NoError(t, err)
			assert.Equal(t, colors, gotColors)
		})
	}
}

func TestDecodeRowsErrors(t *testing.T) {
	data, err := EncodeRows(Default, []int{1, 2, 3})
	require.NoError(t, err)

	_, err = DecodeRows[int](Default, data, 2)
	assert.ErrorIs(t, err, ErrRowCount)

	_, err = DecodeRows[int](Default, []byte("{"), 3)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrRowCount)
}
