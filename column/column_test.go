package column

import (
	"testing"

	"github.com/hupe1980/meshcomp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const null = core.NullIndex

func TestEnableDisableRoundTrip(t *testing.T) {
	c := New[int](nil)
	assert.False(t, c.IsEnabled())
	assert.Equal(t, 0, c.Len())

	c.Enable(4)
	c.Set(2, 42)
	c.Disable()
	assert.False(t, c.IsEnabled())
	assert.Equal(t, 0, c.Len())

	c.Enable(4)
	require.True(t, c.IsEnabled())
	require.Equal(t, 4, c.Len())
	for i := range 4 {
		assert.Equal(t, 0, *c.At(i))
	}
}

func TestEnableIdempotent(t *testing.T) {
	c := New[string](nil)
	c.Enable(3)
	c.Set(1, "b")

	c.Enable(3)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "b", *c.At(1))

	c.Enable(5)
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, "b", *c.At(1))
}

func TestInitializer(t *testing.T) {
	c := New(func(v *[]core.Index) { *v = []core.Index{null, null} })
	c.Enable(2)
	assert.Equal(t, []core.Index{null, null}, *c.At(1))

	c.Resize(3)
	assert.Equal(t, []core.Index{null, null}, *c.At(2))
}

func TestDisabledIsNoOp(t *testing.T) {
	c := New[int](nil)
	c.Resize(10)
	c.Reserve(10)
	c.Clear()
	c.Compact([]core.Index{0, null})
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Rows())

	assert.PanicsWithValue(t, core.ErrDisabled, func() { c.At(0) })
	_, err := c.Get(0)
	assert.ErrorIs(t, err, core.ErrDisabled)
}

func TestBounds(t *testing.T) {
	c := New[int](nil)
	c.Enable(2)

	assert.Panics(t, func() { c.At(2) })
	assert.Panics(t, func() { c.At(-1) })

	_, err := c.Get(2)
	var oob *core.IndexOutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 2, oob.Index)
	assert.Equal(t, 2, oob.Len)
}

func TestResizeReserveClear(t *testing.T) {
	c := New[int](nil)
	c.Enable(3)
	c.Set(2, 7)

	c.Reserve(100)
	assert.Equal(t, 3, c.Len())
	assert.GreaterOrEqual(t, cap(c.Rows()), 100)
	assert.Equal(t, 7, *c.At(2))

	c.Resize(2)
	c.Resize(3)
	assert.Equal(t, 0, *c.At(2))

	c.Clear()
	assert.True(t, c.IsEnabled())
	assert.Equal(t, 0, c.Len())
}

func TestCompact(t *testing.T) {
	tests := []struct {
		name       string
		newIndices []core.Index
		want       []int
	}{
		{"remove middle", []core.Index{0, null, 1}, []int{10, 30}},
		{"remove all", []core.Index{null, null, null}, []int{}},
		{"identity", []core.Index{0, 1, 2}, []int{10, 20, 30}},
		{"reverse", []core.Index{2, 1, 0}, []int{30, 20, 10}},
		{"rotate with removal", []core.Index{1, 0, null}, []int{20, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New[int](nil)
			c.Enable(3)
			copy(c.Rows(), []int{10, 20, 30})

			c.Compact(tt.newIndices)
			assert.Equal(t, len(tt.want), c.Len())
			assert.Equal(t, tt.want, c.Rows())
		})
	}
}

func TestAppendFrom(t *testing.T) {
	a := New[int](nil)
	a.Enable(2)
	b := New[int](nil)
	b.Enable(2)
	copy(b.Rows(), []int{5, 6})

	require.True(t, a.AppendFrom(b, 2))
	assert.Equal(t, []int{0, 0, 5, 6}, a.Rows())

	b.Disable()
	require.True(t, a.AppendFrom(b, 3))
	assert.Equal(t, 7, a.Len())

	assert.False(t, a.AppendFrom(New[float64](nil), 1))
}
