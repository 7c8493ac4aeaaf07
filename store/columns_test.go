package store

import (
	"testing"

	"github.com/hupe1980/meshcomp/column"
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/custom"
	"github.com/hupe1980/meshcomp/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLayout() Layout {
	var l Layout
	l.Slots[core.Color] = Slot{New: func() column.Slot { return column.New[geom.Color](nil) }, Optional: true}
	l.Slots[core.Quality] = Slot{New: func() column.Slot { return column.New[float64](nil) }}
	l.Slots[core.AdjacentFaces] = Slot{
		New: func() column.Slot {
			return column.New(func(v *[]core.Index) { *v = []core.Index{core.NullIndex, core.NullIndex} })
		},
		Optional: true,
	}
	l.Custom = true
	return l
}

func assertCoherent(t *testing.T, c *Columns) {
	t.Helper()
	for _, k := range core.Kinds() {
		s := c.Slot(k)
		if s == nil {
			continue
		}
		if s.IsEnabled() {
			assert.Equal(t, c.Len(), s.Len(), "kind %s", k)
		} else {
			assert.Equal(t, 0, s.Len(), "kind %s", k)
		}
	}
}

func TestNewEnablesVerticalColumns(t *testing.T) {
	c := New(testLayout())

	assert.True(t, c.IsQualityEnabled())
	assert.False(t, c.IsColorEnabled())
	assert.False(t, c.Has(core.Normal))
	assert.True(t, c.IsOptional(core.Color))
	assert.False(t, c.IsOptional(core.Quality))
	assert.NotNil(t, c.Custom())
}

func TestEnableDisable(t *testing.T) {
	c := New(testLayout())
	c.Resize(3)

	require.True(t, c.EnableColor())
	assert.Equal(t, 3, c.Slot(core.Color).Len())

	assert.False(t, c.DisableQuality(), "vertical columns cannot be disabled")
	assert.False(t, c.EnableNormal(), "not column backed")

	require.True(t, c.DisableColor())
	assert.False(t, c.IsColorEnabled())
	assertCoherent(t, c)
}

func TestSizeCoherence(t *testing.T) {
	c := New(testLayout())
	c.EnableColor()
	c.EnableAdjacentFaces()
	require.NoError(t, custom.Add(c.Custom(), "w", 1))

	c.Resize(5)
	assertCoherent(t, c)

	c.Compact([]core.Index{0, core.NullIndex, 1, core.NullIndex, 2})
	assert.Equal(t, 3, c.Len())
	assertCoherent(t, c)
	assert.Equal(t, 3, custom.MustColumnOf[int](c.Custom(), "w").Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.IsColorEnabled())
	assertCoherent(t, c)
	assert.Empty(t, c.Custom().Names())
}

func TestTypedColumn(t *testing.T) {
	c := New(testLayout())
	c.Resize(2)

	_, ok := Column[geom.Color](c, core.Color)
	assert.False(t, ok, "disabled")

	c.EnableColor()
	col, ok := Column[geom.Color](c, core.Color)
	require.True(t, ok)
	col.Set(1, geom.Red)

	_, ok = Column[geom.Point3d](c, core.Color)
	assert.False(t, ok, "payload type differs")

	_, ok = Column[geom.Color](nil, core.Color)
	assert.False(t, ok)

	adj, ok := Column[[]core.Index](c, core.AdjacentFaces)
	assert.False(t, ok)
	assert.Nil(t, adj)
}

func TestAppend(t *testing.T) {
	a := New(testLayout())
	a.Resize(1)
	a.EnableColor()

	b := New(testLayout())
	b.Resize(2)
	b.EnableColor()
	col, _ := Column[geom.Color](b, core.Color)
	col.Set(1, geom.Blue)

	require.True(t, a.Append(b, 2))
	assert.Equal(t, 3, a.Len())
	assertCoherent(t, a)

	got, _ := Column[geom.Color](a, core.Color)
	assert.Equal(t, geom.Blue, *got.At(2))
}

func TestEpoch(t *testing.T) {
	c := New(testLayout())
	e := c.Epoch()
	assert.Equal(t, e+1, c.Bump())
	assert.Equal(t, e+1, c.Epoch())
}
