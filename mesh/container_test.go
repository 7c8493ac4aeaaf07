package mesh

import (
	"testing"

	"github.com/hupe1980/meshcomp/comp"
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/geom"
	"github.com/hupe1980/meshcomp/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testVertex struct {
	comp.Base
	comp.BitFlags
	comp.Position
	comp.OptionalColor
	comp.OptionalAdjacentFaces[comp.Dynamic]
	comp.CustomComponents
}

type testFace struct {
	comp.Base
	comp.BitFlags
	comp.VertexReferences[comp.Dynamic]
	comp.OptionalAdjacentFaces[comp.Dynamic]
	comp.OptionalWedgeColors[comp.Dynamic]
	comp.VerticalQuality
}

type otherVertex struct {
	comp.Base
	comp.BitFlags
	comp.Positionf
	comp.Color
	comp.CustomComponents
}

func newTestMesh(t *testing.T) (*Mesh, *Container[testVertex, *testVertex], *Container[testFace, *testFace]) {
	t.Helper()
	m := New()
	vs := NewContainer[testVertex](core.Vertex)
	fs := NewContainer[testFace](core.Face)
	require.NoError(t, m.Register(vs))
	require.NoError(t, m.Register(fs))
	return m, vs, fs
}

func must[T any](p *T, ok bool) *T {
	if !ok {
		panic("component not accessible")
	}
	return p
}

func refs(e comp.Element) []core.Index {
	l, _ := comp.VertexReferencesOf(e)
	return append([]core.Index(nil), l.Values()...)
}

func TestContainerAdd(t *testing.T) {
	vs := NewContainer[testVertex](core.Vertex)
	assert.Equal(t, 0, vs.Size())

	i := vs.Add()
	assert.Equal(t, core.Index(0), i)
	first := vs.AddN(3)
	assert.Equal(t, core.Index(1), first)
	assert.Equal(t, 4, vs.Size())
	assert.Equal(t, 4, vs.Number())

	for row := range vs.Size() {
		idx, ok := vs.Element(row).Index()
		require.True(t, ok)
		assert.Equal(t, core.Index(row), idx)
	}

	assert.Panics(t, func() { vs.Element(4) })
}

func TestCompactScenario(t *testing.T) {
	_, vs, fs := newTestMesh(t)
	vs.AddN(3)
	require.NoError(t, vs.EnableColor())

	*must(comp.ColorOf(vs.Element(1))) = geom.Red
	*must(comp.ColorOf(vs.Element(2))) = geom.Blue

	fs.Add()
	comp.SetVertices(fs.Element(0), []core.Index{1, 2})

	require.NoError(t, vs.Compact([]core.Index{0, core.NullIndex, 1}))

	assert.Equal(t, 2, vs.Size())
	col, ok := store.Column[geom.Color](vs.cols, core.Color)
	require.True(t, ok)
	assert.Equal(t, 2, col.Len())
	assert.Equal(t, geom.Blue, *must(comp.ColorOf(vs.Element(1))))
	assert.Equal(t, []core.Index{core.NullIndex, 1}, refs(fs.Element(0)))
}

func TestCompactPermutation(t *testing.T) {
	_, vs, fs := newTestMesh(t)
	vs.AddN(3)
	for i := range 3 {
		must(comp.PositionOf(vs.Element(i))).X = float64(i)
	}
	fs.Add()
	comp.SetVertices(fs.Element(0), []core.Index{0, 1, 2})

	require.NoError(t, vs.Compact([]core.Index{2, 0, 1}))

	assert.Equal(t, 1.0, must(comp.PositionOf(vs.Element(0))).X)
	assert.Equal(t, 2.0, must(comp.PositionOf(vs.Element(1))).X)
	assert.Equal(t, 0.0, must(comp.PositionOf(vs.Element(2))).X)
	assert.Equal(t, []core.Index{2, 0, 1}, refs(fs.Element(0)))

	for row := range vs.Size() {
		idx, ok := vs.Element(row).Index()
		require.True(t, ok)
		assert.Equal(t, core.Index(row), idx)
	}
}

func TestCompactInvalid(t *testing.T) {
	vs := NewContainer[testVertex](core.Vertex)
	vs.AddN(3)

	err := vs.Compact([]core.Index{0, 1})
	assert.ErrorIs(t, err, core.ErrInvalidIndices)
	err = vs.Compact([]core.Index{0, 0, 1})
	assert.ErrorIs(t, err, core.ErrInvalidIndices)
	err = vs.Compact([]core.Index{0, 2, core.NullIndex})
	assert.ErrorIs(t, err, core.ErrInvalidIndices)
	assert.Equal(t, 3, vs.Size())
}

func TestResizeShrinkNullsReferences(t *testing.T) {
	_, vs, fs := newTestMesh(t)
	vs.AddN(3)
	fs.Add()
	comp.SetVertices(fs.Element(0), []core.Index{0, 1, 2})

	vs.Resize(2)

	assert.Equal(t, 2, vs.Size())
	assert.Equal(t, []core.Index{0, 1, core.NullIndex}, refs(fs.Element(0)))

	vs.Resize(5)
	assert.Equal(t, 5, vs.Size())
	assert.Equal(t, geom.Point3d{}, *must(comp.PositionOf(vs.Element(4))))
}

func TestDeleteAndCompactDeleted(t *testing.T) {
	m, vs, fs := newTestMesh(t)
	vs.AddN(4)
	fs.Add()
	comp.SetVertices(fs.Element(0), []core.Index{0, 2, 3})

	vs.Delete(2)
	assert.True(t, vs.IsDeleted(2))
	assert.True(t, comp.IsDeleted(vs.Element(2)))
	assert.Equal(t, 3, vs.Number())
	assert.Equal(t, 1, vs.DeletedNumber())
	assert.False(t, m.IsCompact())

	var seen []core.Index
	for i := range vs.All() {
		seen = append(seen, i)
	}
	assert.Equal(t, []core.Index{0, 1, 3}, seen)

	newIndices, err := vs.CompactDeleted()
	require.NoError(t, err)
	assert.Equal(t, []core.Index{0, 1, core.NullIndex, 2}, newIndices)
	assert.Equal(t, 3, vs.Size())
	assert.Equal(t, 0, vs.DeletedNumber())
	assert.True(t, m.IsCompact())
	assert.Equal(t, []core.Index{0, core.NullIndex, 2}, refs(fs.Element(0)))

	newIndices, err = vs.CompactDeleted()
	require.NoError(t, err)
	assert.Nil(t, newIndices)
}

func TestRelocationKeepsBackReferences(t *testing.T) {
	vs := NewContainer[testVertex](core.Vertex)
	require.NoError(t, vs.EnableColor())
	vs.Add()
	*must(comp.ColorOf(vs.Element(0))) = geom.Green
	stale := vs.Element(0)

	vs.AddN(100)

	assert.False(t, stale.IsAttached(), "element of the old array must be detached")
	_, ok := comp.ColorOf(stale)
	assert.False(t, ok)

	for row := range vs.Size() {
		e := vs.Element(row)
		idx, ok := e.Index()
		require.True(t, ok)
		assert.Equal(t, core.Index(row), idx)
	}
	assert.Equal(t, geom.Green, *must(comp.ColorOf(vs.Element(0))))
}

func TestReserve(t *testing.T) {
	vs := NewContainer[testVertex](core.Vertex, WithCapacity(8))
	vs.AddN(8)
	e := vs.Element(3)
	vs.AddN(0)
	assert.True(t, e.IsAttached())

	vs.Reserve(64)
	assert.False(t, e.IsAttached())
	assert.True(t, vs.Element(3).IsAttached())
}

func TestEnableDisable(t *testing.T) {
	vs := NewContainer[testVertex](core.Vertex)
	vs.AddN(2)

	assert.True(t, vs.IsPositionEnabled())
	assert.False(t, vs.IsColorEnabled())
	_, ok := comp.ColorOf(vs.Element(0))
	assert.False(t, ok)

	require.NoError(t, vs.EnableColor())
	require.NoError(t, vs.EnableColor())
	assert.True(t, vs.IsColorEnabled())
	c, ok := comp.ColorOf(vs.Element(1))
	require.True(t, ok)
	assert.Equal(t, geom.Color{}, *c)

	vs.Add()
	_, ok = comp.ColorOf(vs.Element(2))
	assert.True(t, ok)

	require.NoError(t, vs.DisableColor())
	assert.False(t, vs.IsColorEnabled())

	assert.ErrorIs(t, vs.EnablePosition(), core.ErrNotOptional)
	assert.ErrorIs(t, vs.DisableNormal(), core.ErrNotOptional)
	assert.False(t, vs.IsNormalEnabled())
	assert.True(t, vs.IsEnabled(core.Custom))
}

func TestEnableTiedLists(t *testing.T) {
	fs := NewContainer[testFace](core.Face)
	fs.AddN(2)
	comp.SetVertices(fs.Element(0), []core.Index{0, 1, 2, 3})
	comp.SetVertices(fs.Element(1), []core.Index{4, 5, 6})

	require.NoError(t, fs.EnableAdjacentFaces())
	require.NoError(t, fs.EnableWedgeColors())

	af, ok := comp.AdjacentFacesOf(fs.Element(0))
	require.True(t, ok)
	assert.Equal(t, 4, af.Len())
	wc, ok := comp.WedgeColorsOf(fs.Element(1))
	require.True(t, ok)
	assert.Equal(t, 3, wc.Len())

	comp.PushVertex(fs.Element(1), 7)
	wc, _ = comp.WedgeColorsOf(fs.Element(1))
	assert.Equal(t, 4, wc.Len())
}

func TestEnableAllOptional(t *testing.T) {
	fs := NewContainer[testFace](core.Face)
	fs.EnableAllOptional()
	assert.True(t, fs.IsAdjacentFacesEnabled())
	assert.True(t, fs.IsWedgeColorsEnabled())

	fs.DisableAllOptional()
	assert.False(t, fs.IsAdjacentFacesEnabled())
	assert.False(t, fs.IsWedgeColorsEnabled())
	assert.True(t, fs.IsQualityEnabled())
}

func TestWithOptional(t *testing.T) {
	vs := NewContainer[testVertex](core.Vertex, WithOptional(core.Color, core.Position))
	assert.True(t, vs.IsColorEnabled())
}

func TestClear(t *testing.T) {
	_, vs, fs := newTestMesh(t)
	require.NoError(t, vs.EnableColor())
	require.NoError(t, AddCustomComponent(vs, "weight", 1.5))
	vs.AddN(3)
	e := vs.Element(0)
	fs.Add()
	comp.SetVertices(fs.Element(0), []core.Index{0, 1, 2})

	vs.Clear()

	assert.Equal(t, 0, vs.Size())
	assert.True(t, vs.IsColorEnabled())
	assert.False(t, e.IsAttached())
	assert.False(t, vs.HasCustomComponent("weight"))
	assert.Equal(t, []core.Index{core.NullIndex, core.NullIndex, core.NullIndex}, refs(fs.Element(0)))
}

func TestCustomComponents(t *testing.T) {
	vs := NewContainer[testVertex](core.Vertex)
	vs.AddN(2)

	require.NoError(t, AddCustomComponent(vs, "weight", 7))
	assert.True(t, vs.HasCustomComponent("weight"))
	assert.Equal(t, []string{"weight"}, vs.CustomComponentNames())

	typ, err := vs.CustomComponentType("weight")
	require.NoError(t, err)
	assert.Equal(t, "int", typ.String())

	col, err := CustomComponent[int](vs, "weight")
	require.NoError(t, err)
	assert.Equal(t, 2, col.Len())
	assert.Equal(t, 7, *col.At(1))

	vs.Add()
	w, err := comp.CustomOf[int](vs.Element(2), "weight")
	require.NoError(t, err)
	assert.Equal(t, 7, *w)
	*w = 9

	require.NoError(t, vs.Compact([]core.Index{core.NullIndex, 1, 0}))
	w, err = comp.CustomOf[int](vs.Element(0), "weight")
	require.NoError(t, err)
	assert.Equal(t, 9, *w)

	_, err = CustomComponent[float64](vs, "weight")
	assert.ErrorIs(t, err, core.ErrTypeMismatch)
	_, err = CustomComponent[int](vs, "missing")
	assert.ErrorIs(t, err, core.ErrNotFound)

	require.NoError(t, vs.DeleteCustomComponent("weight"))
	assert.False(t, vs.HasCustomComponent("weight"))

	fs := NewContainer[testFace](core.Face)
	assert.ErrorIs(t, AddCustomComponent(fs, "weight", 1), core.ErrNotFound)
	assert.Nil(t, fs.CustomComponentNames())
}

func TestContainerAppend(t *testing.T) {
	a := NewContainer[testFace](core.Face)
	b := NewContainer[testFace](core.Face)
	require.NoError(t, a.EnableAdjacentFaces())
	require.NoError(t, b.EnableAdjacentFaces())

	a.Add()
	b.AddN(2)
	comp.SetVertices(b.Element(0), []core.Index{0, 1, 2})
	comp.SetVertices(b.Element(1), []core.Index{2, 1, 3})
	af, _ := comp.AdjacentFacesOf(b.Element(0))
	af.Set(0, 1)
	b.Delete(1)

	require.NoError(t, a.Append(b))

	assert.Equal(t, 3, a.Size())
	assert.True(t, a.IsDeleted(2))
	assert.Equal(t, []core.Index{0, 1, 2}, refs(a.Element(1)), "references into other kinds are kept")
	af, _ = comp.AdjacentFacesOf(a.Element(1))
	assert.Equal(t, core.Index(2), af.At(0))

	// the copy owns its lists
	comp.SetVertices(a.Element(1), []core.Index{9, 9, 9})
	assert.Equal(t, []core.Index{0, 1, 2}, refs(b.Element(0)))
}

func TestImportFrom(t *testing.T) {
	src := NewContainer[otherVertex](core.Vertex)
	src.AddN(2)
	*must(comp.PositionfOf(src.Element(1))) = geom.P3[float32](1, 2, 3)
	*must(comp.ColorOf(src.Element(1))) = geom.Red
	require.NoError(t, AddCustomComponent(src, "label", "x"))
	src.Delete(0)

	dst := NewContainer[testVertex](core.Vertex)
	dst.Add()
	require.NoError(t, dst.ImportFrom(src))

	assert.Equal(t, 2, dst.Size())
	assert.True(t, dst.IsColorEnabled())
	assert.True(t, dst.IsDeleted(0))
	assert.Equal(t, geom.P3[float64](1, 2, 3), *must(comp.PositionOf(dst.Element(1))))
	assert.Equal(t, geom.Red, *must(comp.ColorOf(dst.Element(1))))
	label, err := comp.CustomOf[string](dst.Element(1), "label")
	require.NoError(t, err)
	assert.Equal(t, "x", *label)

	fs := NewContainer[testFace](core.Face)
	assert.ErrorIs(t, fs.ImportFrom(src), core.ErrIncompatible)
}

func TestEnableSameOptionalComponentsOf(t *testing.T) {
	a := NewContainer[testFace](core.Face)
	b := NewContainer[testFace](core.Face)
	require.NoError(t, a.EnableWedgeColors())
	require.NoError(t, b.EnableAdjacentFaces())

	a.EnableSameOptionalComponentsOf(b)
	assert.True(t, a.IsAdjacentFacesEnabled())
	assert.False(t, a.IsWedgeColorsEnabled())
}
