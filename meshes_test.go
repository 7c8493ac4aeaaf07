package meshcomp

import (
	"path/filepath"
	"testing"

	"github.com/hupe1980/meshcomp/comp"
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/geom"
	"github.com/hupe1980/meshcomp/mesh"
	"github.com/hupe1980/meshcomp/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quad(t *testing.T) *TriMesh {
	t.Helper()
	m, err := NewTriMesh()
	require.NoError(t, err)
	v0 := m.AddVertex(geom.P3(0.0, 0, 0))
	v1 := m.AddVertex(geom.P3(1.0, 0, 0))
	v2 := m.AddVertex(geom.P3(1.0, 1, 0))
	v3 := m.AddVertex(geom.P3(0.0, 1, 0))
	_, err = m.AddFace(v0, v1, v2)
	require.NoError(t, err)
	_, err = m.AddFace(v0, v2, v3)
	require.NoError(t, err)
	return m
}

func faceVertices(m *TriMesh, f int) []core.Index {
	l, _ := comp.VertexReferencesOf(m.Faces.Element(f))
	return append([]core.Index(nil), l.Values()...)
}

func TestTriMeshAddFace(t *testing.T) {
	m := quad(t)
	assert.Equal(t, 4, m.Vertices.Size())
	assert.Equal(t, 2, m.Faces.Size())
	assert.Equal(t, []core.Index{0, 2, 3}, faceVertices(m, 1))

	_, err := m.AddFace(0, 1, 9)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = m.AddFace(0, core.NullIndex, 1)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	assert.Equal(t, 2, m.Faces.Size())
}

func TestTriMeshCompact(t *testing.T) {
	m := quad(t)
	m.Vertices.Delete(1)
	m.Faces.Delete(0)

	require.NoError(t, m.Compact())
	assert.True(t, m.IsCompact())
	assert.Equal(t, 3, m.Vertices.Size())
	assert.Equal(t, 1, m.Faces.Size())
	assert.Equal(t, []core.Index{0, 1, 2}, faceVertices(m, 0))

	p, _ := comp.PositionOf(m.Vertices.Element(1))
	assert.Equal(t, geom.P3(1.0, 1, 0), *p)
}

func TestTriMeshClone(t *testing.T) {
	m := quad(t)
	require.NoError(t, m.Faces.EnableColor())
	c, _ := comp.ColorOf(m.Faces.Element(1))
	*c = geom.Blue
	require.NoError(t, mesh.AddCustomComponent(m.Vertices, "id", int64(0)))
	id, err := comp.CustomOf[int64](m.Vertices.Element(3), "id")
	require.NoError(t, err)
	*id = 42

	cp, err := m.Clone()
	require.NoError(t, err)

	assert.Equal(t, 4, cp.Vertices.Size())
	assert.True(t, cp.Faces.IsColorEnabled())
	c, _ = comp.ColorOf(cp.Faces.Element(1))
	assert.Equal(t, geom.Blue, *c)
	id, err = comp.CustomOf[int64](cp.Vertices.Element(3), "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), *id)

	comp.SetVertices(cp.Faces.Element(0), []core.Index{3, 2, 1})
	assert.Equal(t, []core.Index{0, 1, 2}, faceVertices(m, 0))
}

func TestPolyMeshTiedLists(t *testing.T) {
	m, err := Poly().Optional(core.Face, core.WedgeTexCoords).Build()
	require.NoError(t, err)
	for i := range 5 {
		m.AddVertex(geom.P3(float64(i), 0, 0))
	}
	f, err := m.AddFace(0, 1, 2, 3, 4)
	require.NoError(t, err)

	wt, ok := comp.WedgeTexCoordsOf(m.Faces.Element(int(f)))
	require.True(t, ok)
	assert.Equal(t, 5, wt.Len())

	comp.EraseVertex(m.Faces.Element(int(f)), 0)
	wt, _ = comp.WedgeTexCoordsOf(m.Faces.Element(int(f)))
	assert.Equal(t, 4, wt.Len())
}

func TestEdgeMesh(t *testing.T) {
	m, err := NewEdgeMesh()
	require.NoError(t, err)
	a := m.AddVertex(geom.P3(0.0, 0, 0))
	b := m.AddVertex(geom.P3(0.0, 0, 1))
	e, err := m.AddEdge(a, b)
	require.NoError(t, err)

	m.Vertices.Resize(1)
	l, _ := comp.VertexReferencesOf(m.Edges.Element(int(e)))
	assert.Equal(t, []core.Index{0, core.NullIndex}, l.Values())
}

func TestSaveLoadFile(t *testing.T) {
	m := quad(t)
	require.NoError(t, m.Vertices.EnableMark())
	mark, _ := comp.MarkOf(m.Vertices.Element(2))
	*mark = 7
	require.NoError(t, m.Vertices.EnableTangent())
	tan, _ := comp.TangentfOf(m.Vertices.Element(1))
	tan.Tangent = geom.P3[float32](0, 0, 1)
	m.Faces.Delete(1)

	path := filepath.Join(t.TempDir(), "quad.mcsn")
	require.NoError(t, SaveFile(path, m.Mesh, nil, snapshot.WithCompression(snapshot.CompressionZstd)))

	out, err := NewTriMesh()
	require.NoError(t, err)
	require.NoError(t, LoadFile(path, out.Mesh, nil))

	assert.Equal(t, 4, out.Vertices.Size())
	assert.True(t, out.Vertices.IsMarkEnabled())
	mark, _ = comp.MarkOf(out.Vertices.Element(2))
	assert.Equal(t, 7, *mark)
	require.True(t, out.Vertices.IsTangentEnabled())
	tan, _ = comp.TangentfOf(out.Vertices.Element(1))
	assert.Equal(t, geom.P3[float32](0, 0, 1), tan.Tangent)
	assert.True(t, out.Faces.IsDeleted(1))
	assert.Equal(t, faceVertices(m, 0), faceVertices(out, 0))

	assert.Error(t, LoadFile(filepath.Join(t.TempDir(), "missing"), out.Mesh, nil))
}
