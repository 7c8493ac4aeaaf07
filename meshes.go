package meshcomp

import (
	"context"
	"fmt"

	"github.com/hupe1980/meshcomp/comp"
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/geom"
	"github.com/hupe1980/meshcomp/mesh"
)

// TriMesh is a triangle mesh.
type TriMesh struct {
	*mesh.Mesh
	Vertices *mesh.Container[TriVertex, *TriVertex]
	Faces    *mesh.Container[Triangle, *Triangle]
	logger   *Logger
}

// PolyMesh is a polygonal mesh.
type PolyMesh struct {
	*mesh.Mesh
	Vertices *mesh.Container[TriVertex, *TriVertex]
	Faces    *mesh.Container[Polygon, *Polygon]
	logger   *Logger
}

// EdgeMesh is a set of vertices connected by edges.
type EdgeMesh struct {
	*mesh.Mesh
	Vertices *mesh.Container[EdgeVertex, *EdgeVertex]
	Edges    *mesh.Container[Edge, *Edge]
	logger   *Logger
}

// NewTriMesh creates an empty triangle mesh.
func NewTriMesh(opts ...Option) (*TriMesh, error) {
	o := applyOptions(opts)
	m := &TriMesh{
		Vertices: mesh.NewContainer[TriVertex](core.Vertex, mesh.WithLogger(o.logger.Logger)),
		Faces:    mesh.NewContainer[Triangle](core.Face, mesh.WithLogger(o.logger.Logger)),
		logger:   o.logger,
	}
	var err error
	m.Mesh, err = assemble(o, m.Vertices, m.Faces)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// NewPolyMesh creates an empty polygonal mesh.
func NewPolyMesh(opts ...Option) (*PolyMesh, error) {
	o := applyOptions(opts)
	m := &PolyMesh{
		Vertices: mesh.NewContainer[TriVertex](core.Vertex, mesh.WithLogger(o.logger.Logger)),
		Faces:    mesh.NewContainer[Polygon](core.Face, mesh.WithLogger(o.logger.Logger)),
		logger:   o.logger,
	}
	var err error
	m.Mesh, err = assemble(o, m.Vertices, m.Faces)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// NewEdgeMesh creates an empty edge mesh.
func NewEdgeMesh(opts ...Option) (*EdgeMesh, error) {
	o := applyOptions(opts)
	m := &EdgeMesh{
		Vertices: mesh.NewContainer[EdgeVertex](core.Vertex, mesh.WithLogger(o.logger.Logger)),
		Edges:    mesh.NewContainer[Edge](core.Edge, mesh.WithLogger(o.logger.Logger)),
		logger:   o.logger,
	}
	var err error
	m.Mesh, err = assemble(o, m.Vertices, m.Edges)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func assemble(o options, cs ...mesh.ElementContainer) (*mesh.Mesh, error) {
	m := mesh.New(mesh.WithLogger(o.logger.Logger))
	for _, c := range cs {
		if err := m.Register(c); err != nil {
			return nil, err
		}
		k := c.ElementKind()
		if n := o.capacity[k]; n > 0 {
			c.Reserve(n)
		}
		for _, kind := range o.optional[k] {
			if err := c.Enable(kind); err != nil {
				return nil, err
			}
		}
	}
	if o.profile != nil {
		if err := o.profile.Apply(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// AddVertex appends a vertex at p and returns its index.
func (m *TriMesh) AddVertex(p geom.Point3d) core.Index { return addVertex(m.Vertices, p) }

// AddVertex appends a vertex at p and returns its index.
func (m *PolyMesh) AddVertex(p geom.Point3d) core.Index { return addVertex(m.Vertices, p) }

// AddVertex appends a vertex at p and returns its index.
func (m *EdgeMesh) AddVertex(p geom.Point3d) core.Index { return addVertex(m.Vertices, p) }

// AddFace appends the triangle (v0, v1, v2).
func (m *TriMesh) AddFace(v0, v1, v2 core.Index) (core.Index, error) {
	return addWithVertices(m.Faces, m.Vertices.Size(), v0, v1, v2)
}

// AddFace appends a polygon with the given vertices.
func (m *PolyMesh) AddFace(vs ...core.Index) (core.Index, error) {
	return addWithVertices(m.Faces, m.Vertices.Size(), vs...)
}

// AddEdge appends the edge (v0, v1).
func (m *EdgeMesh) AddEdge(v0, v1 core.Index) (core.Index, error) {
	return addWithVertices(m.Edges, m.Vertices.Size(), v0, v1)
}

// Clone returns a deep copy of m sharing its logger.
func (m *TriMesh) Clone() (*TriMesh, error) {
	out, err := NewTriMesh(WithLogger(m.logger))
	if err != nil {
		return nil, err
	}
	return out, out.Append(m.Mesh)
}

// Clone returns a deep copy of m sharing its logger.
func (m *PolyMesh) Clone() (*PolyMesh, error) {
	out, err := NewPolyMesh(WithLogger(m.logger))
	if err != nil {
		return nil, err
	}
	return out, out.Append(m.Mesh)
}

// Clone returns a deep copy of m sharing its logger.
func (m *EdgeMesh) Clone() (*EdgeMesh, error) {
	out, err := NewEdgeMesh(WithLogger(m.logger))
	if err != nil {
		return nil, err
	}
	return out, out.Append(m.Mesh)
}

// Compact removes every deleted element.
func (m *TriMesh) Compact() error { return compact(m.Mesh, m.logger) }

// Compact removes every deleted element.
func (m *PolyMesh) Compact() error { return compact(m.Mesh, m.logger) }

// Compact removes every deleted element.
func (m *EdgeMesh) Compact() error { return compact(m.Mesh, m.logger) }

func compact(m *mesh.Mesh, l *Logger) error {
	err := m.Compact()
	l.LogCompact(context.Background(), m, err)
	return err
}

func addVertex[E any, PE interface {
	*E
	comp.Element
}](c *mesh.Container[E, PE], p geom.Point3d) core.Index {
	i := c.Add()
	e := c.Element(int(i))
	if pos, ok := comp.PositionOf(e); ok {
		*pos = p
	} else if pos, ok := comp.PositionfOf(e); ok {
		*pos = geom.Cast[float32](p)
	}
	return i
}

func addWithVertices[E any, PE interface {
	*E
	comp.Element
}](c *mesh.Container[E, PE], nv int, vs ...core.Index) (core.Index, error) {
	for _, v := range vs {
		if v.IsNull() || int(v) >= nv {
			return core.NullIndex, fmt.Errorf("vertex reference: %w", &core.IndexOutOfBoundsError{Index: int(v), Len: nv})
		}
	}
	i := c.Add()
	comp.SetVertices(c.Element(int(i)), vs)
	return i, nil
}
