package meshcomp

// This file implements the fluent builders of the predefined meshes.
// Builders are immutable - each method returns a new builder with the updated configuration.

import (
	"slices"

	"github.com/hupe1980/meshcomp/core"
)

// Builder is an immutable fluent builder for a predefined mesh type M.
//
// Example:
//
//	m, err := meshcomp.Tri().
//	    Optional(core.Vertex, core.Mark).
//	    Optional(core.Face, core.Color, core.AdjacentFaces).
//	    Capacity(core.Vertex, 1024).
//	    Build()
type Builder[M any] struct {
	opts  []Option
	build func(opts ...Option) (M, error)
}

// Tri creates a TriMesh builder.
func Tri() Builder[*TriMesh] { return Builder[*TriMesh]{build: NewTriMesh} }

// Poly creates a PolyMesh builder.
func Poly() Builder[*PolyMesh] { return Builder[*PolyMesh]{build: NewPolyMesh} }

// Edges creates an EdgeMesh builder.
func Edges() Builder[*EdgeMesh] { return Builder[*EdgeMesh]{build: NewEdgeMesh} }

func (b Builder[M]) with(o Option) Builder[M] {
	b.opts = append(slices.Clip(b.opts), o)
	return b
}

// Optional enables optional components of the elements of kind k.
func (b Builder[M]) Optional(k core.ElementKind, kinds ...core.Kind) Builder[M] {
	return b.with(WithOptional(k, kinds...))
}

// Capacity reserves room for n elements of kind k.
func (b Builder[M]) Capacity(k core.ElementKind, n int) Builder[M] {
	return b.with(WithCapacity(k, n))
}

// Logger sets the logger.
func (b Builder[M]) Logger(l *Logger) Builder[M] {
	return b.with(WithLogger(l))
}

// Profile applies p after construction.
func (b Builder[M]) Profile(p *Profile) Builder[M] {
	return b.with(WithProfile(p))
}

// Build creates the mesh.
func (b Builder[M]) Build() (M, error) {
	return b.build(b.opts...)
}
