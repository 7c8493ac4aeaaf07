package comp

import (
	"github.com/hupe1980/meshcomp/core"
)

// AdjacentVertices stores the adjacent vertices of the element inside the element.
type AdjacentVertices[S Size] struct {
	adjacentVertices []core.Index
}

func (c *AdjacentVertices[S]) adjacentVerticesList(*Base) (List[core.Index], bool) {
	return newList(&c.adjacentVertices, sizeOf[S](), core.NullIndex), true
}

func (*AdjacentVertices[S]) adjacentVerticesSpec() Spec {
	return Spec{Kind: core.AdjacentVertices, Mode: Horizontal, Size: sizeOf[S]()}
}

// VerticalAdjacentVertices stores the adjacent vertices in a container column.
type VerticalAdjacentVertices[S Size] struct{}

func (VerticalAdjacentVertices[S]) adjacentVerticesList(b *Base) (List[core.Index], bool) {
	return verticalList(b, core.AdjacentVertices, sizeOf[S](), core.NullIndex)
}

func (VerticalAdjacentVertices[S]) adjacentVerticesSpec() Spec {
	return Spec{Kind: core.AdjacentVertices, Mode: Vertical, Size: sizeOf[S]()}
}

// OptionalAdjacentVertices stores the adjacent vertices in an optional container column.
type OptionalAdjacentVertices[S Size] struct{}

func (OptionalAdjacentVertices[S]) adjacentVerticesList(b *Base) (List[core.Index], bool) {
	return verticalList(b, core.AdjacentVertices, sizeOf[S](), core.NullIndex)
}

func (OptionalAdjacentVertices[S]) adjacentVerticesSpec() Spec {
	return Spec{Kind: core.AdjacentVertices, Mode: Optional, Size: sizeOf[S]()}
}

type adjacentVerticesHost interface {
	adjacentVerticesList(*Base) (List[core.Index], bool)
}

// AdjacentVerticesOf returns the adjacent vertices of e.
func AdjacentVerticesOf(e Element) (List[core.Index], bool) {
	h, ok := e.(adjacentVerticesHost)
	if !ok {
		return List[core.Index]{}, false
	}
	return h.adjacentVerticesList(e.base())
}

// IsAdjacentVerticesEnabled reports whether the adjacent vertices of e are accessible.
func IsAdjacentVerticesEnabled(e Element) bool {
	_, ok := AdjacentVerticesOf(e)
	return ok
}

// AdjacentFaces stores the adjacent faces of the element inside the element.
type AdjacentFaces[S Size] struct {
	adjacentFaces []core.Index
}

func (c *AdjacentFaces[S]) adjacentFacesList(*Base) (List[core.Index], bool) {
	return newList(&c.adjacentFaces, sizeOf[S](), core.NullIndex), true
}

func (*AdjacentFaces[S]) adjacentFacesSpec() Spec {
	return Spec{Kind: core.AdjacentFaces, Mode: Horizontal, Size: sizeOf[S]()}
}

// VerticalAdjacentFaces stores the adjacent faces in a container column.
type VerticalAdjacentFaces[S Size] struct{}

func (VerticalAdjacentFaces[S]) adjacentFacesList(b *Base) (List[core.Index], bool) {
	return verticalList(b, core.AdjacentFaces, sizeOf[S](), core.NullIndex)
}

func (VerticalAdjacentFaces[S]) adjacentFacesSpec() Spec {
	return Spec{Kind: core.AdjacentFaces, Mode: Vertical, Size: sizeOf[S]()}
}

// OptionalAdjacentFaces stores the adjacent faces in an optional container column.
type OptionalAdjacentFaces[S Size] struct{}

func (OptionalAdjacentFaces[S]) adjacentFacesList(b *Base) (List[core.Index], bool) {
	return verticalList(b, core.AdjacentFaces, sizeOf[S](), core.NullIndex)
}

func (OptionalAdjacentFaces[S]) adjacentFacesSpec() Spec {
	return Spec{Kind: core.AdjacentFaces, Mode: Optional, Size: sizeOf[S]()}
}

type adjacentFacesHost interface {
	adjacentFacesList(*Base) (List[core.Index], bool)
}

// AdjacentFacesOf returns the adjacent faces of e.
func AdjacentFacesOf(e Element) (List[core.Index], bool) {
	h, ok := e.(adjacentFacesHost)
	if !ok {
		return List[core.Index]{}, false
	}
	return h.adjacentFacesList(e.base())
}

// IsAdjacentFacesEnabled reports whether the adjacent faces of e are accessible.
func IsAdjacentFacesEnabled(e Element) bool {
	_, ok := AdjacentFacesOf(e)
	return ok
}

// AdjacentEdges stores the adjacent edges of the element inside the element.
type AdjacentEdges[S Size] struct {
	adjacentEdges []core.Index
}

func (c *AdjacentEdges[S]) adjacentEdgesList(*Base) (List[core.Index], bool) {
	return newList(&c.adjacentEdges, sizeOf[S](), core.NullIndex), true
}

func (*AdjacentEdges[S]) adjacentEdgesSpec() Spec {
	return Spec{Kind: core.AdjacentEdges, Mode: Horizontal, Size: sizeOf[S]()}
}

// VerticalAdjacentEdges stores the adjacent edges in a container column.
type VerticalAdjacentEdges[S Size] struct{}

func (VerticalAdjacentEdges[S]) adjacentEdgesList(b *Base) (List[core.Index], bool) {
	return verticalList(b, core.AdjacentEdges, sizeOf[S](), core.NullIndex)
}

func (VerticalAdjacentEdges[S]) adjacentEdgesSpec() Spec {
	return Spec{Kind: core.AdjacentEdges, Mode: Vertical, Size: sizeOf[S]()}
}

// OptionalAdjacentEdges stores the adjacent edges in an optional container column.
type OptionalAdjacentEdges[S Size] struct{}

func (OptionalAdjacentEdges[S]) adjacentEdgesList(b *Base) (List[core.Index], bool) {
	return verticalList(b, core.AdjacentEdges, sizeOf[S](), core.NullIndex)
}

func (OptionalAdjacentEdges[S]) adjacentEdgesSpec() Spec {
	return Spec{Kind: core.AdjacentEdges, Mode: Optional, Size: sizeOf[S]()}
}

type adjacentEdgesHost interface {
	adjacentEdgesList(*Base) (List[core.Index], bool)
}

// AdjacentEdgesOf returns the adjacent edges of e.
func AdjacentEdgesOf(e Element) (List[core.Index], bool) {
	h, ok := e.(adjacentEdgesHost)
	if !ok {
		return List[core.Index]{}, false
	}
	return h.adjacentEdgesList(e.base())
}

// IsAdjacentEdgesEnabled reports whether the adjacent edges of e are accessible.
func IsAdjacentEdgesEnabled(e Element) bool {
	_, ok := AdjacentEdgesOf(e)
	return ok
}
