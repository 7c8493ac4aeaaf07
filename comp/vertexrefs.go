package comp

import (
	"fmt"

	"github.com/hupe1980/meshcomp/core"
)

// VertexReferences stores the vertex references of the element inside the element.
type VertexReferences[S Size] struct {
	vertexRefs []core.Index
}

func (c *VertexReferences[S]) vertexRefsList(*Base) (List[core.Index], bool) {
	return newList(&c.vertexRefs, sizeOf[S](), core.NullIndex), true
}

func (*VertexReferences[S]) vertexRefsSpec() Spec {
	return Spec{Kind: core.VertexReferences, Mode: Horizontal, Size: sizeOf[S]()}
}

// VerticalVertexReferences stores the vertex references in a container column.
type VerticalVertexReferences[S Size] struct{}

func (VerticalVertexReferences[S]) vertexRefsList(b *Base) (List[core.Index], bool) {
	return verticalList(b, core.VertexReferences, sizeOf[S](), core.NullIndex)
}

func (VerticalVertexReferences[S]) vertexRefsSpec() Spec {
	return Spec{Kind: core.VertexReferences, Mode: Vertical, Size: sizeOf[S]()}
}

// OptionalVertexReferences stores the vertex references in an optional container column.
type OptionalVertexReferences[S Size] struct{}

func (OptionalVertexReferences[S]) vertexRefsList(b *Base) (List[core.Index], bool) {
	return verticalList(b, core.VertexReferences, sizeOf[S](), core.NullIndex)
}

func (OptionalVertexReferences[S]) vertexRefsSpec() Spec {
	return Spec{Kind: core.VertexReferences, Mode: Optional, Size: sizeOf[S]()}
}

type vertexRefsHost interface {
	vertexRefsList(*Base) (List[core.Index], bool)
}

// VertexReferencesOf returns the vertex references of e.
func VertexReferencesOf(e Element) (List[core.Index], bool) {
	h, ok := e.(vertexRefsHost)
	if !ok {
		return List[core.Index]{}, false
	}
	return h.vertexRefsList(e.base())
}

// IsVertexReferencesEnabled reports whether the vertex references of e are accessible.
func IsVertexReferencesEnabled(e Element) bool {
	_, ok := VertexReferencesOf(e)
	return ok
}

// tiedLists returns the enabled growable lists of e that follow the number of
// vertex references: adjacent faces, adjacent edges and wedge data.
func tiedLists(e Element) []listOps {
	var out []listOps
	if l, ok := AdjacentFacesOf(e); ok && l.IsDynamic() {
		out = append(out, l)
	}
	if l, ok := AdjacentEdgesOf(e); ok && l.IsDynamic() {
		out = append(out, l)
	}
	if l, ok := WedgeColorsOf(e); ok && l.IsDynamic() {
		out = append(out, l)
	}
	if l, ok := WedgeTexCoordsOf(e); ok && l.IsDynamic() {
		out = append(out, l)
	}
	return out
}

func mustVertexRefs(e Element) List[core.Index] {
	l, ok := VertexReferencesOf(e)
	if !ok {
		panic(fmt.Errorf("vertex references: %w", core.ErrDisabled))
	}
	return l
}

// VertexCount returns the number of vertex references of e, 0 when e has none.
func VertexCount(e Element) int {
	l, _ := VertexReferencesOf(e)
	return l.Len()
}

// ResizeVertices sets the number of vertex references of e. Tied lists are
// resized with it. It panics with core.ErrFixedSize on fixed size references.
func ResizeVertices(e Element, n int) {
	l := mustVertexRefs(e)
	l.Resize(n)
	for _, t := range tiedLists(e) {
		t.Resize(n)
	}
}

// SetVertices replaces the vertex references of e. Growable references also
// resize the tied lists.
func SetVertices(e Element, vs []core.Index) {
	l := mustVertexRefs(e)
	l.SetAll(vs)
	if l.IsDynamic() {
		for _, t := range tiedLists(e) {
			t.Resize(len(vs))
		}
	}
}

// PushVertex appends a vertex reference and a default entry to every tied list.
func PushVertex(e Element, v core.Index) {
	l := mustVertexRefs(e)
	l.Push(v)
	for _, t := range tiedLists(e) {
		t.Resize(l.Len())
	}
}

// InsertVertex inserts a vertex reference at position i.
func InsertVertex(e Element, i int, v core.Index) {
	l := mustVertexRefs(e)
	l.Insert(i, v)
	for _, t := range tiedLists(e) {
		if i <= t.Len() {
			t.insertFill(i)
		} else {
			t.Resize(l.Len())
		}
	}
}

// EraseVertex removes the vertex reference at position i.
func EraseVertex(e Element, i int) {
	l := mustVertexRefs(e)
	l.Erase(i)
	for _, t := range tiedLists(e) {
		if i < t.Len() {
			t.Erase(i)
		}
	}
}

// ClearVertices removes every vertex reference.
func ClearVertices(e Element) {
	l := mustVertexRefs(e)
	l.Clear()
	for _, t := range tiedLists(e) {
		t.Clear()
	}
}
