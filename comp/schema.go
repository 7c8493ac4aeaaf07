package comp

import (
	"fmt"

	"github.com/hupe1980/meshcomp/column"
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/geom"
	"github.com/hupe1980/meshcomp/store"
)

// Mode is the storage mode of a module.
type Mode uint8

const (
	// Horizontal modules store their value inside the element.
	Horizontal Mode = iota
	// Vertical modules store their value in an always enabled container column.
	Vertical
	// Optional modules store their value in a container column that can be
	// enabled and disabled.
	Optional
)

func (m Mode) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Optional:
		return "optional"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Spec describes one module of an element type.
type Spec struct {
	Kind core.Kind
	Mode Mode
	// Size is the list size of list modules, DynamicSize for growable lists.
	Size int
	// Single is set for the single precision variants (Positionf, Normalf,
	// Tangentf, Qualityf).
	Single bool
}

// Schema lists the modules an element type is composed of.
type Schema struct {
	specs   [core.NumKinds]Spec
	present [core.NumKinds]bool
	custom  bool
}

func (s *Schema) add(sp Spec) {
	s.specs[sp.Kind] = sp
	s.present[sp.Kind] = true
}

// Has reports whether the element type has a module of kind k.
func (s Schema) Has(k core.Kind) bool {
	if k == core.Custom {
		return s.custom
	}
	return k < core.NumKinds && s.present[k]
}

// Spec returns the module of kind k.
func (s Schema) Spec(k core.Kind) (Spec, bool) {
	if k >= core.NumKinds || !s.present[k] {
		return Spec{}, false
	}
	return s.specs[k], true
}

// IsOptional reports whether kind k is an optional module.
func (s Schema) IsOptional(k core.Kind) bool {
	sp, ok := s.Spec(k)
	return ok && sp.Mode == Optional
}

// Custom reports whether the element type has custom components.
func (s Schema) Custom() bool { return s.custom }

// Kinds returns the column backed kinds present, in declaration order.
func (s Schema) Kinds() []core.Kind {
	var ks []core.Kind
	for k, ok := range s.present {
		if ok {
			ks = append(ks, core.Kind(k))
		}
	}
	return ks
}

// OptionalKinds returns the optional kinds present.
func (s Schema) OptionalKinds() []core.Kind {
	var ks []core.Kind
	for _, k := range s.Kinds() {
		if s.specs[k].Mode == Optional {
			ks = append(ks, k)
		}
	}
	return ks
}

// TiedToVertexNumber reports whether the list of kind k follows the number of
// vertex references of the element: growable adjacency and wedge lists of
// elements that have growable vertex references.
func (s Schema) TiedToVertexNumber(k core.Kind) bool {
	vr, ok := s.Spec(core.VertexReferences)
	if !ok || vr.Size >= 0 {
		return false
	}
	sp, ok := s.Spec(k)
	if !ok || sp.Size >= 0 {
		return false
	}
	switch k {
	case core.AdjacentFaces, core.AdjacentEdges, core.WedgeColors, core.WedgeTexCoords:
		return true
	}
	return false
}

// Layout returns the column layout for the vertical and optional modules.
func (s Schema) Layout() store.Layout {
	var l store.Layout
	for _, k := range s.Kinds() {
		sp := s.specs[k]
		if sp.Mode == Horizontal {
			continue
		}
		l.Slots[k] = store.Slot{New: slotFactory(sp), Optional: sp.Mode == Optional}
	}
	l.Custom = s.custom
	return l
}

func slotFactory(sp Spec) func() column.Slot {
	switch sp.Kind {
	case core.BitFlags:
		return newColumn[core.Flags](nil)
	case core.Position, core.Normal:
		if sp.Single {
			return newColumn[geom.Point3f](nil)
		}
		return newColumn[geom.Point3d](nil)
	case core.Tangent:
		if sp.Single {
			return newColumn[geom.Tangentf](nil)
		}
		return newColumn[geom.Tangentd](nil)
	case core.Quality:
		if sp.Single {
			return newColumn[float32](nil)
		}
		return newColumn[float64](nil)
	case core.Color:
		return newColumn[geom.Color](nil)
	case core.Mark:
		return newColumn[int](nil)
	case core.PrincipalCurvature:
		return newColumn[geom.PrincipalCurvature](nil)
	case core.TexCoord:
		return newColumn[geom.TexCoord](nil)
	case core.MaterialIndex:
		return newColumn[uint16](nil)
	case core.AdjacentVertices, core.AdjacentFaces, core.AdjacentEdges, core.VertexReferences:
		return newListColumn(sp.Size, core.NullIndex)
	case core.WedgeColors:
		return newListColumn(sp.Size, geom.Color{})
	case core.WedgeTexCoords:
		return newListColumn(sp.Size, geom.TexCoord{})
	}
	panic(fmt.Sprintf("comp: no column for kind %s", sp.Kind))
}

func newColumn[T any](init func(*T)) func() column.Slot {
	return func() column.Slot { return column.New(init) }
}

func newListColumn[T any](size int, fill T) func() column.Slot {
	if size < 0 {
		return newColumn[[]T](nil)
	}
	return newColumn(func(v *[]T) { *v = filled(size, fill) })
}

func filled[T any](n int, v T) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// Describe returns the schema of the element type of e.
//
// An element type must embed at most one module per kind. Two modules of the
// same kind make the hook methods ambiguous and the kind is not reported.
func Describe(e Element) Schema {
	var s Schema
	if h, ok := e.(interface{ flagsSpec() Spec }); ok {
		s.add(h.flagsSpec())
	}
	if h, ok := e.(interface{ positionSpec() Spec }); ok {
		s.add(h.positionSpec())
	}
	if h, ok := e.(interface{ normalSpec() Spec }); ok {
		s.add(h.normalSpec())
	}
	if h, ok := e.(interface{ tangentSpec() Spec }); ok {
		s.add(h.tangentSpec())
	}
	if h, ok := e.(interface{ colorSpec() Spec }); ok {
		s.add(h.colorSpec())
	}
	if h, ok := e.(interface{ qualitySpec() Spec }); ok {
		s.add(h.qualitySpec())
	}
	if h, ok := e.(interface{ markSpec() Spec }); ok {
		s.add(h.markSpec())
	}
	if h, ok := e.(interface{ curvatureSpec() Spec }); ok {
		s.add(h.curvatureSpec())
	}
	if h, ok := e.(interface{ texCoordSpec() Spec }); ok {
		s.add(h.texCoordSpec())
	}
	if h, ok := e.(interface{ materialSpec() Spec }); ok {
		s.add(h.materialSpec())
	}
	if h, ok := e.(interface{ adjacentVerticesSpec() Spec }); ok {
		s.add(h.adjacentVerticesSpec())
	}
	if h, ok := e.(interface{ adjacentFacesSpec() Spec }); ok {
		s.add(h.adjacentFacesSpec())
	}
	if h, ok := e.(interface{ adjacentEdgesSpec() Spec }); ok {
		s.add(h.adjacentEdgesSpec())
	}
	if h, ok := e.(interface{ vertexRefsSpec() Spec }); ok {
		s.add(h.vertexRefsSpec())
	}
	if h, ok := e.(interface{ wedgeColorsSpec() Spec }); ok {
		s.add(h.wedgeColorsSpec())
	}
	if h, ok := e.(interface{ wedgeTexCoordsSpec() Spec }); ok {
		s.add(h.wedgeTexCoordsSpec())
	}
	if _, ok := e.(customHost); ok {
		s.custom = true
	}
	return s
}
