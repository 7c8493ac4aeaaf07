package comp

import (
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/geom"
)

// WedgeColors stores the wedge colors of the element inside the element.
type WedgeColors[S Size] struct {
	wedgeColors []geom.Color
}

func (c *WedgeColors[S]) wedgeColorsList(*Base) (List[geom.Color], bool) {
	return newList(&c.wedgeColors, sizeOf[S](), geom.Color{}), true
}

func (*WedgeColors[S]) wedgeColorsSpec() Spec {
	return Spec{Kind: core.WedgeColors, Mode: Horizontal, Size: sizeOf[S]()}
}

// VerticalWedgeColors stores the wedge colors in a container column.
type VerticalWedgeColors[S Size] struct{}

func (VerticalWedgeColors[S]) wedgeColorsList(b *Base) (List[geom.Color], bool) {
	return verticalList(b, core.WedgeColors, sizeOf[S](), geom.Color{})
}

func (VerticalWedgeColors[S]) wedgeColorsSpec() Spec {
	return Spec{Kind: core.WedgeColors, Mode: Vertical, Size: sizeOf[S]()}
}

// OptionalWedgeColors stores the wedge colors in an optional container column.
type OptionalWedgeColors[S Size] struct{}

func (OptionalWedgeColors[S]) wedgeColorsList(b *Base) (List[geom.Color], bool) {
	return verticalList(b, core.WedgeColors, sizeOf[S](), geom.Color{})
}

func (OptionalWedgeColors[S]) wedgeColorsSpec() Spec {
	return Spec{Kind: core.WedgeColors, Mode: Optional, Size: sizeOf[S]()}
}

type wedgeColorsHost interface {
	wedgeColorsList(*Base) (List[geom.Color], bool)
}

// WedgeColorsOf returns the wedge colors of e.
func WedgeColorsOf(e Element) (List[geom.Color], bool) {
	h, ok := e.(wedgeColorsHost)
	if !ok {
		return List[geom.Color]{}, false
	}
	return h.wedgeColorsList(e.base())
}

// IsWedgeColorsEnabled reports whether the wedge colors of e are accessible.
func IsWedgeColorsEnabled(e Element) bool {
	_, ok := WedgeColorsOf(e)
	return ok
}

// WedgeTexCoords stores the wedge texture coordinates of the element inside the element.
type WedgeTexCoords[S Size] struct {
	wedgeTexCoords []geom.TexCoord
}

func (c *WedgeTexCoords[S]) wedgeTexCoordsList(*Base) (List[geom.TexCoord], bool) {
	return newList(&c.wedgeTexCoords, sizeOf[S](), geom.TexCoord{}), true
}

func (*WedgeTexCoords[S]) wedgeTexCoordsSpec() Spec {
	return Spec{Kind: core.WedgeTexCoords, Mode: Horizontal, Size: sizeOf[S]()}
}

// VerticalWedgeTexCoords stores the wedge texture coordinates in a container column.
type VerticalWedgeTexCoords[S Size] struct{}

func (VerticalWedgeTexCoords[S]) wedgeTexCoordsList(b *Base) (List[geom.TexCoord], bool) {
	return verticalList(b, core.WedgeTexCoords, sizeOf[S](), geom.TexCoord{})
}

func (VerticalWedgeTexCoords[S]) wedgeTexCoordsSpec() Spec {
	return Spec{Kind: core.WedgeTexCoords, Mode: Vertical, Size: sizeOf[S]()}
}

// OptionalWedgeTexCoords stores the wedge texture coordinates in an optional container column.
type OptionalWedgeTexCoords[S Size] struct{}

func (OptionalWedgeTexCoords[S]) wedgeTexCoordsList(b *Base) (List[geom.TexCoord], bool) {
	return verticalList(b, core.WedgeTexCoords, sizeOf[S](), geom.TexCoord{})
}

func (OptionalWedgeTexCoords[S]) wedgeTexCoordsSpec() Spec {
	return Spec{Kind: core.WedgeTexCoords, Mode: Optional, Size: sizeOf[S]()}
}

type wedgeTexCoordsHost interface {
	wedgeTexCoordsList(*Base) (List[geom.TexCoord], bool)
}

// WedgeTexCoordsOf returns the wedge texture coordinates of e.
func WedgeTexCoordsOf(e Element) (List[geom.TexCoord], bool) {
	h, ok := e.(wedgeTexCoordsHost)
	if !ok {
		return List[geom.TexCoord]{}, false
	}
	return h.wedgeTexCoordsList(e.base())
}

// IsWedgeTexCoordsEnabled reports whether the wedge texture coordinates of e are accessible.
func IsWedgeTexCoordsEnabled(e Element) bool {
	_, ok := WedgeTexCoordsOf(e)
	return ok
}
