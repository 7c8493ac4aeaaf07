package comp

import (
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/geom"
)

// Position stores the position inside the element.
type Position struct {
	position geom.Point3d
}

func (c *Position) positionSlot(*Base) (*geom.Point3d, bool) { return &c.position, true }
func (*Position) positionSpec() Spec { return Spec{Kind: core.Position, Mode: Horizontal} }

// VerticalPosition stores the position in a container column.
type VerticalPosition struct{}

func (VerticalPosition) positionSlot(b *Base) (*geom.Point3d, bool) {
	return verticalSlot[geom.Point3d](b, core.Position)
}
func (VerticalPosition) positionSpec() Spec { return Spec{Kind: core.Position, Mode: Vertical} }

// OptionalPosition stores the position in a container column that can be enabled
// and disabled at run time.
type OptionalPosition struct{}

func (OptionalPosition) positionSlot(b *Base) (*geom.Point3d, bool) {
	return verticalSlot[geom.Point3d](b, core.Position)
}
func (OptionalPosition) positionSpec() Spec { return Spec{Kind: core.Position, Mode: Optional} }

// Positionf stores the single precision position inside the element.
type Positionf struct {
	positionf geom.Point3f
}

func (c *Positionf) positionfSlot(*Base) (*geom.Point3f, bool) { return &c.positionf, true }
func (*Positionf) positionSpec() Spec { return Spec{Kind: core.Position, Mode: Horizontal, Single: true} }

// VerticalPositionf stores the single precision position in a container column.
type VerticalPositionf struct{}

func (VerticalPositionf) positionfSlot(b *Base) (*geom.Point3f, bool) {
	return verticalSlot[geom.Point3f](b, core.Position)
}
func (VerticalPositionf) positionSpec() Spec { return Spec{Kind: core.Position, Mode: Vertical, Single: true} }

// OptionalPositionf stores the single precision position in a container column that can be enabled
// and disabled at run time.
type OptionalPositionf struct{}

func (OptionalPositionf) positionfSlot(b *Base) (*geom.Point3f, bool) {
	return verticalSlot[geom.Point3f](b, core.Position)
}
func (OptionalPositionf) positionSpec() Spec { return Spec{Kind: core.Position, Mode: Optional, Single: true} }

type positionHost interface {
	positionSlot(*Base) (*geom.Point3d, bool)
}

// PositionOf returns the position of e. It returns false when e has no position,
// when the column is disabled or when e is detached.
func PositionOf(e Element) (*geom.Point3d, bool) {
	h, ok := e.(positionHost)
	if !ok {
		return nil, false
	}
	return h.positionSlot(e.base())
}

type positionfHost interface {
	positionfSlot(*Base) (*geom.Point3f, bool)
}

// PositionfOf returns the single precision position of e. It returns false when e has no single precision position,
// when the column is disabled or when e is detached.
func PositionfOf(e Element) (*geom.Point3f, bool) {
	h, ok := e.(positionfHost)
	if !ok {
		return nil, false
	}
	return h.positionfSlot(e.base())
}

// IsPositionEnabled reports whether e has an accessible position of either precision.
func IsPositionEnabled(e Element) bool {
	_, ok := positionValue(e)
	return ok
}

// positionValue reads the position of e in double precision.
func positionValue(e Element) (geom.Point3d, bool) {
	if p, ok := PositionOf(e); ok {
		return *p, true
	}
	if p, ok := PositionfOf(e); ok {
		return geom.Cast[float64](*p), true
	}
	return geom.Point3d{}, false
}

// setPosition stores v in the position of e, converting to its precision.
func setPosition(e Element, v geom.Point3d) bool {
	if p, ok := PositionOf(e); ok {
		*p = v
		return true
	}
	if p, ok := PositionfOf(e); ok {
		*p = geom.Cast[float32](v)
		return true
	}
	return false
}
