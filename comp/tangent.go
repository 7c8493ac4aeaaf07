package comp

import (
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/geom"
)

// Tangent stores the tangent frame inside the element.
type Tangent struct {
	tangent geom.Tangentd
}

func (c *Tangent) tangentSlot(*Base) (*geom.Tangentd, bool) { return &c.tangent, true }
func (*Tangent) tangentSpec() Spec { return Spec{Kind: core.Tangent, Mode: Horizontal} }

// VerticalTangent stores the tangent frame in a container column.
type VerticalTangent struct{}

func (VerticalTangent) tangentSlot(b *Base) (*geom.Tangentd, bool) {
	return verticalSlot[geom.Tangentd](b, core.Tangent)
}
func (VerticalTangent) tangentSpec() Spec { return Spec{Kind: core.Tangent, Mode: Vertical} }

// OptionalTangent stores the tangent frame in a container column that can be
// enabled and disabled at run time.
type OptionalTangent struct{}

func (OptionalTangent) tangentSlot(b *Base) (*geom.Tangentd, bool) {
	return verticalSlot[geom.Tangentd](b, core.Tangent)
}
func (OptionalTangent) tangentSpec() Spec { return Spec{Kind: core.Tangent, Mode: Optional} }

// Tangentf stores the single precision tangent frame inside the element.
type Tangentf struct {
	tangentf geom.Tangentf
}

func (c *Tangentf) tangentfSlot(*Base) (*geom.Tangentf, bool) { return &c.tangentf, true }
func (*Tangentf) tangentSpec() Spec {
	return Spec{Kind: core.Tangent, Mode: Horizontal, Single: true}
}

// VerticalTangentf stores the single precision tangent frame in a container column.
type VerticalTangentf struct{}

func (VerticalTangentf) tangentfSlot(b *Base) (*geom.Tangentf, bool) {
	return verticalSlot[geom.Tangentf](b, core.Tangent)
}
func (VerticalTangentf) tangentSpec() Spec {
	return Spec{Kind: core.Tangent, Mode: Vertical, Single: true}
}

// OptionalTangentf stores the single precision tangent frame in an optional
// container column.
type OptionalTangentf struct{}

func (OptionalTangentf) tangentfSlot(b *Base) (*geom.Tangentf, bool) {
	return verticalSlot[geom.Tangentf](b, core.Tangent)
}
func (OptionalTangentf) tangentSpec() Spec {
	return Spec{Kind: core.Tangent, Mode: Optional, Single: true}
}

type tangentHost interface {
	tangentSlot(*Base) (*geom.Tangentd, bool)
}

// TangentOf returns the tangent frame of e. It returns false when e has no
// double precision tangent, when the column is disabled or when e is detached.
func TangentOf(e Element) (*geom.Tangentd, bool) {
	h, ok := e.(tangentHost)
	if !ok {
		return nil, false
	}
	return h.tangentSlot(e.base())
}

type tangentfHost interface {
	tangentfSlot(*Base) (*geom.Tangentf, bool)
}

// TangentfOf returns the single precision tangent frame of e.
func TangentfOf(e Element) (*geom.Tangentf, bool) {
	h, ok := e.(tangentfHost)
	if !ok {
		return nil, false
	}
	return h.tangentfSlot(e.base())
}

// IsTangentEnabled reports whether e has an accessible tangent of either precision.
func IsTangentEnabled(e Element) bool {
	_, ok := tangentValue(e)
	return ok
}

func tangentValue(e Element) (geom.Tangentd, bool) {
	if t, ok := TangentOf(e); ok {
		return *t, true
	}
	if t, ok := TangentfOf(e); ok {
		return geom.CastTangent[float64](*t), true
	}
	return geom.Tangentd{}, false
}

func setTangent(e Element, v geom.Tangentd) bool {
	if t, ok := TangentOf(e); ok {
		*t = v
		return true
	}
	if t, ok := TangentfOf(e); ok {
		*t = geom.CastTangent[float32](v)
		return true
	}
	return false
}
