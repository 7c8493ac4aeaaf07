package comp

import (
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/geom"
)

// Normal stores the normal inside the element.
type Normal struct {
	normal geom.Point3d
}

func (c *Normal) normalSlot(*Base) (*geom.Point3d, bool) { return &c.normal, true }
func (*Normal) normalSpec() Spec { return Spec{Kind: core.Normal, Mode: Horizontal} }

// VerticalNormal stores the normal in a container column.
type VerticalNormal struct{}

func (VerticalNormal) normalSlot(b *Base) (*geom.Point3d, bool) {
	return verticalSlot[geom.Point3d](b, core.Normal)
}
func (VerticalNormal) normalSpec() Spec { return Spec{Kind: core.Normal, Mode: Vertical} }

// OptionalNormal stores the normal in a container column that can be enabled
// and disabled at run time.
type OptionalNormal struct{}

func (OptionalNormal) normalSlot(b *Base) (*geom.Point3d, bool) {
	return verticalSlot[geom.Point3d](b, core.Normal)
}
func (OptionalNormal) normalSpec() Spec { return Spec{Kind: core.Normal, Mode: Optional} }

// Normalf stores the single precision normal inside the element.
type Normalf struct {
	normalf geom.Point3f
}

func (c *Normalf) normalfSlot(*Base) (*geom.Point3f, bool) { return &c.normalf, true }
func (*Normalf) normalSpec() Spec { return Spec{Kind: core.Normal, Mode: Horizontal, Single: true} }

// VerticalNormalf stores the single precision normal in a container column.
type VerticalNormalf struct{}

func (VerticalNormalf) normalfSlot(b *Base) (*geom.Point3f, bool) {
	return verticalSlot[geom.Point3f](b, core.Normal)
}
func (VerticalNormalf) normalSpec() Spec { return Spec{Kind: core.Normal, Mode: Vertical, Single: true} }

// OptionalNormalf stores the single precision normal in a container column that can be enabled
// and disabled at run time.
type OptionalNormalf struct{}

func (OptionalNormalf) normalfSlot(b *Base) (*geom.Point3f, bool) {
	return verticalSlot[geom.Point3f](b, core.Normal)
}
func (OptionalNormalf) normalSpec() Spec { return Spec{Kind: core.Normal, Mode: Optional, Single: true} }

type normalHost interface {
	normalSlot(*Base) (*geom.Point3d, bool)
}

// NormalOf returns the normal of e. It returns false when e has no normal,
// when the column is disabled or when e is detached.
func NormalOf(e Element) (*geom.Point3d, bool) {
	h, ok := e.(normalHost)
	if !ok {
		return nil, false
	}
	return h.normalSlot(e.base())
}

type normalfHost interface {
	normalfSlot(*Base) (*geom.Point3f, bool)
}

// NormalfOf returns the single precision normal of e. It returns false when e has no single precision normal,
// when the column is disabled or when e is detached.
func NormalfOf(e Element) (*geom.Point3f, bool) {
	h, ok := e.(normalfHost)
	if !ok {
		return nil, false
	}
	return h.normalfSlot(e.base())
}

// IsNormalEnabled reports whether e has an accessible normal of either precision.
func IsNormalEnabled(e Element) bool {
	_, ok := normalValue(e)
	return ok
}

// normalValue reads the normal of e in double precision.
func normalValue(e Element) (geom.Point3d, bool) {
	if p, ok := NormalOf(e); ok {
		return *p, true
	}
	if p, ok := NormalfOf(e); ok {
		return geom.Cast[float64](*p), true
	}
	return geom.Point3d{}, false
}

// setNormal stores v in the normal of e, converting to its precision.
func setNormal(e Element, v geom.Point3d) bool {
	if p, ok := NormalOf(e); ok {
		*p = v
		return true
	}
	if p, ok := NormalfOf(e); ok {
		*p = geom.Cast[float32](v)
		return true
	}
	return false
}
