package comp

import (
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/geom"
)

// Color stores the color inside the element.
type Color struct {
	color geom.Color
}

func (c *Color) colorSlot(*Base) (*geom.Color, bool) { return &c.color, true }
func (*Color) colorSpec() Spec { return Spec{Kind: core.Color, Mode: Horizontal} }

// VerticalColor stores the color in a container column.
type VerticalColor struct{}

func (VerticalColor) colorSlot(b *Base) (*geom.Color, bool) {
	return verticalSlot[geom.Color](b, core.Color)
}
func (VerticalColor) colorSpec() Spec { return Spec{Kind: core.Color, Mode: Vertical} }

// OptionalColor stores the color in a container column that can be enabled
// and disabled at run time.
type OptionalColor struct{}

func (OptionalColor) colorSlot(b *Base) (*geom.Color, bool) {
	return verticalSlot[geom.Color](b, core.Color)
}
func (OptionalColor) colorSpec() Spec { return Spec{Kind: core.Color, Mode: Optional} }

type colorHost interface {
	colorSlot(*Base) (*geom.Color, bool)
}

// ColorOf returns the color of e. It returns false when e has no color,
// when the column is disabled or when e is detached.
func ColorOf(e Element) (*geom.Color, bool) {
	h, ok := e.(colorHost)
	if !ok {
		return nil, false
	}
	return h.colorSlot(e.base())
}

// IsColorEnabled reports whether the color of e is accessible.
func IsColorEnabled(e Element) bool {
	_, ok := ColorOf(e)
	return ok
}
