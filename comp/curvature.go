package comp

import (
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/geom"
)

// PrincipalCurvature stores the principal curvature inside the element.
type PrincipalCurvature struct {
	curvature geom.PrincipalCurvature
}

func (c *PrincipalCurvature) curvatureSlot(*Base) (*geom.PrincipalCurvature, bool) { return &c.curvature, true }
func (*PrincipalCurvature) curvatureSpec() Spec { return Spec{Kind: core.PrincipalCurvature, Mode: Horizontal} }

// VerticalPrincipalCurvature stores the principal curvature in a container column.
type VerticalPrincipalCurvature struct{}

func (VerticalPrincipalCurvature) curvatureSlot(b *Base) (*geom.PrincipalCurvature, bool) {
	return verticalSlot[geom.PrincipalCurvature](b, core.PrincipalCurvature)
}
func (VerticalPrincipalCurvature) curvatureSpec() Spec { return Spec{Kind: core.PrincipalCurvature, Mode: Vertical} }

// OptionalPrincipalCurvature stores the principal curvature in a container column that can be enabled
// and disabled at run time.
type OptionalPrincipalCurvature struct{}

func (OptionalPrincipalCurvature) curvatureSlot(b *Base) (*geom.PrincipalCurvature, bool) {
	return verticalSlot[geom.PrincipalCurvature](b, core.PrincipalCurvature)
}
func (OptionalPrincipalCurvature) curvatureSpec() Spec { return Spec{Kind: core.PrincipalCurvature, Mode: Optional} }

type curvatureHost interface {
	curvatureSlot(*Base) (*geom.PrincipalCurvature, bool)
}

// PrincipalCurvatureOf returns the principal curvature of e. It returns false when e has no principal curvature,
// when the column is disabled or when e is detached.
func PrincipalCurvatureOf(e Element) (*geom.PrincipalCurvature, bool) {
	h, ok := e.(curvatureHost)
	if !ok {
		return nil, false
	}
	return h.curvatureSlot(e.base())
}

// IsPrincipalCurvatureEnabled reports whether the principal curvature of e is accessible.
func IsPrincipalCurvatureEnabled(e Element) bool {
	_, ok := PrincipalCurvatureOf(e)
	return ok
}
