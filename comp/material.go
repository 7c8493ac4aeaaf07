package comp

import (
	"github.com/hupe1980/meshcomp/core"
)

// MaterialIndex stores the material index inside the element.
type MaterialIndex struct {
	material uint16
}

func (c *MaterialIndex) materialSlot(*Base) (*uint16, bool) { return &c.material, true }
func (*MaterialIndex) materialSpec() Spec { return Spec{Kind: core.MaterialIndex, Mode: Horizontal} }

// VerticalMaterialIndex stores the material index in a container column.
type VerticalMaterialIndex struct{}

func (VerticalMaterialIndex) materialSlot(b *Base) (*uint16, bool) {
	return verticalSlot[uint16](b, core.MaterialIndex)
}
func (VerticalMaterialIndex) materialSpec() Spec { return Spec{Kind: core.MaterialIndex, Mode: Vertical} }

// OptionalMaterialIndex stores the material index in a container column that can be enabled
// and disabled at run time.
type OptionalMaterialIndex struct{}

func (OptionalMaterialIndex) materialSlot(b *Base) (*uint16, bool) {
	return verticalSlot[uint16](b, core.MaterialIndex)
}
func (OptionalMaterialIndex) materialSpec() Spec { return Spec{Kind: core.MaterialIndex, Mode: Optional} }

type materialHost interface {
	materialSlot(*Base) (*uint16, bool)
}

// MaterialIndexOf returns the material index of e. It returns false when e has no material index,
// when the column is disabled or when e is detached.
func MaterialIndexOf(e Element) (*uint16, bool) {
	h, ok := e.(materialHost)
	if !ok {
		return nil, false
	}
	return h.materialSlot(e.base())
}

// IsMaterialIndexEnabled reports whether the material index of e is accessible.
func IsMaterialIndexEnabled(e Element) bool {
	_, ok := MaterialIndexOf(e)
	return ok
}
