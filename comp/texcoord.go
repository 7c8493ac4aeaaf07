package comp

import (
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/geom"
)

// TexCoord stores the texture coordinate inside the element.
type TexCoord struct {
	texCoord geom.TexCoord
}

func (c *TexCoord) texCoordSlot(*Base) (*geom.TexCoord, bool) { return &c.texCoord, true }
func (*TexCoord) texCoordSpec() Spec { return Spec{Kind: core.TexCoord, Mode: Horizontal} }

// VerticalTexCoord stores the texture coordinate in a container column.
type VerticalTexCoord struct{}

func (VerticalTexCoord) texCoordSlot(b *Base) (*geom.TexCoord, bool) {
	return verticalSlot[geom.TexCoord](b, core.TexCoord)
}
func (VerticalTexCoord) texCoordSpec() Spec { return Spec{Kind: core.TexCoord, Mode: Vertical} }

// OptionalTexCoord stores the texture coordinate in a container column that can be enabled
// and disabled at run time.
type OptionalTexCoord struct{}

func (OptionalTexCoord) texCoordSlot(b *Base) (*geom.TexCoord, bool) {
	return verticalSlot[geom.TexCoord](b, core.TexCoord)
}
func (OptionalTexCoord) texCoordSpec() Spec { return Spec{Kind: core.TexCoord, Mode: Optional} }

type texCoordHost interface {
	texCoordSlot(*Base) (*geom.TexCoord, bool)
}

// TexCoordOf returns the texture coordinate of e. It returns false when e has no texture coordinate,
// when the column is disabled or when e is detached.
func TexCoordOf(e Element) (*geom.TexCoord, bool) {
	h, ok := e.(texCoordHost)
	if !ok {
		return nil, false
	}
	return h.texCoordSlot(e.base())
}

// IsTexCoordEnabled reports whether the texture coordinate of e is accessible.
func IsTexCoordEnabled(e Element) bool {
	_, ok := TexCoordOf(e)
	return ok
}
