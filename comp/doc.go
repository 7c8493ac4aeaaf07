// Package comp provides the attribute modules (components) mesh elements are
// composed of, and the accessors that read them.
//
// An element type is a struct that embeds Base and any number of modules:
//
//	type Vertex struct {
//		comp.Base
//		comp.BitFlags
//		comp.Position
//		comp.OptionalColor
//		comp.OptionalAdjacentFaces[comp.Dynamic]
//		comp.CustomComponents
//	}
//
// Every module exists in up to three storage modes. Horizontal modules
// (Color) keep their value inside the element. Vertical modules
// (VerticalColor) keep it in a column owned by the container. Optional modules
// (OptionalColor) are vertical modules whose column can be enabled and
// disabled at run time; while disabled they cost nothing.
//
// Capabilities are detected by interface satisfaction: each module carries
// unexported hook methods that are promoted into the element type. Accessors
// such as ColorOf and AdjacentFacesOf find the hook and return the value, or
// false when the element does not have the component, when the column is
// disabled, or when the element is not attached to a container.
//
// List modules take a size marker (Size2, Size3, Size4 or Dynamic). Fixed
// size lists always hold exactly that many entries; Dynamic lists grow.
//
// An element only sees vertical data while it sits in its container. A copy
// of an element, or an element built outside a container, is detached: its
// horizontal values are intact and every vertical component reports disabled.
package comp
