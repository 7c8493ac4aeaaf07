// Package core holds the identifiers, enumerations and error taxonomy shared
// by every meshcomp package.
package core

// Index is the row of an element inside its container.
// It is strictly 32-bit, allowing for max 4 Billion elements per container.
// Inter-element references (adjacency, vertex lists) are stored as Index values.
type Index uint32

// NullIndex is the null reference. In compaction maps it marks a removed row.
const NullIndex = ^Index(0)

// MaxIndex is the largest usable row index.
const MaxIndex = NullIndex - 1

// IsNull reports whether i is the null reference.
func (i Index) IsNull() bool { return i == NullIndex }

// ElementKind identifies the element family a container stores.
type ElementKind uint8

const (
	// Vertex elements.
	Vertex ElementKind = iota
	// Face elements.
	Face
	// Edge elements.
	Edge
)

// NumElementKinds is the number of element kinds.
const NumElementKinds = 3

func (k ElementKind) String() string {
	switch k {
	case Vertex:
		return "vertex"
	case Face:
		return "face"
	case Edge:
		return "edge"
	default:
		return "unknown"
	}
}

// ParseElementKind parses the lower-case name of an element kind.
func ParseElementKind(s string) (ElementKind, error) {
	switch s {
	case "vertex", "vertices":
		return Vertex, nil
	case "face", "faces":
		return Face, nil
	case "edge", "edges":
		return Edge, nil
	default:
		return 0, &UnknownNameError{What: "element kind", Name: s}
	}
}
