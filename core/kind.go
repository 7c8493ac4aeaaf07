package core

// Kind identifies an attribute module capability ("has color", "has adjacent
// faces"). The set is closed: adding a kind means adding a constant here, a
// slot in the column store and a module in package comp.
type Kind uint8

const (
	BitFlags Kind = iota
	Position
	Normal
	Tangent
	Color
	Quality
	Mark
	PrincipalCurvature
	TexCoord
	MaterialIndex
	AdjacentVertices
	AdjacentFaces
	AdjacentEdges
	VertexReferences
	WedgeColors
	WedgeTexCoords
	// NumKinds is the number of column backed kinds. Custom is not one of them.
	NumKinds
)

// Custom identifies the custom-components capability. It has no column slot.
const Custom = NumKinds

var kindNames = [...]string{
	BitFlags:           "bit_flags",
	Position:           "position",
	Normal:             "normal",
	Tangent:            "tangent",
	Color:              "color",
	Quality:            "quality",
	Mark:               "mark",
	PrincipalCurvature: "principal_curvature",
	TexCoord:           "tex_coord",
	MaterialIndex:      "material_index",
	AdjacentVertices:   "adjacent_vertices",
	AdjacentFaces:      "adjacent_faces",
	AdjacentEdges:      "adjacent_edges",
	VertexReferences:   "vertex_references",
	WedgeColors:        "wedge_colors",
	WedgeTexCoords:     "wedge_tex_coords",
	Custom:             "custom_components",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Kinds returns all column backed kinds in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, NumKinds)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// ParseKind parses the name returned by Kind.String.
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return 0, &UnknownNameError{What: "component kind", Name: s}
}

// IsReference reports whether k stores references to other elements.
func (k Kind) IsReference() bool {
	switch k {
	case AdjacentVertices, AdjacentFaces, AdjacentEdges, VertexReferences:
		return true
	}
	return false
}

// Target returns the element kind referenced by a reference kind.
func (k Kind) Target() (ElementKind, bool) {
	switch k {
	case AdjacentVertices, VertexReferences:
		return Vertex, true
	case AdjacentFaces:
		return Face, true
	case AdjacentEdges:
		return Edge, true
	}
	return 0, false
}

// IsList reports whether k holds a bounded or growable list per element.
func (k Kind) IsList() bool {
	return k.IsReference() || k == WedgeColors || k == WedgeTexCoords
}
