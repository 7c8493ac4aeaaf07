package meshcomp

import "github.com/hupe1980/meshcomp/comp"

// TriVertex is the vertex of a TriMesh and a PolyMesh.
type TriVertex struct {
	comp.Base
	comp.BitFlags
	comp.Position
	comp.Normalf
	comp.Color
	comp.Quality
	comp.OptionalAdjacentFaces[comp.Dynamic]
	comp.OptionalAdjacentVertices[comp.Dynamic]
	comp.OptionalPrincipalCurvature
	comp.OptionalTangentf
	comp.OptionalTexCoord
	comp.OptionalMark
	comp.CustomComponents
}

// Triangle is the face of a TriMesh.
type Triangle struct {
	comp.Base
	comp.BitFlags
	comp.VertexReferences[comp.Size3]
	comp.Normalf
	comp.OptionalQuality
	comp.OptionalColor
	comp.OptionalAdjacentFaces[comp.Size3]
	comp.OptionalWedgeTexCoords[comp.Size3]
	comp.OptionalMaterialIndex
	comp.OptionalMark
	comp.CustomComponents
}

// Polygon is the face of a PolyMesh. Adjacent faces and wedge lists follow
// the number of vertices.
type Polygon struct {
	comp.Base
	comp.BitFlags
	comp.VertexReferences[comp.Dynamic]
	comp.Normalf
	comp.OptionalQuality
	comp.OptionalColor
	comp.OptionalAdjacentFaces[comp.Dynamic]
	comp.OptionalWedgeColors[comp.Dynamic]
	comp.OptionalWedgeTexCoords[comp.Dynamic]
	comp.OptionalMaterialIndex
	comp.OptionalMark
	comp.CustomComponents
}

// EdgeVertex is the vertex of an EdgeMesh.
type EdgeVertex struct {
	comp.Base
	comp.BitFlags
	comp.Position
	comp.OptionalColor
	comp.OptionalQuality
	comp.OptionalAdjacentEdges[comp.Dynamic]
	comp.OptionalMark
	comp.CustomComponents
}

// Edge is the edge of an EdgeMesh.
type Edge struct {
	comp.Base
	comp.BitFlags
	comp.VertexReferences[comp.Size2]
	comp.OptionalColor
	comp.OptionalQuality
	comp.OptionalAdjacentEdges[comp.Dynamic]
	comp.OptionalMark
	comp.CustomComponents
}
