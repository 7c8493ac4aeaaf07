package geom

import "golang.org/x/exp/constraints"

// Tangent is the tangent frame of a surface point: the tangent and the
// bitangent directions.
type Tangent[S constraints.Float] struct {
	Tangent   Point3[S]
	Bitangent Point3[S]
}

// Tangentd is a double precision tangent frame.
type Tangentd = Tangent[float64]

// Tangentf is a single precision tangent frame.
type Tangentf = Tangent[float32]

// CastTangent converts a tangent frame to another scalar type.
func CastTangent[D, S constraints.Float](t Tangent[S]) Tangent[D] {
	return Tangent[D]{Tangent: Cast[D](t.Tangent), Bitangent: Cast[D](t.Bitangent)}
}
