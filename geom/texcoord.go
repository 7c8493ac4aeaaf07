package geom

// TexCoord is a texture coordinate with the index of the texture it refers to.
type TexCoord struct {
	U, V  float64
	Index uint16
}

// PrincipalCurvature holds the principal directions and curvature values of a
// surface point.
type PrincipalCurvature struct {
	MaxDir Point3d
	MinDir Point3d
	MaxVal float64
	MinVal float64
}
